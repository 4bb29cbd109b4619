package fleet

import (
	"strconv"

	"github.com/corvusHold/fleet/wire"
)

// MarshalCreateAssociationRequest converts req into its wire form.
func MarshalCreateAssociationRequest(req *CreateAssociationRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opCreateAssociation)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	if req.InstanceID != nil {
		r.AddParam("InstanceId", *req.InstanceID)
	}
	addParameterMap(r, "Parameters.Parameter", req.Parameters)
	return r, nil
}

// MarshalCreateAssociationBatchRequest converts req into its wire form.
// Each batch entry recurses the scalar rules under an indexed prefix:
// Entries.Entry.<i>.Name, Entries.Entry.<i>.InstanceId.
func MarshalCreateAssociationBatchRequest(req *CreateAssociationBatchRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opCreateAssociationBatch)
	if req.Entries != nil {
		entryIndex := 1
		for _, e := range req.Entries {
			if e != nil {
				prefix := "Entries.Entry." + strconv.Itoa(entryIndex)
				if e.Name != nil {
					r.AddParam(prefix+".Name", *e.Name)
				}
				if e.InstanceID != nil {
					r.AddParam(prefix+".InstanceId", *e.InstanceID)
				}
			}
			entryIndex++
		}
	}
	return r, nil
}

// MarshalDeleteAssociationRequest converts req into its wire form.
func MarshalDeleteAssociationRequest(req *DeleteAssociationRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opDeleteAssociation)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	if req.InstanceID != nil {
		r.AddParam("InstanceId", *req.InstanceID)
	}
	return r, nil
}

// MarshalDescribeAssociationRequest converts req into its wire form.
func MarshalDescribeAssociationRequest(req *DescribeAssociationRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opDescribeAssociation)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	if req.InstanceID != nil {
		r.AddParam("InstanceId", *req.InstanceID)
	}
	return r, nil
}

// MarshalListAssociationsRequest converts req into its wire form.
func MarshalListAssociationsRequest(req *ListAssociationsRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opListAssociations)
	addFilterList(r, req.Filters)
	if req.MaxRecords != nil {
		r.AddParam("MaxRecords", wire.FromInt(*req.MaxRecords))
	}
	if req.Marker != nil {
		r.AddParam("Marker", *req.Marker)
	}
	return r, nil
}

// MarshalUpdateAssociationStatusRequest converts req into its wire form.
// The nested status recurses the scalar rules under a dotted prefix.
func MarshalUpdateAssociationStatusRequest(req *UpdateAssociationStatusRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opUpdateAssociationStatus)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	if req.InstanceID != nil {
		r.AddParam("InstanceId", *req.InstanceID)
	}
	if s := req.Status; s != nil {
		if s.Date != nil {
			r.AddParam("AssociationStatus.Date", wire.FromTime(*s.Date))
		}
		if s.Name != nil {
			r.AddParam("AssociationStatus.Name", *s.Name)
		}
		if s.Message != nil {
			r.AddParam("AssociationStatus.Message", *s.Message)
		}
		if s.AdditionalInfo != nil {
			r.AddParam("AssociationStatus.AdditionalInfo", *s.AdditionalInfo)
		}
	}
	return r, nil
}
