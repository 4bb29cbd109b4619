package fleet

import "github.com/corvusHold/fleet/wire"

// Each marshaller is an independent instance of the same template: attach
// the fixed protocol metadata, then walk the request's fields in
// declaration order, emitting a parameter per set field and nothing for
// unset ones.

// MarshalCreateDocumentRequest converts req into its wire form.
func MarshalCreateDocumentRequest(req *CreateDocumentRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opCreateDocument)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	if req.Content != nil {
		r.AddParam("Content", *req.Content)
	}
	return r, nil
}

// MarshalDeleteDocumentRequest converts req into its wire form.
func MarshalDeleteDocumentRequest(req *DeleteDocumentRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opDeleteDocument)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	return r, nil
}

// MarshalDescribeDocumentRequest converts req into its wire form.
func MarshalDescribeDocumentRequest(req *DescribeDocumentRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opDescribeDocument)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	return r, nil
}

// MarshalDescribeDocumentPermissionRequest converts req into its wire form.
func MarshalDescribeDocumentPermissionRequest(req *DescribeDocumentPermissionRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opDescribeDocumentPermission)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	if req.PermissionType != nil {
		r.AddParam("PermissionType", *req.PermissionType)
	}
	return r, nil
}

// MarshalGetDocumentRequest converts req into its wire form.
func MarshalGetDocumentRequest(req *GetDocumentRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opGetDocument)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	return r, nil
}

// MarshalListDocumentsRequest converts req into its wire form.
func MarshalListDocumentsRequest(req *ListDocumentsRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opListDocuments)
	addFilterList(r, req.Filters)
	if req.MaxRecords != nil {
		r.AddParam("MaxRecords", wire.FromInt(*req.MaxRecords))
	}
	if req.Marker != nil {
		r.AddParam("Marker", *req.Marker)
	}
	return r, nil
}

// MarshalModifyDocumentPermissionRequest converts req into its wire form.
func MarshalModifyDocumentPermissionRequest(req *ModifyDocumentPermissionRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opModifyDocumentPermission)
	if req.Name != nil {
		r.AddParam("Name", *req.Name)
	}
	if req.PermissionType != nil {
		r.AddParam("PermissionType", *req.PermissionType)
	}
	addStringList(r, "AccountIdsToAdd.AccountId", req.AccountIDsToAdd)
	addStringList(r, "AccountIdsToRemove.AccountId", req.AccountIDsToRemove)
	return r, nil
}
