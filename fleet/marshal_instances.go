package fleet

import "github.com/corvusHold/fleet/wire"

// MarshalDescribeInstanceInformationRequest converts req into its wire
// form. This is the fullest instance of the filter convention: for a
// request with filters [{Name: "PingStatus", Values: ["Online"]}] the
// parameters are
//
//	Filters.Filter.1.Name=PingStatus
//	Filters.Filter.1.Values.Value.1=Online
func MarshalDescribeInstanceInformationRequest(req *DescribeInstanceInformationRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opDescribeInstanceInformation)
	addFilterList(r, req.Filters)
	if req.MaxRecords != nil {
		r.AddParam("MaxRecords", wire.FromInt(*req.MaxRecords))
	}
	if req.Marker != nil {
		r.AddParam("Marker", *req.Marker)
	}
	return r, nil
}
