package fleet

import (
	"github.com/google/uuid"

	"github.com/corvusHold/fleet/wire"
)

// MarshalCancelCommandRequest converts req into its wire form.
func MarshalCancelCommandRequest(req *CancelCommandRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opCancelCommand)
	if req.CommandID != nil {
		r.AddParam("CommandId", *req.CommandID)
	}
	addStringList(r, "InstanceIds.InstanceId", req.InstanceIDs)
	return r, nil
}

// MarshalSendCommandRequest converts req into its wire form. ClientToken
// is an idempotent member: when the caller leaves it unset, a fresh UUID
// is attached so the service can deduplicate replays.
func MarshalSendCommandRequest(req *SendCommandRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opSendCommand)
	if req.DocumentName != nil {
		r.AddParam("DocumentName", *req.DocumentName)
	}
	addStringList(r, "InstanceIds.InstanceId", req.InstanceIDs)
	addParameterMap(r, "Parameters.Parameter", req.Parameters)
	if req.TimeoutSeconds != nil {
		r.AddParam("TimeoutSeconds", wire.FromInt(*req.TimeoutSeconds))
	}
	if req.Comment != nil {
		r.AddParam("Comment", *req.Comment)
	}
	if req.OutputBucket != nil {
		r.AddParam("OutputS3BucketName", *req.OutputBucket)
	}
	if req.OutputKeyPrefix != nil {
		r.AddParam("OutputS3KeyPrefix", *req.OutputKeyPrefix)
	}
	if req.ClientToken != nil {
		r.AddParam("ClientToken", *req.ClientToken)
	} else {
		r.AddParam("ClientToken", uuid.NewString())
	}
	return r, nil
}

// MarshalListCommandsRequest converts req into its wire form.
func MarshalListCommandsRequest(req *ListCommandsRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opListCommands)
	if req.CommandID != nil {
		r.AddParam("CommandId", *req.CommandID)
	}
	if req.InstanceID != nil {
		r.AddParam("InstanceId", *req.InstanceID)
	}
	addFilterList(r, req.Filters)
	if req.MaxRecords != nil {
		r.AddParam("MaxRecords", wire.FromInt(*req.MaxRecords))
	}
	if req.Marker != nil {
		r.AddParam("Marker", *req.Marker)
	}
	return r, nil
}

// MarshalListCommandInvocationsRequest converts req into its wire form.
func MarshalListCommandInvocationsRequest(req *ListCommandInvocationsRequest) (*wire.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	r := newWireRequest(opListCommandInvocations)
	if req.CommandID != nil {
		r.AddParam("CommandId", *req.CommandID)
	}
	if req.InstanceID != nil {
		r.AddParam("InstanceId", *req.InstanceID)
	}
	if req.Details != nil {
		r.AddParam("Details", wire.FromBool(*req.Details))
	}
	addFilterList(r, req.Filters)
	if req.MaxRecords != nil {
		r.AddParam("MaxRecords", wire.FromInt(*req.MaxRecords))
	}
	if req.Marker != nil {
		r.AddParam("Marker", *req.Marker)
	}
	return r, nil
}
