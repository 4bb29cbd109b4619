package fleet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusHold/fleet/wire"
)

func paramsMap(t *testing.T, r *wire.Request) map[string]string {
	t.Helper()
	out := make(map[string]string, r.Params.Len())
	for _, kv := range r.Params.Pairs() {
		_, dup := out[kv[0]]
		require.False(t, dup, "duplicate parameter %s", kv[0])
		out[kv[0]] = kv[1]
	}
	return out
}

func TestMarshalNilRequestFails(t *testing.T) {
	_, err := MarshalDescribeInstanceInformationRequest(nil)
	require.ErrorIs(t, err, ErrNilRequest)

	_, err = MarshalSendCommandRequest(nil)
	require.ErrorIs(t, err, ErrNilRequest)

	_, err = MarshalListDocumentsRequest(nil)
	require.ErrorIs(t, err, ErrNilRequest)
}

func TestMarshalEmptyRequestEmitsOnlyMetadata(t *testing.T) {
	r, err := MarshalDescribeInstanceInformationRequest(&DescribeInstanceInformationRequest{})
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Len(t, p, 2)
	assert.Equal(t, "DescribeInstanceInformation", p["Action"])
	assert.Equal(t, "2025-01-20", p["Version"])
	assert.Equal(t, "POST", r.Method)
}

func TestMarshalScalarFieldsOmittedWhenUnset(t *testing.T) {
	r, err := MarshalListCommandsRequest(&ListCommandsRequest{
		CommandID: String("cmd-1"),
		// InstanceID, Filters, MaxRecords, Marker unset.
	})
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Len(t, p, 3)
	assert.Equal(t, "cmd-1", p["CommandId"])
	_, ok := p["InstanceId"]
	assert.False(t, ok)
	_, ok = p["MaxRecords"]
	assert.False(t, ok)
}

func TestMarshalFilterIndexing(t *testing.T) {
	req := &DescribeInstanceInformationRequest{
		Filters: []*Filter{
			{Name: String("PingStatus"), Values: []*string{String("Online"), String("ConnectionLost")}},
			{Name: String("PlatformType"), Values: []*string{String("Linux")}},
			{Name: String("AgentVersion"), Values: []*string{String("3.1"), String("3.2"), String("3.3")}},
		},
		MaxRecords: Int(25),
		Marker:     String("next-page"),
	}
	r, err := MarshalDescribeInstanceInformationRequest(req)
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Equal(t, "PingStatus", p["Filters.Filter.1.Name"])
	assert.Equal(t, "Online", p["Filters.Filter.1.Values.Value.1"])
	assert.Equal(t, "ConnectionLost", p["Filters.Filter.1.Values.Value.2"])
	assert.Equal(t, "PlatformType", p["Filters.Filter.2.Name"])
	assert.Equal(t, "Linux", p["Filters.Filter.2.Values.Value.1"])
	assert.Equal(t, "AgentVersion", p["Filters.Filter.3.Name"])
	assert.Equal(t, "3.3", p["Filters.Filter.3.Values.Value.3"])
	assert.Equal(t, "25", p["MaxRecords"])
	assert.Equal(t, "next-page", p["Marker"])

	// One Name key per filter, one Value key per value, nothing more.
	var nameKeys, valueKeys int
	for _, kv := range r.Params.Pairs() {
		if strings.HasSuffix(kv[0], ".Name") {
			nameKeys++
		}
		if strings.Contains(kv[0], ".Values.Value.") {
			valueKeys++
		}
	}
	assert.Equal(t, 3, nameKeys)
	assert.Equal(t, 6, valueKeys)
}

func TestMarshalExplicitlyEmptyFilterList(t *testing.T) {
	r, err := MarshalListDocumentsRequest(&ListDocumentsRequest{
		Filters: []*Filter{}, // caller-supplied empty list
	})
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Len(t, p, 2, "explicit empty filter list must add no parameters")
}

func TestMarshalNilValueLeavesIndexGap(t *testing.T) {
	// A nil value is omitted but its index position still advances; the
	// outer filter index is unaffected.
	req := &ListAssociationsRequest{
		Filters: []*Filter{
			{Name: String("InstanceId"), Values: []*string{String("i-1"), nil, String("i-3")}},
			{Name: String("Name"), Values: []*string{String("web")}},
		},
	}
	r, err := MarshalListAssociationsRequest(req)
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Equal(t, "i-1", p["Filters.Filter.1.Values.Value.1"])
	_, ok := p["Filters.Filter.1.Values.Value.2"]
	assert.False(t, ok, "nil value must not be emitted")
	assert.Equal(t, "i-3", p["Filters.Filter.1.Values.Value.3"])
	assert.Equal(t, "Name", p["Filters.Filter.2.Name"])
	assert.Equal(t, "web", p["Filters.Filter.2.Values.Value.1"])
}

func TestMarshalFilterWithNilName(t *testing.T) {
	req := &ListCommandsRequest{
		Filters: []*Filter{
			{Values: []*string{String("v")}},
			{Name: String("Status"), Values: []*string{String("Pending")}},
		},
	}
	r, err := MarshalListCommandsRequest(req)
	require.NoError(t, err)

	p := paramsMap(t, r)
	_, ok := p["Filters.Filter.1.Name"]
	assert.False(t, ok)
	assert.Equal(t, "v", p["Filters.Filter.1.Values.Value.1"])
	assert.Equal(t, "Status", p["Filters.Filter.2.Name"])
}

func TestMarshalStringList(t *testing.T) {
	req := &CancelCommandRequest{
		CommandID:   String("cmd-9"),
		InstanceIDs: []*string{String("i-a"), nil, String("i-c")},
	}
	r, err := MarshalCancelCommandRequest(req)
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Equal(t, "cmd-9", p["CommandId"])
	assert.Equal(t, "i-a", p["InstanceIds.InstanceId.1"])
	_, ok := p["InstanceIds.InstanceId.2"]
	assert.False(t, ok)
	assert.Equal(t, "i-c", p["InstanceIds.InstanceId.3"])
}

func TestMarshalParameterMapSortedAndIndexed(t *testing.T) {
	req := &CreateAssociationRequest{
		Name:       String("web-config"),
		InstanceID: String("i-1"),
		Parameters: map[string][]*string{
			"packages": {String("nginx"), String("curl")},
			"mode":     {String("enforce")},
		},
	}
	r, err := MarshalCreateAssociationRequest(req)
	require.NoError(t, err)

	p := paramsMap(t, r)
	// Keys are walked in sorted order: "mode" then "packages".
	assert.Equal(t, "mode", p["Parameters.Parameter.1.Name"])
	assert.Equal(t, "enforce", p["Parameters.Parameter.1.Values.Value.1"])
	assert.Equal(t, "packages", p["Parameters.Parameter.2.Name"])
	assert.Equal(t, "nginx", p["Parameters.Parameter.2.Values.Value.1"])
	assert.Equal(t, "curl", p["Parameters.Parameter.2.Values.Value.2"])
}

func TestMarshalBatchEntries(t *testing.T) {
	req := &CreateAssociationBatchRequest{
		Entries: []*AssociationBatchEntry{
			{Name: String("doc-a"), InstanceID: String("i-1")},
			{Name: String("doc-b")}, // InstanceID unset
		},
	}
	r, err := MarshalCreateAssociationBatchRequest(req)
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Equal(t, "doc-a", p["Entries.Entry.1.Name"])
	assert.Equal(t, "i-1", p["Entries.Entry.1.InstanceId"])
	assert.Equal(t, "doc-b", p["Entries.Entry.2.Name"])
	_, ok := p["Entries.Entry.2.InstanceId"]
	assert.False(t, ok)
}

func TestMarshalNestedStatus(t *testing.T) {
	req := &UpdateAssociationStatusRequest{
		Name:       String("doc-a"),
		InstanceID: String("i-1"),
		Status: &AssociationStatus{
			Name:    String("Success"),
			Message: String("applied"),
		},
	}
	r, err := MarshalUpdateAssociationStatusRequest(req)
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Equal(t, "Success", p["AssociationStatus.Name"])
	assert.Equal(t, "applied", p["AssociationStatus.Message"])
	_, ok := p["AssociationStatus.Date"]
	assert.False(t, ok)
	_, ok = p["AssociationStatus.AdditionalInfo"]
	assert.False(t, ok)
}

func TestMarshalSendCommand(t *testing.T) {
	req := &SendCommandRequest{
		DocumentName:   String("restart-agent"),
		InstanceIDs:    []*string{String("i-1"), String("i-2")},
		TimeoutSeconds: Int(600),
		Comment:        String("rolling restart"),
		ClientToken:    String("fixed-token"),
	}
	r, err := MarshalSendCommandRequest(req)
	require.NoError(t, err)

	p := paramsMap(t, r)
	assert.Equal(t, "restart-agent", p["DocumentName"])
	assert.Equal(t, "i-1", p["InstanceIds.InstanceId.1"])
	assert.Equal(t, "i-2", p["InstanceIds.InstanceId.2"])
	assert.Equal(t, "600", p["TimeoutSeconds"])
	assert.Equal(t, "rolling restart", p["Comment"])
	assert.Equal(t, "fixed-token", p["ClientToken"])
}

func TestMarshalSendCommandGeneratesClientToken(t *testing.T) {
	r1, err := MarshalSendCommandRequest(&SendCommandRequest{DocumentName: String("d")})
	require.NoError(t, err)
	r2, err := MarshalSendCommandRequest(&SendCommandRequest{DocumentName: String("d")})
	require.NoError(t, err)

	t1, ok := r1.Params.Get("ClientToken")
	require.True(t, ok)
	t2, ok := r2.Params.Get("ClientToken")
	require.True(t, ok)
	assert.NotEmpty(t, t1)
	assert.NotEqual(t, t1, t2, "generated idempotency tokens must be unique per call")
}

func TestMarshalMetadataComesFirst(t *testing.T) {
	r, err := MarshalGetDocumentRequest(&GetDocumentRequest{Name: String("doc")})
	require.NoError(t, err)

	names := r.Params.Names()
	require.GreaterOrEqual(t, len(names), 3)
	assert.Equal(t, "Action", names[0])
	assert.Equal(t, "Version", names[1])
	assert.Equal(t, "Name", names[2])
}
