package fleet_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusHold/fleet/fleet"
	"github.com/corvusHold/fleet/transport"
	"github.com/corvusHold/fleet/wire"
)

// fakeInvoker records the wire request and fills the result through fill.
type fakeInvoker struct {
	calls int
	last  *wire.Request
	fill  func(out any)
	err   error
}

func (f *fakeInvoker) Invoke(_ context.Context, req *wire.Request, out any) error {
	f.calls++
	f.last = req
	if f.err != nil {
		return f.err
	}
	if f.fill != nil {
		f.fill(out)
	}
	return nil
}

func TestClientMarshalsAndDelegates(t *testing.T) {
	inv := &fakeInvoker{
		fill: func(out any) {
			res := out.(*fleet.ListDocumentsResult)
			res.Identifiers = []*fleet.DocumentIdentifier{{Name: "web-config"}}
		},
	}
	client, err := fleet.NewClient("https://fleet.local", fleet.WithInvoker(inv))
	require.NoError(t, err)

	res, err := client.ListDocuments(context.Background(), &fleet.ListDocumentsRequest{
		MaxRecords: fleet.Int(10),
	})
	require.NoError(t, err)

	require.Len(t, res.Identifiers, 1)
	assert.Equal(t, "web-config", res.Identifiers[0].Name)

	require.NotNil(t, inv.last)
	action, _ := inv.last.Params.Get("Action")
	assert.Equal(t, "ListDocuments", action)
	max, _ := inv.last.Params.Get("MaxRecords")
	assert.Equal(t, "10", max)
}

func TestClientNilRequestDoesNotReachTransport(t *testing.T) {
	inv := &fakeInvoker{}
	client, err := fleet.NewClient("https://fleet.local", fleet.WithInvoker(inv))
	require.NoError(t, err)

	_, err = client.SendCommand(context.Background(), nil)
	require.ErrorIs(t, err, fleet.ErrNilRequest)
	assert.Zero(t, inv.calls, "a nil request must fail before any wire request is built")
}

func TestClientPropagatesInvokerError(t *testing.T) {
	inv := &fakeInvoker{err: assert.AnError}
	client, err := fleet.NewClient("https://fleet.local", fleet.WithInvoker(inv))
	require.NoError(t, err)

	res, err := client.GetDocument(context.Background(), &fleet.GetDocumentRequest{Name: fleet.String("doc")})
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, res)
}

func TestClientAgainstHTTPServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "DescribeInstanceInformation", r.PostForm.Get("Action"))
		assert.Equal(t, "PingStatus", r.PostForm.Get("Filters.Filter.1.Name"))
		assert.Equal(t, "Online", r.PostForm.Get("Filters.Filter.1.Values.Value.1"))

		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<DescribeInstanceInformationResponse>
  <InstanceInformationList>
    <InstanceInformation>
      <InstanceId>i-42</InstanceId>
      <PingStatus>Online</PingStatus>
      <PlatformType>Linux</PlatformType>
      <AgentVersion>3.2.1</AgentVersion>
      <IsLatestVersion>true</IsLatestVersion>
    </InstanceInformation>
  </InstanceInformationList>
  <NextToken>page-2</NextToken>
</DescribeInstanceInformationResponse>`))
	}))
	defer server.Close()

	client, err := fleet.NewClient(server.URL)
	require.NoError(t, err)

	res, err := client.DescribeInstanceInformation(context.Background(), &fleet.DescribeInstanceInformationRequest{
		Filters: []*fleet.Filter{
			{Name: fleet.String("PingStatus"), Values: []*string{fleet.String("Online")}},
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Instances, 1)
	assert.Equal(t, "i-42", res.Instances[0].InstanceID)
	assert.Equal(t, "Online", res.Instances[0].PingStatus)
	assert.True(t, res.Instances[0].IsLatestVersion)
	require.NotNil(t, res.Marker)
	assert.Equal(t, "page-2", *res.Marker)
}

func TestClientSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`<ErrorResponse>
  <Error><Code>InvalidDocument</Code><Message>no such document</Message></Error>
  <RequestId>req-1</RequestId>
</ErrorResponse>`))
	}))
	defer server.Close()

	client, err := fleet.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.DeleteDocument(context.Background(), &fleet.DeleteDocumentRequest{Name: fleet.String("ghost")})
	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "InvalidDocument", apiErr.Code)
	assert.Equal(t, "no such document", apiErr.Message)
}
