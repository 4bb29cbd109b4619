package transport_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusHold/fleet/transport"
	"github.com/corvusHold/fleet/wire"
)

const endpoint = "https://fleet.test/"

func newMockedClient(t *testing.T, opts ...transport.Option) *transport.Client {
	t.Helper()
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	opts = append([]transport.Option{transport.WithHTTPDoer(httpClient)}, opts...)
	return transport.New(endpoint, opts...)
}

func TestInvokePostsFormAndDecodesXML(t *testing.T) {
	c := newMockedClient(t)

	var gotForm url.Values
	httpmock.RegisterResponder(http.MethodPost, endpoint,
		func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			gotForm, err = url.ParseQuery(string(body))
			require.NoError(t, err)
			assert.Equal(t, "application/x-www-form-urlencoded; charset=utf-8", req.Header.Get("Content-Type"))

			resp := httpmock.NewStringResponse(http.StatusOK,
				`<GetDocumentResponse><Name>doc-a</Name><Content>hello</Content></GetDocumentResponse>`)
			resp.Header.Set("Content-Type", "text/xml")
			return resp, nil
		})

	req := wire.New("CorvusFleet", "GetDocument", "2025-01-20")
	req.AddParam("Name", "doc-a")

	var out struct {
		Name    string `xml:"Name"`
		Content string `xml:"Content"`
	}
	require.NoError(t, c.Invoke(context.Background(), req, &out))

	assert.Equal(t, "GetDocument", gotForm.Get("Action"))
	assert.Equal(t, "2025-01-20", gotForm.Get("Version"))
	assert.Equal(t, "doc-a", gotForm.Get("Name"))
	assert.Equal(t, "doc-a", out.Name)
	assert.Equal(t, "hello", out.Content)
}

func TestInvokeSignsRequest(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	signer := &transport.HMACSigner{
		AccessKey: "AK123",
		SecretKey: "secret",
		Now:       func() time.Time { return fixed },
	}
	c := newMockedClient(t, transport.WithSigner(signer))

	var gotForm url.Values
	httpmock.RegisterResponder(http.MethodPost, endpoint,
		func(req *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			gotForm, err = url.ParseQuery(string(body))
			require.NoError(t, err)
			return httpmock.NewStringResponse(http.StatusOK, ""), nil
		})

	req := wire.New("CorvusFleet", "DeleteDocument", "2025-01-20")
	req.AddParam("Name", "doc-a")
	require.NoError(t, c.Invoke(context.Background(), req, nil))

	assert.Equal(t, "AK123", gotForm.Get("AccessKeyId"))
	assert.Equal(t, "2025-06-01T12:00:00Z", gotForm.Get("Timestamp"))
	assert.Equal(t, "HmacSHA256", gotForm.Get("SignatureMethod"))

	// The signature covers every parameter appended before it.
	canonical := "CorvusFleet\nPOST\n" +
		"Action=DeleteDocument&Version=2025-01-20&Name=doc-a" +
		"&AccessKeyId=AK123&Timestamp=2025-06-01T12%3A00%3A00Z&SignatureMethod=HmacSHA256"
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte(canonical))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	assert.Equal(t, want, gotForm.Get("Signature"))
}

func TestInvokeMapsServiceError(t *testing.T) {
	c := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, endpoint,
		httpmock.NewStringResponder(http.StatusForbidden,
			`<ErrorResponse><Error><Code>AccessDenied</Code><Message>signature mismatch</Message></Error><RequestId>r-1</RequestId></ErrorResponse>`))

	req := wire.New("CorvusFleet", "ListDocuments", "2025-01-20")
	err := c.Invoke(context.Background(), req, nil)

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "AccessDenied", apiErr.Code)
	assert.Equal(t, "signature mismatch", apiErr.Message)
	assert.Equal(t, "r-1", apiErr.RequestID)
	assert.Contains(t, apiErr.Error(), "AccessDenied")
}

func TestInvokeMalformedErrorBodyStillFails(t *testing.T) {
	c := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, endpoint,
		httpmock.NewStringResponder(http.StatusInternalServerError, "not xml"))

	req := wire.New("CorvusFleet", "ListDocuments", "2025-01-20")
	err := c.Invoke(context.Background(), req, nil)

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Code)
}

func TestInvokeNilOutDiscardsBody(t *testing.T) {
	c := newMockedClient(t)

	httpmock.RegisterResponder(http.MethodPost, endpoint,
		httpmock.NewStringResponder(http.StatusOK, `<CancelCommandResponse/>`))

	req := wire.New("CorvusFleet", "CancelCommand", "2025-01-20")
	require.NoError(t, c.Invoke(context.Background(), req, nil))
}

func TestInvokeTransportError(t *testing.T) {
	c := newMockedClient(t)
	// No responder registered: httpmock fails the call.

	req := wire.New("CorvusFleet", "ListDocuments", "2025-01-20")
	err := c.Invoke(context.Background(), req, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListDocuments")
}
