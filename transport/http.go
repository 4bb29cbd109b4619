// Package transport carries marshalled wire requests to the Corvus Fleet
// endpoint over HTTP and decodes the XML responses. It implements the
// Invoker collaborator the bindings delegate to; retries, backoff, and
// pagination deliberately do not live here.
package transport

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/corvusHold/fleet/internal/logger"
	"github.com/corvusHold/fleet/wire"
)

// HttpRequestDoer performs HTTP requests. *http.Client satisfies it;
// tests substitute fakes.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DecodeFunc decodes a successful response body into the typed result.
type DecodeFunc func(body []byte, out any) error

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Code       string `xml:"Error>Code"`
	Message    string `xml:"Error>Message"`
	RequestID  string `xml:"RequestId"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("fleet: %s: %s (http %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("fleet: http %d", e.StatusCode)
}

// Client sends wire requests to a single endpoint.
type Client struct {
	endpoint string
	doer     HttpRequestDoer
	signer   Signer
	decode   DecodeFunc
	log      zerolog.Logger
}

// Option customizes Client construction.
type Option func(*Client)

// WithHTTPDoer overrides the underlying HTTP client.
func WithHTTPDoer(d HttpRequestDoer) Option {
	return func(c *Client) { c.doer = d }
}

// WithSigner attaches a request signer.
func WithSigner(s Signer) Option {
	return func(c *Client) { c.signer = s }
}

// WithDecoder overrides the response decoder.
func WithDecoder(d DecodeFunc) Option {
	return func(c *Client) { c.decode = d }
}

// WithLogger attaches a logger for request/response tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client posting to endpoint. Defaults: http.DefaultClient,
// no signing, XML decoding.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		doer:     http.DefaultClient,
		signer:   NopSigner{},
		decode:   decodeXML,
		log:      logger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func decodeXML(body []byte, out any) error {
	if err := xml.Unmarshal(body, out); err != nil {
		return fmt.Errorf("transport: decode response: %w", err)
	}
	return nil
}

// Invoke signs the request, posts its parameters as a form body, and
// decodes the response into out. out may be nil to discard the body.
func (c *Client) Invoke(ctx context.Context, req *wire.Request, out any) error {
	if err := c.signer.Sign(req); err != nil {
		return fmt.Errorf("transport: sign request: %w", err)
	}

	body := req.Params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("transport: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	c.log.Debug().
		Str("action", req.Action).
		Str("endpoint", c.endpoint).
		Int("params", req.Params.Len()).
		Msg("sending request")

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return fmt.Errorf("transport: %s: %w", req.Action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("transport: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Error envelope decoding is best effort; the status code alone
		// already identifies a failure.
		_ = xml.Unmarshal(respBody, apiErr)
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return c.decode(respBody, out)
}
