// Package fleet provides the typed Go bindings for the Corvus Fleet
// configuration-management service: request types, query-protocol
// marshallers, and synchronous and asynchronous client facades.
package fleet

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvusHold/fleet/internal/logger"
	"github.com/corvusHold/fleet/internal/metrics"
	"github.com/corvusHold/fleet/transport"
	"github.com/corvusHold/fleet/wire"
)

// API is the synchronous client surface: one blocking, context-first
// method per service operation.
type API interface {
	CancelCommand(ctx context.Context, req *CancelCommandRequest) (*CancelCommandResult, error)
	CreateAssociation(ctx context.Context, req *CreateAssociationRequest) (*CreateAssociationResult, error)
	CreateAssociationBatch(ctx context.Context, req *CreateAssociationBatchRequest) (*CreateAssociationBatchResult, error)
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*CreateDocumentResult, error)
	DeleteAssociation(ctx context.Context, req *DeleteAssociationRequest) (*DeleteAssociationResult, error)
	DeleteDocument(ctx context.Context, req *DeleteDocumentRequest) (*DeleteDocumentResult, error)
	DescribeAssociation(ctx context.Context, req *DescribeAssociationRequest) (*DescribeAssociationResult, error)
	DescribeDocument(ctx context.Context, req *DescribeDocumentRequest) (*DescribeDocumentResult, error)
	DescribeDocumentPermission(ctx context.Context, req *DescribeDocumentPermissionRequest) (*DescribeDocumentPermissionResult, error)
	DescribeInstanceInformation(ctx context.Context, req *DescribeInstanceInformationRequest) (*DescribeInstanceInformationResult, error)
	GetDocument(ctx context.Context, req *GetDocumentRequest) (*GetDocumentResult, error)
	ListAssociations(ctx context.Context, req *ListAssociationsRequest) (*ListAssociationsResult, error)
	ListCommandInvocations(ctx context.Context, req *ListCommandInvocationsRequest) (*ListCommandInvocationsResult, error)
	ListCommands(ctx context.Context, req *ListCommandsRequest) (*ListCommandsResult, error)
	ListDocuments(ctx context.Context, req *ListDocumentsRequest) (*ListDocumentsResult, error)
	ModifyDocumentPermission(ctx context.Context, req *ModifyDocumentPermissionRequest) (*ModifyDocumentPermissionResult, error)
	SendCommand(ctx context.Context, req *SendCommandRequest) (*SendCommandResult, error)
	UpdateAssociationStatus(ctx context.Context, req *UpdateAssociationStatusRequest) (*UpdateAssociationStatusResult, error)
}

// Invoker is the transport collaborator: it carries a marshalled wire
// request to the service and fills out with the decoded result. Retries,
// signing, and response decoding live behind this interface, not in the
// bindings.
type Invoker interface {
	Invoke(ctx context.Context, req *wire.Request, out any) error
}

// Client implements API by marshalling each request and delegating to the
// configured Invoker. It holds no mutable state after construction and is
// safe for concurrent use.
type Client struct {
	invoker Invoker
	log     zerolog.Logger
	metrics bool
}

// Option customizes Client construction.
type Option func(*Client) error

// WithInvoker overrides the transport used by the client.
func WithInvoker(inv Invoker) Option {
	return func(c *Client) error {
		c.invoker = inv
		return nil
	}
}

// WithLogger attaches a logger; call outcomes are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}

// WithMetrics enables Prometheus instrumentation of per-action call
// counts and latencies.
func WithMetrics() Option {
	return func(c *Client) error {
		c.metrics = true
		return nil
	}
}

// NewClient constructs a Client talking to the given endpoint. By default
// it uses the plain HTTP transport with no signer; use WithInvoker to
// substitute a signed or fake transport.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	c := &Client{
		invoker: transport.New(endpoint),
		log:     logger.Nop(),
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// do hands the wire request to the invoker and records the outcome.
func (c *Client) do(ctx context.Context, req *wire.Request, out any) error {
	start := time.Now()
	err := c.invoker.Invoke(ctx, req, out)
	status := "ok"
	if err != nil {
		status = "error"
	}
	if c.metrics {
		metrics.ObserveClientCall(req.Action, status, time.Since(start))
	}
	c.log.Debug().
		Str("action", req.Action).
		Str("status", status).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("fleet call")
	return err
}

func (c *Client) CancelCommand(ctx context.Context, req *CancelCommandRequest) (*CancelCommandResult, error) {
	wreq, err := MarshalCancelCommandRequest(req)
	if err != nil {
		return nil, err
	}
	out := &CancelCommandResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAssociation(ctx context.Context, req *CreateAssociationRequest) (*CreateAssociationResult, error) {
	wreq, err := MarshalCreateAssociationRequest(req)
	if err != nil {
		return nil, err
	}
	out := &CreateAssociationResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAssociationBatch(ctx context.Context, req *CreateAssociationBatchRequest) (*CreateAssociationBatchResult, error) {
	wreq, err := MarshalCreateAssociationBatchRequest(req)
	if err != nil {
		return nil, err
	}
	out := &CreateAssociationBatchResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*CreateDocumentResult, error) {
	wreq, err := MarshalCreateDocumentRequest(req)
	if err != nil {
		return nil, err
	}
	out := &CreateDocumentResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteAssociation(ctx context.Context, req *DeleteAssociationRequest) (*DeleteAssociationResult, error) {
	wreq, err := MarshalDeleteAssociationRequest(req)
	if err != nil {
		return nil, err
	}
	out := &DeleteAssociationResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteDocument(ctx context.Context, req *DeleteDocumentRequest) (*DeleteDocumentResult, error) {
	wreq, err := MarshalDeleteDocumentRequest(req)
	if err != nil {
		return nil, err
	}
	out := &DeleteDocumentResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeAssociation(ctx context.Context, req *DescribeAssociationRequest) (*DescribeAssociationResult, error) {
	wreq, err := MarshalDescribeAssociationRequest(req)
	if err != nil {
		return nil, err
	}
	out := &DescribeAssociationResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeDocument(ctx context.Context, req *DescribeDocumentRequest) (*DescribeDocumentResult, error) {
	wreq, err := MarshalDescribeDocumentRequest(req)
	if err != nil {
		return nil, err
	}
	out := &DescribeDocumentResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeDocumentPermission(ctx context.Context, req *DescribeDocumentPermissionRequest) (*DescribeDocumentPermissionResult, error) {
	wreq, err := MarshalDescribeDocumentPermissionRequest(req)
	if err != nil {
		return nil, err
	}
	out := &DescribeDocumentPermissionResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeInstanceInformation(ctx context.Context, req *DescribeInstanceInformationRequest) (*DescribeInstanceInformationResult, error) {
	wreq, err := MarshalDescribeInstanceInformationRequest(req)
	if err != nil {
		return nil, err
	}
	out := &DescribeInstanceInformationResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDocument(ctx context.Context, req *GetDocumentRequest) (*GetDocumentResult, error) {
	wreq, err := MarshalGetDocumentRequest(req)
	if err != nil {
		return nil, err
	}
	out := &GetDocumentResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAssociations(ctx context.Context, req *ListAssociationsRequest) (*ListAssociationsResult, error) {
	wreq, err := MarshalListAssociationsRequest(req)
	if err != nil {
		return nil, err
	}
	out := &ListAssociationsResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCommandInvocations(ctx context.Context, req *ListCommandInvocationsRequest) (*ListCommandInvocationsResult, error) {
	wreq, err := MarshalListCommandInvocationsRequest(req)
	if err != nil {
		return nil, err
	}
	out := &ListCommandInvocationsResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCommands(ctx context.Context, req *ListCommandsRequest) (*ListCommandsResult, error) {
	wreq, err := MarshalListCommandsRequest(req)
	if err != nil {
		return nil, err
	}
	out := &ListCommandsResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDocuments(ctx context.Context, req *ListDocumentsRequest) (*ListDocumentsResult, error) {
	wreq, err := MarshalListDocumentsRequest(req)
	if err != nil {
		return nil, err
	}
	out := &ListDocumentsResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ModifyDocumentPermission(ctx context.Context, req *ModifyDocumentPermissionRequest) (*ModifyDocumentPermissionResult, error) {
	wreq, err := MarshalModifyDocumentPermissionRequest(req)
	if err != nil {
		return nil, err
	}
	out := &ModifyDocumentPermissionResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendCommand(ctx context.Context, req *SendCommandRequest) (*SendCommandResult, error) {
	wreq, err := MarshalSendCommandRequest(req)
	if err != nil {
		return nil, err
	}
	out := &SendCommandResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateAssociationStatus(ctx context.Context, req *UpdateAssociationStatusRequest) (*UpdateAssociationStatusResult, error) {
	wreq, err := MarshalUpdateAssociationStatusRequest(req)
	if err != nil {
		return nil, err
	}
	out := &UpdateAssociationStatusResult{}
	if err := c.do(ctx, wreq, out); err != nil {
		return nil, err
	}
	return out, nil
}
