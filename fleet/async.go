package fleet

import (
	"context"

	"github.com/corvusHold/fleet/async"
)

// AsyncHandler receives notification when an asynchronous call completes.
// Exactly one of the two callbacks is invoked, exactly once per call.
type AsyncHandler[Req, Res any] interface {
	OnSuccess(req Req, res Res)
	OnError(err error)
}

// AsyncHandlerFuncs adapts plain functions to AsyncHandler. Nil fields are
// simply not called.
type AsyncHandlerFuncs[Req, Res any] struct {
	Success func(req Req, res Res)
	Error   func(err error)
}

func (h AsyncHandlerFuncs[Req, Res]) OnSuccess(req Req, res Res) {
	if h.Success != nil {
		h.Success(req, res)
	}
}

func (h AsyncHandlerFuncs[Req, Res]) OnError(err error) {
	if h.Error != nil {
		h.Error(err)
	}
}

// AsyncAPI is the asynchronous client surface: every operation of API,
// each in a future-only and a future-plus-handler variant.
type AsyncAPI interface {
	CancelCommandAsync(ctx context.Context, req *CancelCommandRequest) *async.Future[*CancelCommandResult]
	CancelCommandAsyncWithHandler(ctx context.Context, req *CancelCommandRequest, h AsyncHandler[*CancelCommandRequest, *CancelCommandResult]) *async.Future[*CancelCommandResult]
	CreateAssociationAsync(ctx context.Context, req *CreateAssociationRequest) *async.Future[*CreateAssociationResult]
	CreateAssociationAsyncWithHandler(ctx context.Context, req *CreateAssociationRequest, h AsyncHandler[*CreateAssociationRequest, *CreateAssociationResult]) *async.Future[*CreateAssociationResult]
	CreateAssociationBatchAsync(ctx context.Context, req *CreateAssociationBatchRequest) *async.Future[*CreateAssociationBatchResult]
	CreateAssociationBatchAsyncWithHandler(ctx context.Context, req *CreateAssociationBatchRequest, h AsyncHandler[*CreateAssociationBatchRequest, *CreateAssociationBatchResult]) *async.Future[*CreateAssociationBatchResult]
	CreateDocumentAsync(ctx context.Context, req *CreateDocumentRequest) *async.Future[*CreateDocumentResult]
	CreateDocumentAsyncWithHandler(ctx context.Context, req *CreateDocumentRequest, h AsyncHandler[*CreateDocumentRequest, *CreateDocumentResult]) *async.Future[*CreateDocumentResult]
	DeleteAssociationAsync(ctx context.Context, req *DeleteAssociationRequest) *async.Future[*DeleteAssociationResult]
	DeleteAssociationAsyncWithHandler(ctx context.Context, req *DeleteAssociationRequest, h AsyncHandler[*DeleteAssociationRequest, *DeleteAssociationResult]) *async.Future[*DeleteAssociationResult]
	DeleteDocumentAsync(ctx context.Context, req *DeleteDocumentRequest) *async.Future[*DeleteDocumentResult]
	DeleteDocumentAsyncWithHandler(ctx context.Context, req *DeleteDocumentRequest, h AsyncHandler[*DeleteDocumentRequest, *DeleteDocumentResult]) *async.Future[*DeleteDocumentResult]
	DescribeAssociationAsync(ctx context.Context, req *DescribeAssociationRequest) *async.Future[*DescribeAssociationResult]
	DescribeAssociationAsyncWithHandler(ctx context.Context, req *DescribeAssociationRequest, h AsyncHandler[*DescribeAssociationRequest, *DescribeAssociationResult]) *async.Future[*DescribeAssociationResult]
	DescribeDocumentAsync(ctx context.Context, req *DescribeDocumentRequest) *async.Future[*DescribeDocumentResult]
	DescribeDocumentAsyncWithHandler(ctx context.Context, req *DescribeDocumentRequest, h AsyncHandler[*DescribeDocumentRequest, *DescribeDocumentResult]) *async.Future[*DescribeDocumentResult]
	DescribeDocumentPermissionAsync(ctx context.Context, req *DescribeDocumentPermissionRequest) *async.Future[*DescribeDocumentPermissionResult]
	DescribeDocumentPermissionAsyncWithHandler(ctx context.Context, req *DescribeDocumentPermissionRequest, h AsyncHandler[*DescribeDocumentPermissionRequest, *DescribeDocumentPermissionResult]) *async.Future[*DescribeDocumentPermissionResult]
	DescribeInstanceInformationAsync(ctx context.Context, req *DescribeInstanceInformationRequest) *async.Future[*DescribeInstanceInformationResult]
	DescribeInstanceInformationAsyncWithHandler(ctx context.Context, req *DescribeInstanceInformationRequest, h AsyncHandler[*DescribeInstanceInformationRequest, *DescribeInstanceInformationResult]) *async.Future[*DescribeInstanceInformationResult]
	GetDocumentAsync(ctx context.Context, req *GetDocumentRequest) *async.Future[*GetDocumentResult]
	GetDocumentAsyncWithHandler(ctx context.Context, req *GetDocumentRequest, h AsyncHandler[*GetDocumentRequest, *GetDocumentResult]) *async.Future[*GetDocumentResult]
	ListAssociationsAsync(ctx context.Context, req *ListAssociationsRequest) *async.Future[*ListAssociationsResult]
	ListAssociationsAsyncWithHandler(ctx context.Context, req *ListAssociationsRequest, h AsyncHandler[*ListAssociationsRequest, *ListAssociationsResult]) *async.Future[*ListAssociationsResult]
	ListCommandInvocationsAsync(ctx context.Context, req *ListCommandInvocationsRequest) *async.Future[*ListCommandInvocationsResult]
	ListCommandInvocationsAsyncWithHandler(ctx context.Context, req *ListCommandInvocationsRequest, h AsyncHandler[*ListCommandInvocationsRequest, *ListCommandInvocationsResult]) *async.Future[*ListCommandInvocationsResult]
	ListCommandsAsync(ctx context.Context, req *ListCommandsRequest) *async.Future[*ListCommandsResult]
	ListCommandsAsyncWithHandler(ctx context.Context, req *ListCommandsRequest, h AsyncHandler[*ListCommandsRequest, *ListCommandsResult]) *async.Future[*ListCommandsResult]
	ListDocumentsAsync(ctx context.Context, req *ListDocumentsRequest) *async.Future[*ListDocumentsResult]
	ListDocumentsAsyncWithHandler(ctx context.Context, req *ListDocumentsRequest, h AsyncHandler[*ListDocumentsRequest, *ListDocumentsResult]) *async.Future[*ListDocumentsResult]
	ModifyDocumentPermissionAsync(ctx context.Context, req *ModifyDocumentPermissionRequest) *async.Future[*ModifyDocumentPermissionResult]
	ModifyDocumentPermissionAsyncWithHandler(ctx context.Context, req *ModifyDocumentPermissionRequest, h AsyncHandler[*ModifyDocumentPermissionRequest, *ModifyDocumentPermissionResult]) *async.Future[*ModifyDocumentPermissionResult]
	SendCommandAsync(ctx context.Context, req *SendCommandRequest) *async.Future[*SendCommandResult]
	SendCommandAsyncWithHandler(ctx context.Context, req *SendCommandRequest, h AsyncHandler[*SendCommandRequest, *SendCommandResult]) *async.Future[*SendCommandResult]
	UpdateAssociationStatusAsync(ctx context.Context, req *UpdateAssociationStatusRequest) *async.Future[*UpdateAssociationStatusResult]
	UpdateAssociationStatusAsyncWithHandler(ctx context.Context, req *UpdateAssociationStatusRequest, h AsyncHandler[*UpdateAssociationStatusRequest, *UpdateAssociationStatusResult]) *async.Future[*UpdateAssociationStatusResult]
}

// AsyncClient implements AsyncAPI by running the wrapped synchronous API
// on an executor. There is no per-operation concurrency logic; every
// method goes through the same generic adapter.
type AsyncClient struct {
	api  API
	exec *async.Executor
}

// AsyncOption customizes AsyncClient construction.
type AsyncOption func(*AsyncClient)

// WithExecutor substitutes the executor backing the async facade.
func WithExecutor(exec *async.Executor) AsyncOption {
	return func(c *AsyncClient) {
		c.exec = exec
	}
}

// NewAsyncClient wraps a synchronous API with an async facade. Without
// WithExecutor, a default-sized executor is created and owned by the
// returned client.
func NewAsyncClient(api API, opts ...AsyncOption) *AsyncClient {
	c := &AsyncClient{api: api}
	for _, o := range opts {
		o(c)
	}
	if c.exec == nil {
		c.exec = async.NewExecutor(async.DefaultWorkers)
	}
	return c
}

// Close shuts down the executor, waiting for in-flight calls.
func (c *AsyncClient) Close() {
	c.exec.Close()
}

// callAsync is the run-on-pool-and-signal-completion adapter shared by
// every operation. The handler, when present, observes the future's final
// state, so exactly one callback fires exactly once even when the call is
// cancelled before it starts or the executor rejects it.
func callAsync[Req, Res any](c *AsyncClient, ctx context.Context, req Req,
	call func(context.Context, Req) (Res, error), h AsyncHandler[Req, Res]) *async.Future[Res] {

	f := async.Go(c.exec, ctx, func(ctx context.Context) (Res, error) {
		return call(ctx, req)
	})
	if h != nil {
		go func() {
			res, err := f.Result()
			if err != nil {
				h.OnError(err)
				return
			}
			h.OnSuccess(req, res)
		}()
	}
	return f
}

func (c *AsyncClient) CancelCommandAsync(ctx context.Context, req *CancelCommandRequest) *async.Future[*CancelCommandResult] {
	return callAsync[*CancelCommandRequest, *CancelCommandResult](c, ctx, req, c.api.CancelCommand, nil)
}

func (c *AsyncClient) CancelCommandAsyncWithHandler(ctx context.Context, req *CancelCommandRequest, h AsyncHandler[*CancelCommandRequest, *CancelCommandResult]) *async.Future[*CancelCommandResult] {
	return callAsync(c, ctx, req, c.api.CancelCommand, h)
}

func (c *AsyncClient) CreateAssociationAsync(ctx context.Context, req *CreateAssociationRequest) *async.Future[*CreateAssociationResult] {
	return callAsync[*CreateAssociationRequest, *CreateAssociationResult](c, ctx, req, c.api.CreateAssociation, nil)
}

func (c *AsyncClient) CreateAssociationAsyncWithHandler(ctx context.Context, req *CreateAssociationRequest, h AsyncHandler[*CreateAssociationRequest, *CreateAssociationResult]) *async.Future[*CreateAssociationResult] {
	return callAsync(c, ctx, req, c.api.CreateAssociation, h)
}

func (c *AsyncClient) CreateAssociationBatchAsync(ctx context.Context, req *CreateAssociationBatchRequest) *async.Future[*CreateAssociationBatchResult] {
	return callAsync[*CreateAssociationBatchRequest, *CreateAssociationBatchResult](c, ctx, req, c.api.CreateAssociationBatch, nil)
}

func (c *AsyncClient) CreateAssociationBatchAsyncWithHandler(ctx context.Context, req *CreateAssociationBatchRequest, h AsyncHandler[*CreateAssociationBatchRequest, *CreateAssociationBatchResult]) *async.Future[*CreateAssociationBatchResult] {
	return callAsync(c, ctx, req, c.api.CreateAssociationBatch, h)
}

func (c *AsyncClient) CreateDocumentAsync(ctx context.Context, req *CreateDocumentRequest) *async.Future[*CreateDocumentResult] {
	return callAsync[*CreateDocumentRequest, *CreateDocumentResult](c, ctx, req, c.api.CreateDocument, nil)
}

func (c *AsyncClient) CreateDocumentAsyncWithHandler(ctx context.Context, req *CreateDocumentRequest, h AsyncHandler[*CreateDocumentRequest, *CreateDocumentResult]) *async.Future[*CreateDocumentResult] {
	return callAsync(c, ctx, req, c.api.CreateDocument, h)
}

func (c *AsyncClient) DeleteAssociationAsync(ctx context.Context, req *DeleteAssociationRequest) *async.Future[*DeleteAssociationResult] {
	return callAsync[*DeleteAssociationRequest, *DeleteAssociationResult](c, ctx, req, c.api.DeleteAssociation, nil)
}

func (c *AsyncClient) DeleteAssociationAsyncWithHandler(ctx context.Context, req *DeleteAssociationRequest, h AsyncHandler[*DeleteAssociationRequest, *DeleteAssociationResult]) *async.Future[*DeleteAssociationResult] {
	return callAsync(c, ctx, req, c.api.DeleteAssociation, h)
}

func (c *AsyncClient) DeleteDocumentAsync(ctx context.Context, req *DeleteDocumentRequest) *async.Future[*DeleteDocumentResult] {
	return callAsync[*DeleteDocumentRequest, *DeleteDocumentResult](c, ctx, req, c.api.DeleteDocument, nil)
}

func (c *AsyncClient) DeleteDocumentAsyncWithHandler(ctx context.Context, req *DeleteDocumentRequest, h AsyncHandler[*DeleteDocumentRequest, *DeleteDocumentResult]) *async.Future[*DeleteDocumentResult] {
	return callAsync(c, ctx, req, c.api.DeleteDocument, h)
}

func (c *AsyncClient) DescribeAssociationAsync(ctx context.Context, req *DescribeAssociationRequest) *async.Future[*DescribeAssociationResult] {
	return callAsync[*DescribeAssociationRequest, *DescribeAssociationResult](c, ctx, req, c.api.DescribeAssociation, nil)
}

func (c *AsyncClient) DescribeAssociationAsyncWithHandler(ctx context.Context, req *DescribeAssociationRequest, h AsyncHandler[*DescribeAssociationRequest, *DescribeAssociationResult]) *async.Future[*DescribeAssociationResult] {
	return callAsync(c, ctx, req, c.api.DescribeAssociation, h)
}

func (c *AsyncClient) DescribeDocumentAsync(ctx context.Context, req *DescribeDocumentRequest) *async.Future[*DescribeDocumentResult] {
	return callAsync[*DescribeDocumentRequest, *DescribeDocumentResult](c, ctx, req, c.api.DescribeDocument, nil)
}

func (c *AsyncClient) DescribeDocumentAsyncWithHandler(ctx context.Context, req *DescribeDocumentRequest, h AsyncHandler[*DescribeDocumentRequest, *DescribeDocumentResult]) *async.Future[*DescribeDocumentResult] {
	return callAsync(c, ctx, req, c.api.DescribeDocument, h)
}

func (c *AsyncClient) DescribeDocumentPermissionAsync(ctx context.Context, req *DescribeDocumentPermissionRequest) *async.Future[*DescribeDocumentPermissionResult] {
	return callAsync[*DescribeDocumentPermissionRequest, *DescribeDocumentPermissionResult](c, ctx, req, c.api.DescribeDocumentPermission, nil)
}

func (c *AsyncClient) DescribeDocumentPermissionAsyncWithHandler(ctx context.Context, req *DescribeDocumentPermissionRequest, h AsyncHandler[*DescribeDocumentPermissionRequest, *DescribeDocumentPermissionResult]) *async.Future[*DescribeDocumentPermissionResult] {
	return callAsync(c, ctx, req, c.api.DescribeDocumentPermission, h)
}

func (c *AsyncClient) DescribeInstanceInformationAsync(ctx context.Context, req *DescribeInstanceInformationRequest) *async.Future[*DescribeInstanceInformationResult] {
	return callAsync[*DescribeInstanceInformationRequest, *DescribeInstanceInformationResult](c, ctx, req, c.api.DescribeInstanceInformation, nil)
}

func (c *AsyncClient) DescribeInstanceInformationAsyncWithHandler(ctx context.Context, req *DescribeInstanceInformationRequest, h AsyncHandler[*DescribeInstanceInformationRequest, *DescribeInstanceInformationResult]) *async.Future[*DescribeInstanceInformationResult] {
	return callAsync(c, ctx, req, c.api.DescribeInstanceInformation, h)
}

func (c *AsyncClient) GetDocumentAsync(ctx context.Context, req *GetDocumentRequest) *async.Future[*GetDocumentResult] {
	return callAsync[*GetDocumentRequest, *GetDocumentResult](c, ctx, req, c.api.GetDocument, nil)
}

func (c *AsyncClient) GetDocumentAsyncWithHandler(ctx context.Context, req *GetDocumentRequest, h AsyncHandler[*GetDocumentRequest, *GetDocumentResult]) *async.Future[*GetDocumentResult] {
	return callAsync(c, ctx, req, c.api.GetDocument, h)
}

func (c *AsyncClient) ListAssociationsAsync(ctx context.Context, req *ListAssociationsRequest) *async.Future[*ListAssociationsResult] {
	return callAsync[*ListAssociationsRequest, *ListAssociationsResult](c, ctx, req, c.api.ListAssociations, nil)
}

func (c *AsyncClient) ListAssociationsAsyncWithHandler(ctx context.Context, req *ListAssociationsRequest, h AsyncHandler[*ListAssociationsRequest, *ListAssociationsResult]) *async.Future[*ListAssociationsResult] {
	return callAsync(c, ctx, req, c.api.ListAssociations, h)
}

func (c *AsyncClient) ListCommandInvocationsAsync(ctx context.Context, req *ListCommandInvocationsRequest) *async.Future[*ListCommandInvocationsResult] {
	return callAsync[*ListCommandInvocationsRequest, *ListCommandInvocationsResult](c, ctx, req, c.api.ListCommandInvocations, nil)
}

func (c *AsyncClient) ListCommandInvocationsAsyncWithHandler(ctx context.Context, req *ListCommandInvocationsRequest, h AsyncHandler[*ListCommandInvocationsRequest, *ListCommandInvocationsResult]) *async.Future[*ListCommandInvocationsResult] {
	return callAsync(c, ctx, req, c.api.ListCommandInvocations, h)
}

func (c *AsyncClient) ListCommandsAsync(ctx context.Context, req *ListCommandsRequest) *async.Future[*ListCommandsResult] {
	return callAsync[*ListCommandsRequest, *ListCommandsResult](c, ctx, req, c.api.ListCommands, nil)
}

func (c *AsyncClient) ListCommandsAsyncWithHandler(ctx context.Context, req *ListCommandsRequest, h AsyncHandler[*ListCommandsRequest, *ListCommandsResult]) *async.Future[*ListCommandsResult] {
	return callAsync(c, ctx, req, c.api.ListCommands, h)
}

func (c *AsyncClient) ListDocumentsAsync(ctx context.Context, req *ListDocumentsRequest) *async.Future[*ListDocumentsResult] {
	return callAsync[*ListDocumentsRequest, *ListDocumentsResult](c, ctx, req, c.api.ListDocuments, nil)
}

func (c *AsyncClient) ListDocumentsAsyncWithHandler(ctx context.Context, req *ListDocumentsRequest, h AsyncHandler[*ListDocumentsRequest, *ListDocumentsResult]) *async.Future[*ListDocumentsResult] {
	return callAsync(c, ctx, req, c.api.ListDocuments, h)
}

func (c *AsyncClient) ModifyDocumentPermissionAsync(ctx context.Context, req *ModifyDocumentPermissionRequest) *async.Future[*ModifyDocumentPermissionResult] {
	return callAsync[*ModifyDocumentPermissionRequest, *ModifyDocumentPermissionResult](c, ctx, req, c.api.ModifyDocumentPermission, nil)
}

func (c *AsyncClient) ModifyDocumentPermissionAsyncWithHandler(ctx context.Context, req *ModifyDocumentPermissionRequest, h AsyncHandler[*ModifyDocumentPermissionRequest, *ModifyDocumentPermissionResult]) *async.Future[*ModifyDocumentPermissionResult] {
	return callAsync(c, ctx, req, c.api.ModifyDocumentPermission, h)
}

func (c *AsyncClient) SendCommandAsync(ctx context.Context, req *SendCommandRequest) *async.Future[*SendCommandResult] {
	return callAsync[*SendCommandRequest, *SendCommandResult](c, ctx, req, c.api.SendCommand, nil)
}

func (c *AsyncClient) SendCommandAsyncWithHandler(ctx context.Context, req *SendCommandRequest, h AsyncHandler[*SendCommandRequest, *SendCommandResult]) *async.Future[*SendCommandResult] {
	return callAsync(c, ctx, req, c.api.SendCommand, h)
}

func (c *AsyncClient) UpdateAssociationStatusAsync(ctx context.Context, req *UpdateAssociationStatusRequest) *async.Future[*UpdateAssociationStatusResult] {
	return callAsync[*UpdateAssociationStatusRequest, *UpdateAssociationStatusResult](c, ctx, req, c.api.UpdateAssociationStatus, nil)
}

func (c *AsyncClient) UpdateAssociationStatusAsyncWithHandler(ctx context.Context, req *UpdateAssociationStatusRequest, h AsyncHandler[*UpdateAssociationStatusRequest, *UpdateAssociationStatusResult]) *async.Future[*UpdateAssociationStatusResult] {
	return callAsync(c, ctx, req, c.api.UpdateAssociationStatus, h)
}

var (
	_ API      = (*Client)(nil)
	_ AsyncAPI = (*AsyncClient)(nil)
)
