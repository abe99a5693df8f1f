package responses

import "context"

// Invoker is the invocation surface the call loops depend on.
type Invoker interface {
	Create(ctx context.Context, req Request) (*Response, error)
	Stream(ctx context.Context, req Request, onEvent func(StreamEvent)) error
}
