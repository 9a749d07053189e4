package interceptor

import (
	"context"

	"github.com/kbukum/apikit/transport"
)

// Interceptor observes or mutates an assembled request before dispatch.
// Returning a non-nil error vetoes the call: remaining interceptors are
// skipped and nothing is sent.
type Interceptor interface {
	Intercept(ctx context.Context, req *transport.Request) error
}

// Func adapts a plain function into an Interceptor. The pointer identity
// of a Func is stable, so the value returned by Of can later be handed to
// the chain's remove operation.
type Func struct {
	fn func(ctx context.Context, req *transport.Request) error
}

// Of wraps fn as an interceptor.
func Of(fn func(ctx context.Context, req *transport.Request) error) *Func {
	return &Func{fn: fn}
}

// Intercept invokes the wrapped function.
func (f *Func) Intercept(ctx context.Context, req *transport.Request) error {
	return f.fn(ctx, req)
}

// setHeader writes a header on the abstract request, allocating the map
// when the request carries none.
func setHeader(req *transport.Request, key, value string) {
	if req.Headers == nil {
		req.Headers = make(map[string]string)
	}
	req.Headers[key] = value
}
