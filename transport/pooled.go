package transport

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http2"
)

// Pooled is the default engine: one shared net/http client with keep-alive
// connection reuse. Dispatch suspends on the request context, so per-call
// timeouts and cancellation come from the caller's context deadline.
type Pooled struct {
	client *http.Client
	tracer trace.Tracer
}

// compile-time assertion
var _ Binding = (*Pooled)(nil)

// NewPooled creates a pooled engine.
func NewPooled(opts ...Option) (*Pooled, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := o.httpClient
	if client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if o.http2 {
			if err := http2.ConfigureTransport(transport); err != nil {
				return nil, err
			}
		}
		// No client-level timeout: the caller's context bounds dispatch.
		client = &http.Client{Transport: transport}
	}

	return &Pooled{client: client, tracer: o.tracer()}, nil
}

// Do executes one request and returns the complete response.
func (p *Pooled) Do(ctx context.Context, req *Request) (*Response, error) {
	return dispatch(ctx, p.client, req, p.tracer)
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (p *Pooled) Unwrap() *http.Client {
	return p.client
}

// Close releases idle connections held by the engine.
func (p *Pooled) Close() {
	p.client.CloseIdleConnections()
}
