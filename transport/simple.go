package transport

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http2"
)

// Simple is the connection-per-request engine. Every dispatch opens a fresh
// connection and closes it when the response has been read, so no state is
// shared between calls. The calling goroutine blocks for the duration of
// the exchange.
type Simple struct {
	tracer trace.Tracer
	http2  bool
}

// compile-time assertion
var _ Binding = (*Simple)(nil)

// NewSimple creates a connection-per-request engine.
// WithHTTPClient is ignored: the engine builds a throwaway client per call.
func NewSimple(opts ...Option) *Simple {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Simple{tracer: o.tracer(), http2: o.http2}
}

// Do executes one request over a dedicated connection.
func (s *Simple) Do(ctx context.Context, req *Request) (*Response, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	if s.http2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, err
		}
	}
	defer transport.CloseIdleConnections()

	client := &http.Client{Transport: transport}
	return dispatch(ctx, client, req, s.tracer)
}
