package transport

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/kbukum/apikit/transport"

// Option configures an engine at construction time.
type Option func(*options)

type options struct {
	httpClient     *http.Client
	traced         bool
	tracerProvider trace.TracerProvider
	http2          bool
}

// WithHTTPClient supplies a pre-configured *http.Client (custom transport,
// TLS, proxies). Only the Pooled engine honors it.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTracing records an OpenTelemetry client span around every dispatch
// using the globally registered tracer provider.
func WithTracing() Option {
	return func(o *options) { o.traced = true }
}

// WithTracerProvider is WithTracing with an explicit provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.traced = true
		o.tracerProvider = tp
	}
}

// WithHTTP2 forces HTTP/2 on the engine's transport.
func WithHTTP2() Option {
	return func(o *options) { o.http2 = true }
}

// tracer resolves the configured tracer, or nil when tracing is off.
func (o *options) tracer() trace.Tracer {
	if !o.traced {
		return nil
	}
	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(tracerName)
}
