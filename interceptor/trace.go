package interceptor

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/kbukum/apikit/transport"
)

// TraceContext injects the caller's trace context (traceparent/tracestate
// or whatever the registered propagator emits) into the request headers,
// so downstream services can join the trace.
func TraceContext() *Func {
	return TraceContextWithPropagator(nil)
}

// TraceContextWithPropagator is TraceContext with an explicit propagator.
// A nil propagator falls back to the global one.
func TraceContextWithPropagator(p propagation.TextMapPropagator) *Func {
	return Of(func(ctx context.Context, req *transport.Request) error {
		propagator := p
		if propagator == nil {
			propagator = otel.GetTextMapPropagator()
		}
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}
		propagator.Inject(ctx, headerCarrier(req.Headers))
		return nil
	})
}

// headerCarrier adapts the abstract request's header map to the
// propagation carrier interface.
type headerCarrier map[string]string

func (c headerCarrier) Get(key string) string { return c[key] }

func (c headerCarrier) Set(key, value string) { c[key] = value }

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
