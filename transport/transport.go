package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Request is the abstract outbound request handed to a Binding.
// It is fully assembled by the time it reaches the engine: the URL is
// absolute, headers are merged, and the body is raw bytes.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// URL is the absolute request URL.
	URL string
	// Headers are the request headers, single-valued.
	Headers map[string]string
	// Body is the raw request body. Empty means no body.
	Body []byte
}

// Response is the abstract result of a dispatched request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, single-valued.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// Binding executes one abstract request against a concrete HTTP engine and
// maps the result back. Implementations must be safe for concurrent use.
//
// A Binding never inspects the status code; a 404 is a successful dispatch.
// It returns a non-nil error only when no usable response was obtained
// (connection failure, timeout, malformed URL, body read failure).
type Binding interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// dispatch sends req through client and reads the full response.
func dispatch(ctx context.Context, client *http.Client, req *Request, tracer trace.Tracer) (*Response, error) {
	if tracer != nil {
		var span trace.Span
		ctx, span = tracer.Start(ctx, req.Method,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("url.full", req.URL),
			),
		)
		defer span.End()

		resp, err := send(ctx, client, req)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		if resp.StatusCode >= 400 {
			span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		}
		return resp, nil
	}
	return send(ctx, client, req)
}

// send performs the actual HTTP exchange.
func send(ctx context.Context, client *http.Client, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       data,
	}, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
