package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbukum/apikit/codec"
	"github.com/kbukum/apikit/transport"
)

// CallOption adjusts a single invocation (extra headers, query params)
// without touching the shared configuration or the call object.
type CallOption func(*callOptions)

type callOptions struct {
	header map[string]string
	query  QueryParam
}

// WithHeader adds one request-specific header, overriding a default header
// of the same name.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if o.header == nil {
			o.header = make(map[string]string)
		}
		o.header[key] = value
	}
}

// WithHeaders adds request-specific headers.
func WithHeaders(h map[string]string) CallOption {
	return func(o *callOptions) {
		if o.header == nil {
			o.header = make(map[string]string, len(h))
		}
		for k, v := range h {
			o.header[k] = v
		}
	}
}

// WithQuery adds query parameters to the resolved URL.
func WithQuery(q QueryParam) CallOption {
	return func(o *callOptions) {
		if o.query == nil {
			o.query = make(QueryParam, len(q))
		}
		for k, v := range q {
			o.query[k] = v
		}
	}
}

// WithQueryParam adds one query parameter.
func WithQueryParam(key, value string) CallOption {
	return func(o *callOptions) {
		if o.query == nil {
			o.query = make(QueryParam)
		}
		o.query[key] = value
	}
}

// do runs the engine-agnostic pipeline shared by every call variant:
// expand the path, resolve the URL, merge headers, run the interceptor
// chain, and dispatch with the configured timeout bounding only the
// dispatch step. The response comes back unclassified; status handling
// belongs to decodeResponse.
func (b *Base) do(ctx context.Context, method, path string, params PathParam, contentType string, body []byte, opts []CallOption) (*transport.Response, error) {
	var options callOptions
	for _, opt := range opts {
		opt(&options)
	}

	rendered, err := ExpandPath(path, params)
	if err != nil {
		return nil, err
	}

	st := b.snapshot()
	if st.baseURL == nil {
		return nil, NewConfigurationError("base URL is not set")
	}
	if st.binding == nil {
		return nil, NewConfigurationError("no transport client configured")
	}

	resolved, err := st.baseURL.Parse(rendered)
	if err != nil {
		return nil, NewConfigurationError(fmt.Sprintf("resolve URL %q: %v", rendered, err))
	}
	if len(options.query) > 0 {
		q := resolved.Query()
		for k, v := range options.query {
			q.Set(k, v)
		}
		resolved.RawQuery = q.Encode()
	}

	// Defaults first, then the codec content type, then per-call headers.
	headers := make(map[string]string, len(st.defaultHeader)+len(options.header)+1)
	for k, v := range st.defaultHeader {
		headers[k] = v
	}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}
	for k, v := range options.header {
		headers[k] = v
	}

	req := &transport.Request{
		Method:  method,
		URL:     resolved.String(),
		Headers: headers,
		Body:    body,
	}

	for _, ic := range st.interceptors {
		if err := ic.Intercept(ctx, req); err != nil {
			return nil, NewInterceptorError(err)
		}
	}

	if st.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, st.timeout)
		defer cancel()
	}

	st.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("body_bytes", len(req.Body)).
		Msg("dispatching request")

	resp, err := st.binding.Do(ctx, req)
	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(ctx.Err(), context.DeadlineExceeded)
		return nil, NewTransportError(err, timeout)
	}
	return resp, nil
}

// decodeResponse turns an abstract response into the typed result. On a
// non-success status the body is still offered to the deserializer; when
// it decodes, the value rides along with the protocol error so callers can
// inspect structured error payloads.
func decodeResponse[R any](dec codec.Deserializer[R], resp *transport.Response, err error) (R, error) {
	var zero R
	if err != nil {
		return zero, err
	}

	contentType := resp.Headers["Content-Type"]
	if !resp.IsSuccess() {
		protocolErr := NewProtocolError(resp.StatusCode, resp.Body)
		if value, decErr := dec.Decode(resp.Body, contentType); decErr == nil {
			return value, protocolErr
		}
		return zero, protocolErr
	}

	value, decErr := dec.Decode(resp.Body, contentType)
	if decErr != nil {
		return zero, NewCodecError("decode response", decErr)
	}
	return value, nil
}
