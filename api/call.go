package api

import (
	"context"

	"github.com/kbukum/apikit/codec"
)

// FallbackContentType is sent when a multipart call falls back to its raw
// body slot after an encoding failure.
const FallbackContentType = "application/octet-stream"

// NoBody is a call without a request body: method, path template, and a
// response codec bound to a shared Base. Immutable after construction and
// safe for any number of concurrent invocations.
type NoBody[R any] struct {
	base    *Base
	method  string
	path    string
	decoder codec.Deserializer[R]
}

// NewNoBody binds a body-less API operation to base. The path template is
// not validated here; template errors surface at call time.
func NewNoBody[R any](base *Base, method, path string, decoder codec.Deserializer[R]) *NoBody[R] {
	return &NoBody[R]{base: base, method: method, path: path, decoder: decoder}
}

// Call renders the path with params, dispatches, and decodes the response.
func (a *NoBody[R]) Call(ctx context.Context, params PathParam, opts ...CallOption) (R, error) {
	resp, err := a.base.do(ctx, a.method, a.path, params, "", nil, opts)
	return decodeResponse(a.decoder, resp, err)
}

// ResponseOnly is a call with neither request body nor path parameters,
// for fixed endpoints like /health or /version.
type ResponseOnly[R any] struct {
	call *NoBody[R]
}

// NewResponseOnly binds a parameterless API operation to base.
func NewResponseOnly[R any](base *Base, method, path string, decoder codec.Deserializer[R]) *ResponseOnly[R] {
	return &ResponseOnly[R]{call: NewNoBody[R](base, method, path, decoder)}
}

// Call dispatches and decodes the response.
func (a *ResponseOnly[R]) Call(ctx context.Context, opts ...CallOption) (R, error) {
	return a.call.Call(ctx, nil, opts...)
}

// HasBody is a call with a request body: method, path template, content
// type, request codec, and response codec bound to a shared Base.
type HasBody[T, R any] struct {
	base        *Base
	method      string
	path        string
	contentType string
	encoder     codec.Serializer[T]
	decoder     codec.Deserializer[R]
}

// NewHasBody binds an API operation with a request body to base. An empty
// contentType defers to the serializer's content-type hint.
func NewHasBody[T, R any](base *Base, method, path, contentType string, encoder codec.Serializer[T], decoder codec.Deserializer[R]) *HasBody[T, R] {
	return &HasBody[T, R]{
		base:        base,
		method:      method,
		path:        path,
		contentType: contentType,
		encoder:     encoder,
		decoder:     decoder,
	}
}

// Call serializes body, dispatches, and decodes the response.
func (a *HasBody[T, R]) Call(ctx context.Context, params PathParam, body T, opts ...CallOption) (R, error) {
	data, hint, err := a.encoder.Encode(body)
	if err != nil {
		var zero R
		return zero, NewCodecError("encode request", err)
	}
	contentType := a.contentType
	if contentType == "" {
		contentType = hint
	}
	resp, err := a.base.do(ctx, a.method, a.path, params, contentType, data, opts)
	return decodeResponse(a.decoder, resp, err)
}

// Multipart is a call whose request body is a multipart form. It carries
// an optional raw fallback body used when form encoding fails.
type Multipart[R any] struct {
	base     *Base
	method   string
	path     string
	encoder  codec.Serializer[codec.FormData]
	decoder  codec.Deserializer[R]
	fallback []byte
}

// NewMultipart binds a multipart form API operation to base.
func NewMultipart[R any](base *Base, method, path string, decoder codec.Deserializer[R]) *Multipart[R] {
	return &Multipart[R]{
		base:    base,
		method:  method,
		path:    path,
		encoder: codec.MultipartSerializer{},
		decoder: decoder,
	}
}

// NewMultipartWithFallback is NewMultipart with a raw body to send instead
// when multipart encoding fails. Without a fallback, encoding failures
// abort the call with a codec error.
func NewMultipartWithFallback[R any](base *Base, method, path string, decoder codec.Deserializer[R], fallback []byte) *Multipart[R] {
	a := NewMultipart[R](base, method, path, decoder)
	a.fallback = fallback
	return a
}

// Call encodes form as multipart/form-data, dispatches, and decodes the
// response.
func (a *Multipart[R]) Call(ctx context.Context, params PathParam, form codec.FormData, opts ...CallOption) (R, error) {
	data, contentType, err := a.encoder.Encode(form)
	if err != nil {
		if a.fallback == nil {
			var zero R
			return zero, NewCodecError("encode multipart", err)
		}
		data, contentType = a.fallback, FallbackContentType
	}
	resp, err := a.base.do(ctx, a.method, a.path, params, contentType, data, opts)
	return decodeResponse(a.decoder, resp, err)
}
