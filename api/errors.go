package api

import (
	"errors"
	"fmt"
)

// Kind classifies call errors by the pipeline stage that produced them.
type Kind int

const (
	// KindTemplating indicates a path template placeholder without a value.
	KindTemplating Kind = iota
	// KindConfiguration indicates a missing or invalid base configuration
	// (no base URL, unparseable URL, no transport client).
	KindConfiguration
	// KindCodec indicates a body serialize/deserialize failure.
	KindCodec
	// KindInterceptor indicates an interceptor vetoed the request.
	KindInterceptor
	// KindTransport indicates a connection, I/O, or timeout failure; the
	// request never produced a response.
	KindTransport
	// KindProtocol indicates the server answered with a non-success status.
	KindProtocol
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTemplating:
		return "templating"
	case KindConfiguration:
		return "configuration"
	case KindCodec:
		return "codec"
	case KindInterceptor:
		return "interceptor"
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error is the structured call error. Every failure surfaced by a Call is
// one of these; callers distinguish transport-level failure ("never reached
// the server") from protocol-level failure ("server said no") by Kind.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// StatusCode is the HTTP status code (0 unless Kind is KindProtocol).
	StatusCode int
	// Message describes the error.
	Message string
	// Timeout marks transport errors caused by the per-call timeout.
	Timeout bool
	// Body is the raw response body for protocol errors (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTemplatingError reports a placeholder with no matching path parameter.
func NewTemplatingError(placeholder string) *Error {
	return &Error{
		Kind:    KindTemplating,
		Message: fmt.Sprintf("missing path parameter %q", placeholder),
	}
}

// NewConfigurationError reports unusable shared configuration.
func NewConfigurationError(msg string) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Message: msg,
	}
}

// NewCodecError wraps a serialize/deserialize failure.
func NewCodecError(op string, err error) *Error {
	return &Error{
		Kind:    KindCodec,
		Message: fmt.Sprintf("%s: %v", op, err),
		Err:     err,
	}
}

// NewInterceptorError wraps an interceptor veto. The interceptor's own
// error stays reachable through Unwrap.
func NewInterceptorError(err error) *Error {
	return &Error{
		Kind:    KindInterceptor,
		Message: err.Error(),
		Err:     err,
	}
}

// NewTransportError wraps a dispatch failure from the transport engine.
func NewTransportError(err error, timeout bool) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: err.Error(),
		Timeout: timeout,
		Err:     err,
	}
}

// NewProtocolError reports a non-success HTTP status, carrying the raw
// response body for inspection.
func NewProtocolError(statusCode int, body []byte) *Error {
	return &Error{
		Kind:       KindProtocol,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// IsTemplating checks if an error is a templating error.
func IsTemplating(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTemplating
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConfiguration
}

// IsCodec checks if an error is a codec error.
func IsCodec(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindCodec
}

// IsInterceptorAbort checks if an error is an interceptor veto.
func IsInterceptorAbort(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInterceptor
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTransport
}

// IsProtocol checks if an error is a protocol (non-success status) error.
func IsProtocol(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindProtocol
}

// IsTimeout checks if an error is a transport timeout.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Timeout
}

// StatusCode extracts the HTTP status from a protocol error, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
