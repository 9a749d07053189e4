package interceptor

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/apikit/transport"
)

// DefaultRequestIDHeader is used by RequestID when no header name is given.
const DefaultRequestIDHeader = "X-Request-ID"

// RequestID stamps every request with a fresh UUID, unless the request
// already carries one under the same header.
func RequestID(headerName string) *Func {
	if headerName == "" {
		headerName = DefaultRequestIDHeader
	}
	return Of(func(_ context.Context, req *transport.Request) error {
		if req.Headers[headerName] != "" {
			return nil
		}
		setHeader(req, headerName, uuid.NewString())
		return nil
	})
}
