package interceptor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kbukum/apikit/transport"
)

// Logging emits one debug log line per outbound request: method, URL, and
// body size. Headers are not logged; they routinely carry credentials.
func Logging(log zerolog.Logger) *Func {
	return Of(func(_ context.Context, req *transport.Request) error {
		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Int("body_bytes", len(req.Body)).
			Msg("outbound request")
		return nil
	})
}
