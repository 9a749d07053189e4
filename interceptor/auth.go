package interceptor

import (
	"context"
	"encoding/base64"
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/apikit/transport"
)

// Bearer sets an Authorization: Bearer header on every request.
func Bearer(token string) *Func {
	return Of(func(_ context.Context, req *transport.Request) error {
		setHeader(req, "Authorization", "Bearer "+token)
		return nil
	})
}

// Basic sets an Authorization header with HTTP Basic credentials.
func Basic(username, password string) *Func {
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return Of(func(_ context.Context, req *transport.Request) error {
		setHeader(req, "Authorization", "Basic "+credentials)
		return nil
	})
}

// APIKey sets an API key header. An empty header name defaults to X-API-Key.
func APIKey(key, headerName string) *Func {
	if headerName == "" {
		headerName = "X-API-Key"
	}
	return Of(func(_ context.Context, req *transport.Request) error {
		setHeader(req, headerName, key)
		return nil
	})
}

// JWTBearer signs a fresh JWT per request and attaches it as a bearer
// token. The claims function is invoked on every request so time-sensitive
// claims (iat, exp) stay current. A signing failure vetoes the call.
func JWTBearer(method gojwt.SigningMethod, key any, claims func() gojwt.Claims) *Func {
	return Of(func(_ context.Context, req *transport.Request) error {
		token := gojwt.NewWithClaims(method, claims())
		signed, err := token.SignedString(key)
		if err != nil {
			return fmt.Errorf("interceptor: sign jwt: %w", err)
		}
		setHeader(req, "Authorization", "Bearer "+signed)
		return nil
	})
}
