package interceptor

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/apikit/transport"
)

func newRequest() *transport.Request {
	return &transport.Request{Method: "GET", URL: "https://api.example.com/things"}
}

func TestOf(t *testing.T) {
	called := false
	fn := Of(func(_ context.Context, _ *transport.Request) error {
		called = true
		return nil
	})
	if err := fn.Intercept(context.Background(), newRequest()); err != nil {
		t.Fatalf("Intercept() error: %v", err)
	}
	if !called {
		t.Error("wrapped function was not invoked")
	}

	wantErr := errors.New("veto")
	fn = Of(func(_ context.Context, _ *transport.Request) error { return wantErr })
	if err := fn.Intercept(context.Background(), newRequest()); !errors.Is(err, wantErr) {
		t.Errorf("Intercept() error = %v, want %v", err, wantErr)
	}
}

func TestBearer(t *testing.T) {
	req := newRequest()
	if err := Bearer("tok123").Intercept(context.Background(), req); err != nil {
		t.Fatalf("Intercept() error: %v", err)
	}
	if got := req.Headers["Authorization"]; got != "Bearer tok123" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestBasic(t *testing.T) {
	req := newRequest()
	if err := Basic("alice", "s3cret").Intercept(context.Background(), req); err != nil {
		t.Fatalf("Intercept() error: %v", err)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:s3cret"))
	if got := req.Headers["Authorization"]; got != want {
		t.Errorf("Authorization = %q, want %q", got, want)
	}
}

func TestAPIKey(t *testing.T) {
	t.Run("default header", func(t *testing.T) {
		req := newRequest()
		if err := APIKey("k1", "").Intercept(context.Background(), req); err != nil {
			t.Fatalf("Intercept() error: %v", err)
		}
		if got := req.Headers["X-API-Key"]; got != "k1" {
			t.Errorf("X-API-Key = %q", got)
		}
	})

	t.Run("custom header", func(t *testing.T) {
		req := newRequest()
		if err := APIKey("k2", "X-Token").Intercept(context.Background(), req); err != nil {
			t.Fatalf("Intercept() error: %v", err)
		}
		if got := req.Headers["X-Token"]; got != "k2" {
			t.Errorf("X-Token = %q", got)
		}
	})
}

func TestJWTBearer(t *testing.T) {
	key := []byte("signing-key")
	ic := JWTBearer(gojwt.SigningMethodHS256, key, func() gojwt.Claims {
		return gojwt.MapClaims{
			"sub": "svc-a",
			"exp": time.Now().Add(time.Minute).Unix(),
		}
	})

	req := newRequest()
	if err := ic.Intercept(context.Background(), req); err != nil {
		t.Fatalf("Intercept() error: %v", err)
	}

	auth := req.Headers["Authorization"]
	if !strings.HasPrefix(auth, "Bearer ") {
		t.Fatalf("Authorization = %q, want bearer token", auth)
	}

	parsed, err := gojwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(*gojwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	claims := parsed.Claims.(gojwt.MapClaims)
	if claims["sub"] != "svc-a" {
		t.Errorf("sub = %v", claims["sub"])
	}
}

func TestJWTBearer_SigningFailure(t *testing.T) {
	// HS256 requires a []byte key; a string key fails at signing time.
	ic := JWTBearer(gojwt.SigningMethodHS256, "not-bytes", func() gojwt.Claims {
		return gojwt.MapClaims{}
	})
	if err := ic.Intercept(context.Background(), newRequest()); err == nil {
		t.Fatal("expected signing error")
	}
}

func TestRequestID(t *testing.T) {
	t.Run("stamps fresh uuid", func(t *testing.T) {
		req := newRequest()
		if err := RequestID("").Intercept(context.Background(), req); err != nil {
			t.Fatalf("Intercept() error: %v", err)
		}
		id := req.Headers[DefaultRequestIDHeader]
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("header %q is not a uuid: %v", id, err)
		}
	})

	t.Run("keeps existing value", func(t *testing.T) {
		req := newRequest()
		req.Headers = map[string]string{DefaultRequestIDHeader: "preset"}
		if err := RequestID("").Intercept(context.Background(), req); err != nil {
			t.Fatalf("Intercept() error: %v", err)
		}
		if got := req.Headers[DefaultRequestIDHeader]; got != "preset" {
			t.Errorf("header = %q, want preset", got)
		}
	})

	t.Run("custom header name", func(t *testing.T) {
		req := newRequest()
		if err := RequestID("X-Correlation-ID").Intercept(context.Background(), req); err != nil {
			t.Fatalf("Intercept() error: %v", err)
		}
		if req.Headers["X-Correlation-ID"] == "" {
			t.Error("X-Correlation-ID not set")
		}
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	req := newRequest()
	req.Body = []byte("12345")
	if err := Logging(log).Intercept(context.Background(), req); err != nil {
		t.Fatalf("Intercept() error: %v", err)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if line["method"] != "GET" {
		t.Errorf("method = %v", line["method"])
	}
	if line["url"] != req.URL {
		t.Errorf("url = %v", line["url"])
	}
	if line["body_bytes"] != float64(5) {
		t.Errorf("body_bytes = %v", line["body_bytes"])
	}
}

func TestTraceContext(t *testing.T) {
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01},
		SpanID:     trace.SpanID{0x02},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	req := newRequest()
	ic := TraceContextWithPropagator(propagation.TraceContext{})
	if err := ic.Intercept(ctx, req); err != nil {
		t.Fatalf("Intercept() error: %v", err)
	}

	tp := req.Headers["traceparent"]
	if tp == "" {
		t.Fatal("traceparent header not injected")
	}
	if !strings.Contains(tp, spanCtx.TraceID().String()) {
		t.Errorf("traceparent %q does not carry trace id %s", tp, spanCtx.TraceID())
	}
}
