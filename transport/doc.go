// Package transport adapts the abstract request/response model used by the
// call pipeline to a concrete HTTP engine.
//
// Two engines are provided. Pooled shares one net/http client with
// keep-alive connection reuse and is the default choice. Simple opens a
// fresh connection per request and tears it down afterwards, trading
// throughput for isolation.
//
// Both engines are plain executors: they send exactly one request and
// return the status, headers, and body they got back. Classifying
// non-success statuses is the caller's concern.
//
// Optional OpenTelemetry client spans can be recorded around dispatch:
//
//	binding, err := transport.NewPooled(transport.WithTracing())
package transport
