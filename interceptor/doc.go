// Package interceptor defines the request hook run by the call pipeline
// immediately before dispatch, plus the stock hooks: authentication
// (bearer, basic, API key, signed JWT), request IDs, structured request
// logging, and W3C trace-context propagation.
//
// Interceptors run synchronously in insertion order. A hook may mutate the
// in-flight request (headers, URL, body) or veto it by returning an error,
// which aborts the call before any network activity.
package interceptor
