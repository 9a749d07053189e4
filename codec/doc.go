// Package codec defines the body serialization contracts used by typed API
// calls, plus the stock strategies: JSON, raw bypass, and multipart
// form-data (request-only).
//
// Codecs are stateless values. A single codec instance may back any number
// of concurrently executing calls.
package codec
