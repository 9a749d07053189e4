package api

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kbukum/apikit/interceptor"
	"github.com/kbukum/apikit/transport"
)

// Config carries the optional initial state for a Base. Everything can
// also be set later through the Base setters.
type Config struct {
	// BaseURL is the absolute URL all call paths resolve against.
	BaseURL string
	// Timeout bounds the dispatch step of every call. Zero disables it.
	Timeout time.Duration
	// Headers are default headers applied to every request.
	Headers map[string]string
	// Logger receives a debug line per dispatched request. Nil disables.
	Logger *zerolog.Logger
}

// Base is the shared mutable configuration behind every call object:
// base URL, timeout, default headers, the transport engine handle, and the
// interceptor chain. All access is synchronized, so any number of calls
// may execute concurrently while the configuration is being updated;
// each invocation reads the current state, never a cached snapshot.
//
// The engine kind is fixed when the Base is created. SetClient replaces
// the handle (e.g. one pooled client for another), not the engine model.
type Base struct {
	mu            sync.RWMutex
	binding       transport.Binding
	baseURL       *url.URL
	timeout       time.Duration
	defaultHeader map[string]string
	interceptors  []interceptor.Interceptor
	logger        zerolog.Logger
}

// New creates a Base bound to the given transport engine with empty
// configuration. Calls fail with a configuration error until a base URL
// is set.
func New(binding transport.Binding) *Base {
	return &Base{
		binding: binding,
		logger:  zerolog.Nop(),
	}
}

// NewWithConfig creates a Base and applies cfg.
func NewWithConfig(binding transport.Binding, cfg Config) (*Base, error) {
	b := New(binding)
	if cfg.BaseURL != "" {
		if err := b.SetBaseURL(cfg.BaseURL); err != nil {
			return nil, err
		}
	}
	b.SetTimeout(cfg.Timeout)
	if cfg.Headers != nil {
		b.SetDefaultHeader(cfg.Headers)
	}
	if cfg.Logger != nil {
		b.SetLogger(*cfg.Logger)
	}
	return b, nil
}

// SetBaseURL sets the absolute URL call paths resolve against.
func (b *Base) SetBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return NewConfigurationError(fmt.Sprintf("parse base URL %q: %v", raw, err))
	}
	if !u.IsAbs() {
		return NewConfigurationError(fmt.Sprintf("base URL %q is not absolute", raw))
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.baseURL = u
	return nil
}

// BaseURL returns the configured base URL, or "" when unset.
func (b *Base) BaseURL() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.baseURL == nil {
		return ""
	}
	return b.baseURL.String()
}

// SetTimeout bounds the dispatch step of every call. Zero or negative
// disables the bound.
func (b *Base) SetTimeout(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.timeout = d
}

// SetTimeoutMillisecond is SetTimeout for callers thinking in ms.
func (b *Base) SetTimeoutMillisecond(ms uint64) {
	b.SetTimeout(time.Duration(ms) * time.Millisecond)
}

// Timeout returns the configured per-call timeout.
func (b *Base) Timeout() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.timeout
}

// SetDefaultHeader replaces the default header map. Nil clears it.
// The map is copied; later mutation by the caller has no effect.
func (b *Base) SetDefaultHeader(h map[string]string) {
	var clone map[string]string
	if h != nil {
		clone = make(map[string]string, len(h))
		for k, v := range h {
			clone[k] = v
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultHeader = clone
}

// DefaultHeader returns a copy of the default header map.
func (b *Base) DefaultHeader() map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.defaultHeader == nil {
		return nil
	}
	clone := make(map[string]string, len(b.defaultHeader))
	for k, v := range b.defaultHeader {
		clone[k] = v
	}
	return clone
}

// SetClient replaces the transport engine handle. In-flight calls finish
// on the handle they started with; later invocations pick up the new one.
func (b *Base) SetClient(binding transport.Binding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.binding = binding
}

// Client returns the current transport engine handle.
func (b *Base) Client() transport.Binding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.binding
}

// SetLogger replaces the pipeline logger.
func (b *Base) SetLogger(log zerolog.Logger) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = log
}

// AddInterceptor appends an interceptor to the chain.
func (b *Base) AddInterceptor(ic interceptor.Interceptor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.interceptors = append(b.interceptors, ic)
}

// AddInterceptorFront prepends an interceptor, so it runs before every
// interceptor added so far.
func (b *Base) AddInterceptorFront(ic interceptor.Interceptor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.interceptors = append([]interceptor.Interceptor{ic}, b.interceptors...)
}

// AddInterceptorFunc wraps fn and appends it, returning the wrapper so it
// can later be passed to RemoveInterceptor.
func (b *Base) AddInterceptorFunc(fn func(ctx context.Context, req *transport.Request) error) *interceptor.Func {
	ic := interceptor.Of(fn)
	b.AddInterceptor(ic)
	return ic
}

// RemoveInterceptor deletes the first chain entry equal to ic (the same
// value previously added). It reports whether anything was removed.
func (b *Base) RemoveInterceptor(ic interceptor.Interceptor) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.interceptors {
		if existing == ic {
			b.interceptors = append(b.interceptors[:i], b.interceptors[i+1:]...)
			return true
		}
	}
	return false
}

// baseState is one invocation's consistent read of the configuration.
type baseState struct {
	binding       transport.Binding
	baseURL       *url.URL
	timeout       time.Duration
	defaultHeader map[string]string
	interceptors  []interceptor.Interceptor
	logger        zerolog.Logger
}

// snapshot reads all fields under one reader lock. The interceptor slice
// is copied so a concurrent Add cannot grow under a running chain.
func (b *Base) snapshot() baseState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	chain := make([]interceptor.Interceptor, len(b.interceptors))
	copy(chain, b.interceptors)
	return baseState{
		binding:       b.binding,
		baseURL:       b.baseURL,
		timeout:       b.timeout,
		defaultHeader: b.defaultHeader,
		interceptors:  chain,
		logger:        b.logger,
	}
}
