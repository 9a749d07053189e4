package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/apikit/api"
	"github.com/kbukum/apikit/transport"
)

// Engine names accepted by Config.Engine.
const (
	// EnginePooled is the shared keep-alive engine (default).
	EnginePooled = "pooled"
	// EngineSimple is the connection-per-request engine.
	EngineSimple = "simple"
)

const defaultTimeout = 30 * time.Second

// Config is the loadable client configuration.
type Config struct {
	// BaseURL is the absolute URL call paths resolve against.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout bounds the dispatch step of every call. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Engine selects the transport engine: "pooled" or "simple".
	Engine string `yaml:"engine" mapstructure:"engine" validate:"omitempty,oneof=pooled simple"`

	// Tracing records an OpenTelemetry client span per dispatch.
	Tracing bool `yaml:"tracing" mapstructure:"tracing"`

	// HTTP2 forces HTTP/2 on the engine's transport.
	HTTP2 bool `yaml:"http2" mapstructure:"http2"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Engine == "" {
		c.Engine = EnginePooled
	}
}

// Validate checks the configuration using struct tags.
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: failed %q", strings.ToLower(e.Field()), e.Tag()))
	}
	return fmt.Errorf("config: %s", strings.Join(messages, "; "))
}

// NewBase builds the transport engine named by the configuration and
// returns an api.Base configured with it.
func (c *Config) NewBase() (*api.Base, error) {
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []transport.Option
	if c.Tracing {
		opts = append(opts, transport.WithTracing())
	}
	if c.HTTP2 {
		opts = append(opts, transport.WithHTTP2())
	}

	var binding transport.Binding
	switch c.Engine {
	case EngineSimple:
		binding = transport.NewSimple(opts...)
	default:
		pooled, err := transport.NewPooled(opts...)
		if err != nil {
			return nil, fmt.Errorf("config: build pooled engine: %w", err)
		}
		binding = pooled
	}

	return api.NewWithConfig(binding, api.Config{
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
		Headers: c.Headers,
	})
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
