package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
	envPrefix  string
}

// WithConfigFile reads the given YAML (or any viper-supported) file as the
// base configuration.
func WithConfigFile(path string) LoadOption {
	return func(o *loadOptions) { o.configFile = path }
}

// WithEnvFile loads the given .env file into the process environment
// before environment variables are read.
func WithEnvFile(path string) LoadOption {
	return func(o *loadOptions) { o.envFile = path }
}

// WithEnvPrefix namespaces environment variable lookups, e.g. prefix
// "MYAPI" binds MYAPI_BASE_URL to base_url.
func WithEnvPrefix(prefix string) LoadOption {
	return func(o *loadOptions) { o.envPrefix = prefix }
}

// configKeys are bound explicitly so environment variables are seen even
// when no config file supplies the key.
var configKeys = []string{"base_url", "timeout", "engine", "tracing", "http2"}

// Load reads configuration in precedence order: config file, then .env
// file, then process environment. The result has defaults applied and is
// validated.
func Load(opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", o.envFile, err)
		}
	}

	v := viper.New()
	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read config file %s: %w", o.configFile, err)
		}
	}

	if o.envPrefix != "" {
		v.SetEnvPrefix(o.envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
