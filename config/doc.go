// Package config loads API client configuration from YAML files, .env
// files, and environment variables, validates it, and constructs a ready
// api.Base with the selected transport engine.
//
//	cfg, err := config.Load(
//	    config.WithConfigFile("client.yml"),
//	    config.WithEnvPrefix("MYAPI"),
//	)
//	base, err := cfg.NewBase()
//
// The engine is chosen once per configuration ("pooled" or "simple") and
// cannot be switched on a live Base.
package config
