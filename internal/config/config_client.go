package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultClientBaseURL = "http://localhost:8080"
	DefaultClientTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// Token is the session token sent with protected requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level configuration of the CLI client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig builds and validates the client configuration.
// Non-zero fields of overrides (usually command flags) win over environment
// variables, which win over the built-in defaults.
func GetClientConfig(overrides ClientAdapter) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&cfg.Adapter, overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	defaults := ClientAdapter{BaseURL: DefaultClientBaseURL, RequestTimeout: DefaultClientTimeout}
	if err := mergo.Merge(&cfg.Adapter, defaults); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return cfg, cfg.validate()
}
