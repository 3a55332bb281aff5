// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// item transfer server. It is populated by merging environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, transfer and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// signing, transfer capabilities and logging.
type App struct {
	// TokenSignKey is the process-wide HMAC key used to sign session tokens
	// and transfer capabilities.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the optional "iss" claim. When set, tokens without the
	// same issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session token. Zero means the token
	// carries no "exp" claim.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TransferDuration is the lifetime of a transfer capability. Zero means
	// the capability never expires.
	// Env: APP_TRANSFER_DURATION
	TransferDuration time.Duration `env:"TRANSFER_DURATION"`

	// PublicURL is the externally reachable base URL used to build transfer
	// links (e.g. "http://localhost:8080"). Defaults to "http://" + Server.HTTPAddress.
	// Env: APP_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// SingleUseTransfers rejects a second redemption of the same capability.
	// Env: APP_SINGLE_USE_TRANSFERS
	SingleUseTransfers bool `env:"SINGLE_USE_TRANSFERS"`

	// LogLevel is a zerolog level name. Defaults to "debug".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported in startup logs.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver as well as the database: "postgres://" and
	// "postgresql://" open PostgreSQL through pgx, "sqlite://", "file:" and
	// "*.db" paths open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PruneInterval is how often the redemption ledger is pruned.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// Defaults applied after all sources are merged.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultPruneInterval  = time.Hour
	DefaultLogLevel       = "debug"
)

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. Earlier sources win for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
