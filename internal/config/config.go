// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// envPrefix is prepended to every environment variable lookup, so the
// full name of e.g. Server.BaseURL is DAYSTAR_SERVER_BASE_URL.
const envPrefix = "DAYSTAR_"

// ClientConfig is the top-level configuration container for the daystar
// client. It is populated by merging values from environment variables,
// command-line flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// Server holds the API endpoint and outbound request settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds local persistence settings for the credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// OAuth holds the Google sign-in settings.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the
	// values already loaded from environment variables and flags.
	// Populated via DAYSTAR_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings for the outbound API transport.
type Server struct {
	// BaseURL is the root URL of the daystar API, with or without a
	// trailing "/api" segment (e.g. "https://api.daystar.app").
	// Env: DAYSTAR_SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request (e.g. "15s", "1m").
	// Env: DAYSTAR_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds file-system settings for the encrypted credential store.
type Storage struct {
	// Dir is the directory holding the key ring and the sealed
	// credential. When empty, a per-user default under the OS config
	// directory is used.
	// Env: DAYSTAR_STORAGE_DIR
	Dir string `env:"DIR"`
}

// OAuth holds the Google sign-in client settings.
type OAuth struct {
	// GoogleClientID is the OAuth 2.0 client ID used for Google
	// sign-in. When empty, Google sign-in is unavailable and only
	// email/password authentication is offered.
	// Env: DAYSTAR_OAUTH_GOOGLE_CLIENT_ID
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// GoogleClientSecret is the OAuth 2.0 client secret paired with
	// GoogleClientID.
	// Env: DAYSTAR_OAUTH_GOOGLE_CLIENT_SECRET
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	// RedirectPort is the fixed loopback port for the OAuth redirect
	// listener. Zero picks an ephemeral port.
	// Env: DAYSTAR_OAUTH_REDIRECT_PORT
	RedirectPort int `env:"REDIRECT_PORT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval defines how often the habit view is re-fetched
	// from the server while the session is authenticated.
	// Env: DAYSTAR_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// defaults returns the built-in fallback values merged underneath every
// other source.
func defaults() *ClientConfig {
	return &ClientConfig{
		Server: Server{
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: 5 * time.Minute,
		},
	}
}

// GetClientConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (first
// source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *ClientConfig or an error if any source
// fails to load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
