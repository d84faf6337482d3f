// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// remix-gateway service. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and cookie settings and the application version.
	App App `envPrefix:"APP_"`

	// Backend holds the location of the backend REST service.
	Backend Backend `envPrefix:"BACKEND_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token, its cookie and versioning.
type App struct {
	// SessionSecret signs and verifies session tokens. An empty secret is not
	// rejected at start-up; every session check then fails with FATAL_001.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionCookieName overrides the cookie the token is stored in.
	// Env: APP_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`

	// SecureCookie marks the session cookie Secure and switches to the
	// "__Secure-" prefixed cookie name.
	// Env: APP_SECURE_COOKIE
	SecureCookie bool `env:"SECURE_COOKIE"`

	// TokenMaxAge is the lifetime of an issued session token.
	// Env: APP_TOKEN_MAX_AGE
	TokenMaxAge time.Duration `env:"TOKEN_MAX_AGE"`

	// SessionRefreshInterval is how old a token may get before the backend
	// is asked again whether its ssid is still valid.
	// Env: APP_SESSION_REFRESH_INTERVAL
	SessionRefreshInterval time.Duration `env:"SESSION_REFRESH_INTERVAL"`

	// AuthDebug adds a debug block to session validation failures.
	// Env: APP_AUTH_DEBUG
	AuthDebug bool `env:"AUTH_DEBUG"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend describes the backend REST service the gateway forwards to.
type Backend struct {
	// BaseURL is the backend root, e.g. "https://api.example.com". It has no
	// default: routes answer CONFIG_001 while it is unset.
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every single backend call.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
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

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
