// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source.
const (
	DefaultHTTPAddress            = "localhost:8080"
	DefaultServerRequestTimeout   = 60 * time.Second
	DefaultBackendRequestTimeout  = 30 * time.Second
	DefaultTokenMaxAge            = 30 * 24 * time.Hour
	DefaultSessionRefreshInterval = 15 * time.Minute
	DefaultVersion                = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenMaxAge:            DefaultTokenMaxAge,
			SessionRefreshInterval: DefaultSessionRefreshInterval,
			Version:                DefaultVersion,
		},
		Backend: Backend{
			RequestTimeout: DefaultBackendRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
	}
}
