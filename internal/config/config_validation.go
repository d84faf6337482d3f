// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Missing session secret and backend URL are deliberately allowed:
// they are reported per request as FATAL_001 and CONFIG_001.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if cfg.Backend.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Backend.BaseURL != "" {
		u, err := url.Parse(cfg.Backend.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidBackendConfigs
		}
	}

	if cfg.App.TokenMaxAge < 0 || cfg.App.SessionRefreshInterval < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
