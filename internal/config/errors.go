// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates an unusable listener setup.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBackendConfigs indicates a malformed backend base URL.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidAppConfigs indicates invalid session lifetime settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
