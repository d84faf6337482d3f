// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrSecretNotConfigured is returned when tokens are encoded or decoded
	// without a signing secret.
	ErrSecretNotConfigured = errors.New("session signing secret is not configured")
	// ErrInvalidToken covers malformed, forged and expired tokens.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrNilToken is returned when encoding a nil token.
	ErrNilToken = errors.New("nil session token")
)
