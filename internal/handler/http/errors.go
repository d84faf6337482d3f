// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestBodyTooLarge is reported when a proxied body exceeds
	// maxBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)
