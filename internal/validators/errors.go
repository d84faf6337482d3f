// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail     = errors.New("email is required")
	ErrMalformedEmail = errors.New("email is malformed")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyProvider  = errors.New("provider is required")
	ErrEmptySocialID  = errors.New("social id is required")
	ErrNoIdentity     = errors.New("token carries no social identity")
)
