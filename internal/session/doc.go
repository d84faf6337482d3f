// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the signed session token: encoding it into its
// cookie, projecting it into the session view handed to callers, validating
// it on every protected route and keeping it fresh against the backend.
//
// The backend session identifier (ssid) only leaves this package through a
// successful [Result] of [Validator.Validate] or a [ServerContext]
// projection; client projections never carry it, not even as a null key.
package session
