// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the backend REST
// service.
//
// The primary abstraction is [Backend], which decouples the service layer
// from HTTP. Non-2xx answers are returned as [*HTTPError] wrapping the
// sentinel values defined in errors.go, so callers can branch with
// [errors.Is] (e.g. [ErrUnauthorized] for 401) or read the status with
// [errors.As].
package adapter

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// DefaultTimeout bounds a backend call when neither the request options nor
// the configuration set a timeout.
const DefaultTimeout = 30 * time.Second

// RequestOptions tune a single backend call. The zero value is a GET without
// body using the adapter's default timeout.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Body is JSON-encoded and sent for non-GET methods only.
	Body any
	// Timeout overrides the adapter's default timeout.
	Timeout time.Duration
	// Operation names the call in metrics and traces; defaults to the endpoint.
	Operation string
}

// Backend performs calls to the backend REST service.
type Backend interface {
	// Do calls endpoint on behalf of a session, sending ssid as the bearer
	// credential, and returns the raw JSON body of a 2xx answer.
	Do(ctx context.Context, endpoint, ssid string, opts RequestOptions) ([]byte, error)

	// DoAnonymous calls endpoint without credentials. It is used by the
	// login flows, before an ssid exists.
	DoAnonymous(ctx context.Context, endpoint string, opts RequestOptions) ([]byte, error)
}
