// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendNotConfigured is returned when no backend base URL is set.
	ErrBackendNotConfigured = errors.New("backend service is not configured")
	// ErrRequestTimeout is returned when a call outlives its timeout.
	ErrRequestTimeout = errors.New("Request timeout")
	// ErrNetwork wraps transport failures such as refused connections.
	ErrNetwork = errors.New("network error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("backend session unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("backend internal error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected backend status")
)

// HTTPError is a non-2xx backend answer.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend responded with status %d: %s", e.Status, e.Body)
}

// Unwrap returns the sentinel matching the status.
func (e *HTTPError) Unwrap() error {
	return statusSentinel(e.Status)
}

// StatusOf returns the backend status carried by err, or 0.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}
