// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/remix-gateway/internal/adapter"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/service"
	"github.com/MKhiriev/remix-gateway/internal/utils"
	"github.com/MKhiriev/remix-gateway/models"
)

// apiError is what a failed call looks like to the browser.
type apiError struct {
	status    int
	errorType string
	code      string
	title     string
	message   string
	logout    bool
}

var (
	errConfig = apiError{
		status:    http.StatusInternalServerError,
		errorType: models.ErrorTypeConfig,
		code:      models.CodeConfig,
		title:     "Service configuration error",
		message:   "The service is not configured correctly. Please try again later.",
	}
	errNetwork = apiError{
		status:    http.StatusServiceUnavailable,
		errorType: models.ErrorTypeNetwork,
		code:      models.CodeNetwork,
		title:     "Backend service unavailable",
		message:   "The service is temporarily unavailable. Please try again later.",
	}
	errBackendUnauthorized = apiError{
		status:    http.StatusUnauthorized,
		errorType: models.ErrorTypeSessionExpired,
		code:      models.CodeBackend401,
		title:     "Session expired",
		message:   "Your session has expired. Please log in again.",
		logout:    true,
	}
	errBackendForbidden = apiError{
		status:    http.StatusForbidden,
		errorType: models.ErrorTypeForbidden,
		code:      models.CodeBackend403,
		title:     "Forbidden",
		message:   "You do not have access to this resource.",
	}
	errInvalidRequest = apiError{
		status:    http.StatusBadRequest,
		errorType: models.ErrorTypeInvalidRequest,
		code:      models.CodeInvalidRequest,
		title:     "Invalid request",
		message:   "The request could not be processed.",
	}
	errInvalidLogin = apiError{
		status:    http.StatusUnauthorized,
		errorType: models.ErrorTypeInvalidLogin,
		code:      models.CodeInvalidLogin,
		title:     "Invalid credentials",
		message:   "The login details are not valid.",
	}
	errBackend = apiError{
		status:    http.StatusBadGateway,
		errorType: models.ErrorTypeBackend,
		code:      models.CodeBackendError,
		title:     "Backend error",
	}
	errFatal = apiError{
		status:    http.StatusInternalServerError,
		errorType: models.ErrorTypeFatal,
		code:      models.CodeFatal,
		title:     "Internal server error",
		message:   "Something went wrong. Please try again later.",
	}
)

// errorMappings is checked in order; the first match wins. Service errors
// come first because some of them wrap backend statuses.
var errorMappings = []struct {
	target error
	api    apiError
}{
	{adapter.ErrBackendNotConfigured, errConfig},
	{ErrInvalidJSON, errInvalidRequest},
	{ErrRequestBodyTooLarge, errInvalidRequest},
	{service.ErrInvalidDataProvided, errInvalidRequest},
	{service.ErrInvalidCredentials, errInvalidLogin},
	{adapter.ErrRequestTimeout, errNetwork},
	{adapter.ErrNetwork, errNetwork},
	{adapter.ErrUnauthorized, errBackendUnauthorized},
	{adapter.ErrForbidden, errBackendForbidden},
	{service.ErrNoSessionIssued, errBackend},
	{service.ErrUnexpectedPayload, errBackend},
}

// mapError classifies err. Other backend statuses are mirrored with
// BACKEND_ERROR and their status text; the backend body is only logged.
// Everything else is fatal.
func mapError(err error) apiError {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.api
		}
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		api := errBackend
		if httpErr.Status >= http.StatusBadRequest {
			api.status = httpErr.Status
		}
		api.message = http.StatusText(api.status)
		return api
	}

	return errFatal
}

// writeError answers with the classified error. Fatal errors are logged in
// full and reported generically.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, requestID string, err error) {
	log := logger.FromRequest(r)
	api := mapError(err)

	if api.code == models.CodeFatal || api.code == models.CodeConfig {
		log.Error().Err(err).Str("requestId", requestID).Str("errorCode", api.code).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("requestId", requestID).Str("errorCode", api.code).Msg("request failed")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Success:   false,
		Error:     api.title,
		ErrorType: api.errorType,
		ErrorCode: api.code,
		Message:   api.message,
		Logout:    api.logout,
		Timestamp: utils.Now(),
		RequestID: requestID,
	}, api.status)
}

// writeData answers with the success envelope.
func writeData(w http.ResponseWriter, requestID string, data any, status int) {
	utils.WriteJSON(w, models.Envelope{
		Success:   true,
		Data:      data,
		Timestamp: utils.Now(),
		RequestID: requestID,
	}, status)
}
