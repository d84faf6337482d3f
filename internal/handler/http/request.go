// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/remix-gateway/internal/session"
	"github.com/MKhiriev/remix-gateway/internal/utils"
)

// maxBodyBytes caps request bodies proxied to the backend.
const maxBodyBytes = 1 << 20

// readJSONBody returns the raw body of r. An empty body is returned as nil;
// anything else must be valid JSON.
func readJSONBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrRequestBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}
	return body, nil
}

// decodeJSONBody decodes the body of r into v.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := readJSONBody(w, r)
	if err != nil {
		return err
	}
	if body == nil {
		return ErrInvalidJSON
	}
	if err = json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// validateSession runs the session validator. On failure the validator's
// response is written as is and ok is false.
func (h *Handler) validateSession(w http.ResponseWriter, r *http.Request, opts ...session.Option) (result session.Result, ok bool) {
	result = h.sessions.Validator.Validate(r, opts...)
	if result.IsValid {
		return result, true
	}

	h.metrics.IncSessionFailure(result.Error.ErrorType)
	utils.WriteJSON(w, result.Error, result.Status)
	return result, false
}

func requestIDFrom(r *http.Request) string {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())
	return requestID
}
