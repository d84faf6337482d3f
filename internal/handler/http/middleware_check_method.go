// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/remix-gateway/internal/utils"
	"github.com/MKhiriev/remix-gateway/models"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It answers
// 405 with a JSON error body and an Allow header listing the methods
// registered for the requested path.
//
// Only exact pattern matches are considered; parameterised segments are not
// expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
			break
		}
		sort.Strings(allowed)

		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		requestID, _ := utils.GetRequestIDFromContext(r.Context())
		utils.WriteJSON(w, models.ErrorResponse{
			Success:   false,
			Error:     "Method not allowed",
			ErrorType: models.ErrorTypeInvalidRequest,
			ErrorCode: models.CodeInvalidRequest,
			Message:   r.Method + " is not supported for " + r.URL.Path,
			Timestamp: utils.Now(),
			RequestID: requestID,
		}, http.StatusMethodNotAllowed)
	}
}

// notFound answers unknown paths with a JSON error body.
func notFound(w http.ResponseWriter, r *http.Request) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())
	utils.WriteJSON(w, models.ErrorResponse{
		Success:   false,
		Error:     "Not found",
		ErrorType: models.ErrorTypeInvalidRequest,
		ErrorCode: models.CodeInvalidRequest,
		Timestamp: utils.Now(),
		RequestID: requestID,
	}, http.StatusNotFound)
}
