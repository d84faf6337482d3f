// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/utils"
)

// withRecover turns a panic into a FATAL_ERROR response. The panic value and
// stack are logged, never sent.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			requestID, _ := utils.GetRequestIDFromContext(r.Context())
			logger.FromRequest(r).Error().
				Str("stack", string(debug.Stack())).
				Msg("handler panicked")

			h.writeError(w, r, requestID, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
