// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

func (h *Handler) addToPlaylist(w http.ResponseWriter, r *http.Request) {
	result, ok := h.validateSession(w, r)
	if !ok {
		return
	}

	body, err := readJSONBody(w, r)
	if err != nil {
		h.writeError(w, r, result.RequestID, err)
		return
	}

	data, err := h.services.LibraryService.AddToPlaylist(r.Context(), result.SSID, body)
	if err != nil {
		h.writeError(w, r, result.RequestID, err)
		return
	}

	writeData(w, result.RequestID, data, http.StatusOK)
}

// channels proxies GET, POST and DELETE of the user's channels.
func (h *Handler) channels(w http.ResponseWriter, r *http.Request) {
	result, ok := h.validateSession(w, r)
	if !ok {
		return
	}

	var body []byte
	if r.Method != http.MethodGet {
		var err error
		if body, err = readJSONBody(w, r); err != nil {
			h.writeError(w, r, result.RequestID, err)
			return
		}
	}

	data, err := h.services.LibraryService.Channels(r.Context(), result.SSID, r.Method, body)
	if err != nil {
		h.writeError(w, r, result.RequestID, err)
		return
	}

	writeData(w, result.RequestID, data, http.StatusOK)
}
