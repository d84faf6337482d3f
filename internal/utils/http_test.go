// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "success envelope", data: envelope{Success: true}, status: http.StatusOK, wantBody: `{"success":true}`},
		{name: "error envelope keeps status", data: envelope{Error: "Unauthorized"}, status: http.StatusUnauthorized, wantBody: `{"success":false,"error":"Unauthorized"}`},
		{name: "nil is null", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "empty struct", data: struct{}{}, status: http.StatusOK, wantBody: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteText(w, "1.2.3", http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}
