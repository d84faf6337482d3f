// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/models"
)

const testSecret = "test-secret"

func strPtr(s string) *string { return &s }

func newTestCodec() *Codec {
	return NewCodec(testSecret, time.Hour)
}

func newTestCookies() *CookieManager {
	return NewCookieManager("", false, time.Hour)
}

func newTestValidator(debug bool) *Validator {
	return NewValidator(newTestCodec(), newTestCookies(), NewProjector(logger.Nop()), debug, logger.Nop())
}

// tokenWithSSID builds a token whose ssid claim is the given raw JSON.
// An empty raw leaves the claim out.
func tokenWithSSID(raw string) *models.Token {
	token := &models.Token{
		Name:     strPtr("Jane"),
		Email:    strPtr("jane@example.com"),
		Provider: "google",
	}
	if raw != "" {
		token.SSID = json.RawMessage(raw)
	}
	return token
}

// requestWithToken returns a request carrying token in the session cookie.
func requestWithToken(t *testing.T, token *models.Token) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/api/auth/user-init", nil)
	if token == nil {
		return r
	}
	encoded, err := newTestCodec().Encode(token)
	require.NoError(t, err)
	r.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: encoded})
	return r
}

// jsonKeys returns the keys of the JSON object v encodes to.
func jsonKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}
