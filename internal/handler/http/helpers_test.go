// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/remix-gateway/internal/config"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/metrics"
	"github.com/MKhiriev/remix-gateway/internal/mock"
	"github.com/MKhiriev/remix-gateway/internal/service"
	"github.com/MKhiriev/remix-gateway/internal/session"
	"github.com/MKhiriev/remix-gateway/models"
)

const (
	testSecret = "handler-test-secret"
	testSSID   = "ssid-never-leaks"
)

type testEnv struct {
	handler  *Handler
	router   *chi.Mux
	sessions *session.Manager
	metrics  *metrics.Metrics

	userInit *mock.MockUserInitService
	auth     *mock.MockAuthService
	library  *mock.MockLibraryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, config.App{SessionSecret: testSecret, TokenMaxAge: time.Hour})
}

func newTestEnvWithConfig(t *testing.T, cfg config.App) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		userInit: mock.NewMockUserInitService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		library:  mock.NewMockLibraryService(ctrl),
		metrics:  metrics.New(),
	}

	appInfo, err := service.NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)

	services := &service.Services{
		UserInitService: env.userInit,
		AuthService:     env.auth,
		LibraryService:  env.library,
		AppInfoService:  appInfo,
	}

	env.sessions = session.NewManager(cfg, env.auth, logger.Nop())
	env.handler = NewHandler(services, env.sessions, env.metrics, logger.Nop())
	env.router = env.handler.Init()
	return env
}

func strPtr(s string) *string { return &s }

// validToken returns a token with identity and ssid.
func validToken() *models.Token {
	token := &models.Token{
		Name:     strPtr("Ann"),
		Email:    strPtr("ann@example.com"),
		Provider: "google",
	}
	token.SetSSID(testSSID)
	return token
}

// cookieFor signs token into a session cookie.
func (env *testEnv) cookieFor(t *testing.T, token *models.Token) *http.Cookie {
	t.Helper()
	signed, err := env.sessions.Codec.Encode(token)
	require.NoError(t, err)
	return &http.Cookie{Name: env.sessions.Cookies.Name(), Value: signed}
}

// do runs one request through the full router.
func (env *testEnv) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(traceIDHeader, "trace-1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	return m
}

// sessionCookie returns the session cookie set on the response, if any.
func (env *testEnv) sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == env.sessions.Cookies.Name() {
			return c
		}
	}
	return nil
}
