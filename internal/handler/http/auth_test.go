// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/remix-gateway/internal/adapter"
	"github.com/MKhiriev/remix-gateway/internal/config"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/service"
	"github.com/MKhiriev/remix-gateway/models"
)

// ─────────────────────────────────────────────
// user-init
// ─────────────────────────────────────────────

func TestUserInit_NoCookie_Unauthorized(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/auth/user-init", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	resp := decodeError(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeNoSession, resp.ErrorCode)
	assert.Equal(t, models.ErrorTypeNoSession, resp.ErrorType)
	assert.True(t, resp.Logout)
	assert.Equal(t, "trace-1", resp.RequestID)
}

func TestUserInit_Success(t *testing.T) {
	env := newTestEnv(t)

	user := models.DefaultUserData()
	user.Membership.Tier = models.TierPro
	env.userInit.EXPECT().
		Init(gomock.Any(), testSSID).
		Return(models.UserInitResponse{
			Success: true,
			Data:    models.UserInitData{User: user},
			Meta: models.UserInitMeta{
				ServiceStats: models.ServiceStats{Total: 6, Successful: 6, SuccessRate: "100.0%"},
			},
		}, nil)

	rr := env.do(t, http.MethodGet, "/api/auth/user-init", "", env.cookieFor(t, validToken()))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp models.UserInitResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.TierPro, resp.Data.User.Membership.Tier)
	assert.Equal(t, "trace-1", resp.Meta.RequestID)
	assert.NotContains(t, rr.Body.String(), testSSID)
}

func TestUserInit_TokenWithoutIdentity_NoUser(t *testing.T) {
	env := newTestEnv(t)

	token := &models.Token{}
	token.SetSSID(testSSID)

	rr := env.do(t, http.MethodGet, "/api/auth/user-init", "", env.cookieFor(t, token))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, models.CodeNoUser, decodeError(t, rr).ErrorCode)
}

func TestUserInit_TokenWithoutSSID_NoSSID(t *testing.T) {
	env := newTestEnv(t)

	token := validToken()
	token.SSID = nil

	rr := env.do(t, http.MethodGet, "/api/auth/user-init", "", env.cookieFor(t, token))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, models.CodeNoSSID, decodeError(t, rr).ErrorCode)
}

func TestUserInit_AggregationFailure_Fatal(t *testing.T) {
	env := newTestEnv(t)

	env.userInit.EXPECT().
		Init(gomock.Any(), testSSID).
		Return(models.UserInitResponse{}, fmt.Errorf("%w: index out of range", service.ErrAggregationFailed))

	rr := env.do(t, http.MethodGet, "/api/auth/user-init", "", env.cookieFor(t, validToken()))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, models.CodeFatal, resp.ErrorCode)
	assert.NotContains(t, rr.Body.String(), "index out of range")
}

func TestUserInit_SecretMissing_Fatal001(t *testing.T) {
	env := newTestEnvWithConfig(t, config.App{TokenMaxAge: time.Hour})

	rr := env.do(t, http.MethodGet, "/api/auth/user-init", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, models.CodeFatalValidation, decodeError(t, rr).ErrorCode)
}

func TestUserInit_DebugBlock(t *testing.T) {
	env := newTestEnvWithConfig(t, config.App{SessionSecret: testSecret, TokenMaxAge: time.Hour, AuthDebug: true})

	rr := env.do(t, http.MethodGet, "/api/auth/user-init", "", nil)

	resp := decodeError(t, rr)
	require.NotNil(t, resp.Debug)
	assert.False(t, resp.Debug.HasSession)
}

// ─────────────────────────────────────────────
// session-verify and backend error mapping
// ─────────────────────────────────────────────

func TestSessionVerify_Success(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().
		VerifySession(gomock.Any(), testSSID).
		Return(json.RawMessage(`{"isLogged":true}`), nil)

	rr := env.do(t, http.MethodGet, "/api/auth/session-verify", "", env.cookieFor(t, validToken()))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"isLogged": true}, body["data"])
	assert.Equal(t, "trace-1", body["requestId"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestSessionVerify_BackendErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantLogout bool
		wantMsg    string
	}{
		{
			name:       "backend 401",
			err:        &adapter.HTTPError{Status: http.StatusUnauthorized, Body: "expired"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   models.CodeBackend401,
			wantLogout: true,
		},
		{
			name:       "backend 403",
			err:        &adapter.HTTPError{Status: http.StatusForbidden, Body: "nope"},
			wantStatus: http.StatusForbidden,
			wantCode:   models.CodeBackend403,
		},
		{
			name:       "backend 404 mirrored",
			err:        &adapter.HTTPError{Status: http.StatusNotFound, Body: "missing row 42 in shard-7"},
			wantStatus: http.StatusNotFound,
			wantCode:   models.CodeBackendError,
			wantMsg:    "Not Found",
		},
		{
			name:       "backend 500 mirrored",
			err:        fmt.Errorf("wrapped: %w", &adapter.HTTPError{Status: http.StatusInternalServerError, Body: `pq: relation "users" does not exist at db-internal:5432`}),
			wantStatus: http.StatusInternalServerError,
			wantCode:   models.CodeBackendError,
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "backend reports logged out",
			err:        fmt.Errorf("session verification failed: %w: backend reports session is not logged in", adapter.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantCode:   models.CodeBackend401,
			wantLogout: true,
		},
		{
			name:       "timeout",
			err:        adapter.ErrRequestTimeout,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   models.CodeNetwork,
		},
		{
			name:       "connection refused",
			err:        fmt.Errorf("%w: dial tcp: refused", adapter.ErrNetwork),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   models.CodeNetwork,
		},
		{
			name:       "backend not configured",
			err:        adapter.ErrBackendNotConfigured,
			wantStatus: http.StatusInternalServerError,
			wantCode:   models.CodeConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.auth.EXPECT().VerifySession(gomock.Any(), testSSID).Return(nil, tt.err)

			rr := env.do(t, http.MethodGet, "/api/auth/session-verify", "", env.cookieFor(t, validToken()))

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeError(t, rr)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
			assert.Equal(t, tt.wantLogout, resp.Logout)
			assert.Equal(t, "trace-1", resp.RequestID)
			assert.NotContains(t, rr.Body.String(), "BACKEND_BASE_URL")
			assert.NotContains(t, rr.Body.String(), testSSID)
			assert.NotContains(t, rr.Body.String(), "db-internal")
			assert.NotContains(t, rr.Body.String(), "shard-7")
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Message)
			}
		})
	}
}

func TestSessionVerify_BackendSaysNotLogged(t *testing.T) {
	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/isLogged", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"isLogged":false}}`))
	}))
	defer backendSrv.Close()

	env := newTestEnv(t)
	backend := adapter.NewHTTPBackendAdapter(config.Backend{BaseURL: backendSrv.URL}, env.metrics, logger.Nop())
	env.handler.services.AuthService = service.NewAuthService(backend, logger.Nop())

	rr := env.do(t, http.MethodGet, "/api/auth/session-verify", "", env.cookieFor(t, validToken()))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	resp := decodeError(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeBackend401, resp.ErrorCode)
	assert.Equal(t, models.ErrorTypeSessionExpired, resp.ErrorType)
	assert.True(t, resp.Logout)
}

// ─────────────────────────────────────────────
// newbie-confirm
// ─────────────────────────────────────────────

func TestNewbieConfirm_ForwardsBody(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().
		ConfirmNewbie(gomock.Any(), testSSID, json.RawMessage(`{"done":true}`)).
		Return(json.RawMessage(`{"isNewbie":false}`), nil)

	rr := env.do(t, http.MethodPost, "/api/auth/newbie-confirm", `{"done":true}`, env.cookieFor(t, validToken()))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewbieConfirm_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/auth/newbie-confirm", `{"done":`, env.cookieFor(t, validToken()))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.CodeInvalidRequest, decodeError(t, rr).ErrorCode)
}

// ─────────────────────────────────────────────
// signout
// ─────────────────────────────────────────────

func TestSignout_NoSession_AlreadyLoggedOut(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/auth/signout", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, alreadyLoggedOut, body["message"])

	cookie := env.sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestSignout_NoSSID_AlreadyLoggedOut(t *testing.T) {
	env := newTestEnv(t)

	token := validToken()
	token.SSID = nil

	rr := env.do(t, http.MethodPost, "/api/auth/signout", "", env.cookieFor(t, token))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, alreadyLoggedOut, decodeMap(t, rr)["message"])
}

func TestSignout_CallsBackendAndClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().SignOut(gomock.Any(), testSSID).Return(json.RawMessage(`{}`), nil)

	rr := env.do(t, http.MethodPost, "/api/auth/signout", "", env.cookieFor(t, validToken()))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decodeMap(t, rr)["success"])
	cookie := env.sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestSignout_BackendSessionAlreadyGone(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().
		SignOut(gomock.Any(), testSSID).
		Return(nil, &adapter.HTTPError{Status: http.StatusUnauthorized, Body: "gone"})

	rr := env.do(t, http.MethodPost, "/api/auth/signout", "", env.cookieFor(t, validToken()))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, alreadyLoggedOut, decodeMap(t, rr)["message"])
}

func TestSignout_BackendUnavailable(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().SignOut(gomock.Any(), testSSID).Return(nil, adapter.ErrRequestTimeout)

	rr := env.do(t, http.MethodPost, "/api/auth/signout", "", env.cookieFor(t, validToken()))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.NotNil(t, env.sessionCookie(rr), "cookie is cleared even when the backend is down")
}

// ─────────────────────────────────────────────
// session (client projection)
// ─────────────────────────────────────────────

func TestSession_NoCookie_NullUser(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/auth/session", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"user":null}`, rr.Body.String())
}

func TestSession_TamperedCookie_NullUser(t *testing.T) {
	env := newTestEnv(t)

	cookie := env.cookieFor(t, validToken())
	cookie.Value += "x"

	rr := env.do(t, http.MethodGet, "/api/auth/session", "", cookie)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"user":null}`, rr.Body.String())
}

func TestSession_ClientProjectionHidesSSID(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/auth/session", "", env.cookieFor(t, validToken()))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ann", user["name"])
	assert.Equal(t, "ann@example.com", user["email"])
	assert.Equal(t, "google", user["provider"])
	assert.Equal(t, true, user["hasAuth"])
	assert.NotContains(t, user, "ssid")
	assert.NotEmpty(t, body["expires"])
	assert.NotContains(t, rr.Body.String(), testSSID)
}

// ─────────────────────────────────────────────
// login callbacks
// ─────────────────────────────────────────────

func TestCallbackCredentials_IssuesCookie(t *testing.T) {
	env := newTestEnv(t)

	env.auth.EXPECT().
		LoginWithCredentials(gomock.Any(), models.CredentialsLogin{Email: "ann@example.com", Password: "pw"}).
		Return(validToken(), nil)

	rr := env.do(t, http.MethodPost, "/api/auth/callback/credentials", `{"email":"ann@example.com","password":"pw"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), testSSID)

	cookie := env.sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)

	token, err := env.sessions.Codec.Decode(cookie.Value)
	require.NoError(t, err)
	ssid, ok := token.SSIDString()
	assert.True(t, ok)
	assert.Equal(t, testSSID, ssid)
}

func TestCallbackCredentials_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantCode: models.CodeInvalidRequest},
		{name: "broken json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantCode: models.CodeInvalidRequest},
		{
			name:       "rejected",
			body:       `{"email":"a@b.c","password":"x"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidCredentials, &adapter.HTTPError{Status: 401}),
			wantStatus: http.StatusUnauthorized,
			wantCode:   models.CodeInvalidLogin,
		},
		{
			name:       "missing fields",
			body:       `{"email":""}`,
			serviceErr: service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantCode:   models.CodeInvalidRequest,
		},
		{
			name:       "no ssid from backend",
			body:       `{"email":"a@b.c","password":"x"}`,
			serviceErr: service.ErrNoSessionIssued,
			wantStatus: http.StatusBadGateway,
			wantCode:   models.CodeBackendError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.serviceErr != nil {
				env.auth.EXPECT().LoginWithCredentials(gomock.Any(), gomock.Any()).Return(nil, tt.serviceErr)
			}

			rr := env.do(t, http.MethodPost, "/api/auth/callback/credentials", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rr).ErrorCode)
			assert.Nil(t, env.sessionCookie(rr))
		})
	}
}

func TestCallbackSocial_IssuesCookieWithSocialID(t *testing.T) {
	env := newTestEnv(t)

	token := validToken()
	token.SocialID = strPtr("g-1")
	env.auth.EXPECT().
		LoginWithSocial(gomock.Any(), models.SocialLogin{Provider: "google", SocialID: "g-1"}).
		Return(token, nil)

	rr := env.do(t, http.MethodPost, "/api/auth/callback/social", `{"provider":"google","socialId":"g-1"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	cookie := env.sessionCookie(rr)
	require.NotNil(t, cookie)

	issued, err := env.sessions.Codec.Decode(cookie.Value)
	require.NoError(t, err)
	require.NotNil(t, issued.SocialID)
	assert.Equal(t, "g-1", *issued.SocialID)
}
