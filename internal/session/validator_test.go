// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/utils"
	"github.com/MKhiriev/remix-gateway/models"
)

func TestValidate_SSIDStates(t *testing.T) {
	tests := []struct {
		name     string
		ssid     string
		wantType string
		wantCode string
	}{
		{name: "absent", ssid: "", wantType: models.ErrorTypeNoSSID, wantCode: models.CodeNoSSID},
		{name: "null", ssid: `null`, wantType: models.ErrorTypeNoSSID, wantCode: models.CodeNoSSID},
		{name: "empty string", ssid: `""`, wantType: models.ErrorTypeNoSSID, wantCode: models.CodeNoSSID},
		{name: "number", ssid: `123`, wantType: models.ErrorTypeInvalidSSID, wantCode: models.CodeInvalidSSID},
		{name: "object", ssid: `{"id":"x"}`, wantType: models.ErrorTypeInvalidSSID, wantCode: models.CodeInvalidSSID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestValidator(false).Validate(requestWithToken(t, tokenWithSSID(tt.ssid)))

			require.False(t, res.IsValid)
			assert.Equal(t, http.StatusUnauthorized, res.Status)
			require.NotNil(t, res.Error)
			assert.Equal(t, tt.wantType, res.Error.ErrorType)
			assert.Equal(t, tt.wantCode, res.Error.ErrorCode)
			assert.True(t, res.Error.Logout)
			assert.Nil(t, res.Error.Debug)
		})
	}
}

func TestValidate_Success(t *testing.T) {
	res := newTestValidator(false).Validate(requestWithToken(t, tokenWithSSID(`"tok-1"`)))

	require.True(t, res.IsValid)
	assert.Nil(t, res.Error)
	assert.Equal(t, "tok-1", res.SSID)
	assert.NotEmpty(t, res.RequestID)
	assert.NotEmpty(t, res.Timestamp)

	ssid, exposed := res.Session.User.SSID()
	require.True(t, exposed)
	assert.Equal(t, "tok-1", *ssid)
	assert.Equal(t, "Jane", *res.Session.User.Name)
	require.NotNil(t, res.Token)
	assert.Equal(t, "google", res.Token.Provider)
}

func TestValidate_NoSession(t *testing.T) {
	tests := map[string]*http.Request{
		"no cookie": httptest.NewRequest(http.MethodGet, "/", nil),
		"garbage cookie": func() *http.Request {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "garbage"})
			return r
		}(),
		"other cookie name": func() *http.Request {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: "session", Value: "x"})
			return r
		}(),
	}

	for name, r := range tests {
		t.Run(name, func(t *testing.T) {
			res := newTestValidator(false).Validate(r)

			require.False(t, res.IsValid)
			assert.Equal(t, http.StatusUnauthorized, res.Status)
			assert.Equal(t, models.ErrorTypeNoSession, res.Error.ErrorType)
			assert.Equal(t, models.CodeNoSession, res.Error.ErrorCode)
			assert.Equal(t, "Unauthorized - No valid session found", res.Error.Error)
			assert.False(t, res.Error.Success)
		})
	}
}

func TestValidate_ExpiredTokenIsNoSession(t *testing.T) {
	codec := newTestCodec()
	codec.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	encoded, err := codec.Encode(tokenWithSSID(`"tok-1"`))
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: encoded})

	res := newTestValidator(false).Validate(r)
	assert.Equal(t, models.ErrorTypeNoSession, res.Error.ErrorType)
}

func TestValidate_RequireUser(t *testing.T) {
	anonymous := tokenWithSSID(`"tok-1"`)
	anonymous.Name = nil
	anonymous.Email = nil

	t.Run("without option", func(t *testing.T) {
		res := newTestValidator(false).Validate(requestWithToken(t, anonymous))
		assert.True(t, res.IsValid)
	})

	t.Run("with option", func(t *testing.T) {
		res := newTestValidator(false).Validate(requestWithToken(t, anonymous), RequireUser())
		require.False(t, res.IsValid)
		assert.Equal(t, models.ErrorTypeNoUser, res.Error.ErrorType)
		assert.Equal(t, models.CodeNoUser, res.Error.ErrorCode)
	})

	t.Run("checked before ssid", func(t *testing.T) {
		noUserNoSSID := tokenWithSSID("")
		noUserNoSSID.Name = nil
		noUserNoSSID.Email = nil

		res := newTestValidator(false).Validate(requestWithToken(t, noUserNoSSID), RequireUser())
		assert.Equal(t, models.ErrorTypeNoUser, res.Error.ErrorType)
	})

	t.Run("empty email is no user", func(t *testing.T) {
		token := tokenWithSSID(`"tok-1"`)
		token.Name = nil
		token.Email = strPtr("")

		res := newTestValidator(false).Validate(requestWithToken(t, token), RequireUser())
		assert.Equal(t, models.ErrorTypeNoUser, res.Error.ErrorType)
	})
}

func TestValidate_MissingSecretIsFatal(t *testing.T) {
	v := NewValidator(NewCodec("", time.Hour), newTestCookies(), NewProjector(logger.Nop()), true, logger.Nop())

	res := v.Validate(requestWithToken(t, tokenWithSSID(`"tok-1"`)))

	require.False(t, res.IsValid)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, models.CodeFatalValidation, res.Error.ErrorCode)
	assert.NotContains(t, res.Error.Error, "secret")
	assert.NotContains(t, res.Error.Message, "secret")
	assert.Nil(t, res.Error.Debug)
	assert.False(t, res.Error.Logout)
}

func TestValidate_Debug(t *testing.T) {
	res := newTestValidator(true).Validate(requestWithToken(t, tokenWithSSID(`123`)))

	require.NotNil(t, res.Error.Debug)
	d := res.Error.Debug
	assert.Equal(t, "ssid_validation", d.Step)
	assert.True(t, d.HasSession)
	assert.True(t, d.HasUser)
	assert.True(t, d.HasSSID)
	assert.ElementsMatch(t, []string{"name", "email", "provider", "ssid"}, d.UserKeys)
	assert.NotEmpty(t, d.PossibleCauses)
	assert.NotEmpty(t, d.Troubleshooting)
}

func TestValidate_DebugNoSession(t *testing.T) {
	res := newTestValidator(true).Validate(httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, res.Error.Debug)
	assert.False(t, res.Error.Debug.HasSession)
	assert.Equal(t, []string{}, res.Error.Debug.UserKeys)
}

func TestValidate_RequestID(t *testing.T) {
	r := requestWithToken(t, tokenWithSSID(`"tok-1"`))
	r = r.WithContext(utils.WithRequestID(r.Context(), "trace-1"))

	res := newTestValidator(false).Validate(r)
	assert.Equal(t, "trace-1", res.RequestID)

	failed := newTestValidator(false).Validate(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, failed.RequestID)
	assert.Equal(t, failed.RequestID, failed.Error.RequestID)
	assert.Equal(t, failed.Timestamp, failed.Error.Timestamp)
}

func TestValidate_ErrorNeverCarriesSSID(t *testing.T) {
	token := tokenWithSSID(`"secret-ssid"`)
	token.Name = nil
	token.Email = nil

	res := newTestValidator(true).Validate(requestWithToken(t, token), RequireUser())

	require.NotNil(t, res.Error)
	body, err := json.Marshal(res.Error)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret-ssid")
}
