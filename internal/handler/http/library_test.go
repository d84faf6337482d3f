// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/remix-gateway/models"
)

func TestAddToPlaylist_ProxiesBody(t *testing.T) {
	env := newTestEnv(t)

	env.library.EXPECT().
		AddToPlaylist(gomock.Any(), testSSID, json.RawMessage(`{"musicId":3,"playlistId":"p"}`)).
		Return(json.RawMessage(`{"added":true}`), nil)

	rr := env.do(t, http.MethodPost, "/api/playlist/add", `{"musicId":3,"playlistId":"p"}`, env.cookieFor(t, validToken()))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"added": true}, decodeMap(t, rr)["data"])
}

func TestAddToPlaylist_NoSession(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/playlist/add", `{"musicId":3}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, models.CodeNoSession, decodeError(t, rr).ErrorCode)
}

func TestAddToPlaylist_BodyTooLarge(t *testing.T) {
	env := newTestEnv(t)

	huge := `{"pad":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rr := env.do(t, http.MethodPost, "/api/playlist/add", huge, env.cookieFor(t, validToken()))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.CodeInvalidRequest, decodeError(t, rr).ErrorCode)
}

func TestChannels_Methods(t *testing.T) {
	tests := []struct {
		method   string
		body     string
		wantBody json.RawMessage
	}{
		{method: http.MethodGet},
		{method: http.MethodPost, body: `{"channelId":1}`, wantBody: json.RawMessage(`{"channelId":1}`)},
		{method: http.MethodDelete, body: `{"channelId":1}`, wantBody: json.RawMessage(`{"channelId":1}`)},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			env := newTestEnv(t)

			env.library.EXPECT().
				Channels(gomock.Any(), testSSID, tt.method, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, body json.RawMessage) (json.RawMessage, error) {
					assert.Equal(t, tt.wantBody, body)
					return json.RawMessage(`[{"id":1}]`), nil
				})

			rr := env.do(t, tt.method, "/api/user/channels", tt.body, env.cookieFor(t, validToken()))

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, true, decodeMap(t, rr)["success"])
		})
	}
}

func TestChannels_UnsupportedMethod(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPatch, "/api/user/channels", "", env.cookieFor(t, validToken()))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "DELETE, GET, POST", rr.Header().Get("Allow"))
	assert.Equal(t, models.CodeInvalidRequest, decodeError(t, rr).ErrorCode)
}
