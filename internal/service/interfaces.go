// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the gateway's business logic on top of the backend
// adapter: the user-init aggregation, the auth flows and the library proxy.
//
// Every method that talks to the backend receives the caller's ssid
// explicitly. Services never read cookies and never cache ssid values.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/remix-gateway/internal/session"
	"github.com/MKhiriev/remix-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserInitService aggregates the user profile from several backend endpoints.
type UserInitService interface {
	// Init queries all profile endpoints concurrently on behalf of ssid and
	// merges whatever succeeded. Per-endpoint failures are reported inside the
	// response; an error is returned only when the aggregation itself broke.
	Init(ctx context.Context, ssid string) (models.UserInitResponse, error)
}

// AuthService proxies the backend auth endpoints and implements the login
// flows that mint session tokens.
type AuthService interface {
	session.BackendSession

	// VerifySession returns the backend's answer to GET /auth/isLogged.
	VerifySession(ctx context.Context, ssid string) (json.RawMessage, error)
	// ConfirmNewbie marks the onboarding of the user as done.
	ConfirmNewbie(ctx context.Context, ssid string, body json.RawMessage) (json.RawMessage, error)
	// SignOut ends the backend session.
	SignOut(ctx context.Context, ssid string) (json.RawMessage, error)

	// LoginWithCredentials verifies email and password with the backend and
	// returns an unsigned token carrying the issued ssid.
	LoginWithCredentials(ctx context.Context, creds models.CredentialsLogin) (*models.Token, error)
	// LoginWithSocial verifies a social-provider identity, registering it on
	// first use, and returns an unsigned token carrying the issued ssid.
	LoginWithSocial(ctx context.Context, social models.SocialLogin) (*models.Token, error)
}

// LibraryService proxies the playlist and channel endpoints.
type LibraryService interface {
	AddToPlaylist(ctx context.Context, ssid string, body json.RawMessage) (json.RawMessage, error)
	// Channels forwards method and body to /user/channels.
	Channels(ctx context.Context, ssid, method string, body json.RawMessage) (json.RawMessage, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
