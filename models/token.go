// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultProvider is the provider recorded for tokens issued by the
// email/password login flow and used whenever a token carries no provider.
const DefaultProvider = "credentials"

// Token is the server-only signed session credential. It travels inside an
// HttpOnly cookie and is never decoded by the browser.
//
// SSID is kept as raw JSON so that validation can tell an absent claim, a
// JSON null, an empty string and a value of the wrong type apart.
type Token struct {
	Name     *string         `json:"name,omitempty"`
	Email    *string         `json:"email,omitempty"`
	Provider string          `json:"provider,omitempty"`
	SSID     json.RawMessage `json:"ssid,omitempty"`
	SocialID *string         `json:"socialId,omitempty"`

	// RefreshedAt is the unix time of the last backend re-check.
	RefreshedAt int64 `json:"refreshedAt,omitempty"`

	jwt.RegisteredClaims
}

// SetSSID stores ssid as a JSON string claim.
func (t *Token) SetSSID(ssid string) {
	raw, _ := json.Marshal(ssid)
	t.SSID = raw
}

// HasSSIDClaim reports whether the ssid claim is present with a non-null value.
func (t *Token) HasSSIDClaim() bool {
	trimmed := bytes.TrimSpace(t.SSID)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// SSIDString returns the ssid claim when it is a JSON string.
// ok is false for absent, null or non-string claims.
func (t *Token) SSIDString() (ssid string, ok bool) {
	if !t.HasSSIDClaim() {
		return "", false
	}
	if err := json.Unmarshal(t.SSID, &ssid); err != nil {
		return "", false
	}
	return ssid, true
}

// HasIdentity reports whether the token carries a user identity claim.
func (t *Token) HasIdentity() bool {
	return (t.Email != nil && *t.Email != "") || (t.Name != nil && *t.Name != "")
}

// ProviderOrDefault returns the provider claim or [DefaultProvider].
func (t *Token) ProviderOrDefault() string {
	if t.Provider == "" {
		return DefaultProvider
	}
	return t.Provider
}
