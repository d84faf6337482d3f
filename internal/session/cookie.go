// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/http"
	"time"
)

// Cookie names understood by the browser application.
const (
	DefaultCookieName  = "next-auth.session-token"
	SecureCookiePrefix = "__Secure-"
)

// CookieManager reads and writes the session token cookie.
type CookieManager struct {
	name   string
	secure bool
	maxAge time.Duration
}

// NewCookieManager returns a manager for the named cookie. An empty name
// selects [DefaultCookieName], prefixed with [SecureCookiePrefix] when secure.
func NewCookieManager(name string, secure bool, maxAge time.Duration) *CookieManager {
	if name == "" {
		name = DefaultCookieName
		if secure {
			name = SecureCookiePrefix + name
		}
	}

	return &CookieManager{
		name:   name,
		secure: secure,
		maxAge: maxAge,
	}
}

// Name returns the cookie name.
func (m *CookieManager) Name() string {
	return m.name
}

// Read returns the raw token from r. ok is false when the cookie is absent
// or empty.
func (m *CookieManager) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Set stores token in an HttpOnly cookie.
func (m *CookieManager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, m.cookie(token, int(m.maxAge.Seconds())))
}

// Clear expires the cookie in the browser.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}

// Replace returns a shallow copy of r whose session cookie carries token, so
// handlers further down the chain see a freshly issued token.
func (m *CookieManager) Replace(r *http.Request, token string) *http.Request {
	cookies := r.Cookies()

	r2 := r.Clone(r.Context())
	r2.Header.Del("Cookie")

	replaced := false
	for _, c := range cookies {
		if c.Name == m.name {
			c.Value = token
			replaced = true
		}
		r2.AddCookie(c)
	}
	if !replaced {
		r2.AddCookie(&http.Cookie{Name: m.name, Value: token})
	}

	return r2
}

func (m *CookieManager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
