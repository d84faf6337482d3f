// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/models"
)

// BackendSession is the backend side of a session refresh.
type BackendSession interface {
	// CheckSession reports whether the backend still accepts ssid. A backend
	// rejection is (false, nil); transport failures are errors.
	CheckSession(ctx context.Context, ssid string) (bool, error)
	// Reestablish logs a social-provider user in again and returns the new ssid.
	Reestablish(ctx context.Context, token *models.Token) (string, error)
}

// Refresher re-checks aging tokens against the backend and re-issues them.
type Refresher struct {
	codec    *Codec
	cookies  *CookieManager
	backend  BackendSession
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewRefresher returns a refresher that re-checks tokens older than interval.
// A non-positive interval disables refreshing.
func NewRefresher(codec *Codec, cookies *CookieManager, backend BackendSession, interval time.Duration, l *logger.Logger) *Refresher {
	return &Refresher{
		codec:    codec,
		cookies:  cookies,
		backend:  backend,
		interval: interval,
		now:      time.Now,
		logger:   l,
	}
}

// Middleware refreshes the session token before next runs. Any failure
// leaves the request untouched; validation is the route's job.
func (rf *Refresher) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if encoded, ok := rf.refresh(r); ok {
			rf.cookies.Set(w, encoded)
			r = rf.cookies.Replace(r, encoded)
		}
		next.ServeHTTP(w, r)
	})
}

// refresh returns the re-issued token when one was produced.
func (rf *Refresher) refresh(r *http.Request) (string, bool) {
	if rf.interval <= 0 || !rf.codec.Configured() {
		return "", false
	}

	raw, ok := rf.cookies.Read(r)
	if !ok {
		return "", false
	}
	token, err := rf.codec.Decode(raw)
	if err != nil {
		return "", false
	}

	now := rf.now()
	if now.Sub(time.Unix(token.RefreshedAt, 0)) < rf.interval {
		return "", false
	}

	ssid, ok := token.SSIDString()
	if !ok || ssid == "" {
		return "", false
	}

	log := logger.FromRequest(r)

	valid, err := rf.backend.CheckSession(r.Context(), ssid)
	if err != nil {
		log.Warn().Err(err).Msg("session re-check failed, keeping token")
		return "", false
	}

	if !valid {
		if token.SocialID == nil || *token.SocialID == "" {
			log.Info().Str("provider", token.ProviderOrDefault()).Msg("backend rejected session")
			return "", false
		}

		newSSID, err := rf.backend.Reestablish(r.Context(), token)
		if err != nil || newSSID == "" {
			log.Warn().Err(err).Str("provider", token.ProviderOrDefault()).Msg("session re-establish failed")
			return "", false
		}
		token.SetSSID(newSSID)
		log.Info().Str("provider", token.ProviderOrDefault()).Msg("session re-established")
	}

	token.RefreshedAt = now.Unix()
	encoded, err := rf.codec.Encode(token)
	if err != nil {
		rf.logger.Error().Err(err).Msg("error re-issuing session token")
		return "", false
	}

	return encoded, true
}
