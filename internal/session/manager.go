// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"github.com/MKhiriev/remix-gateway/internal/config"
	"github.com/MKhiriev/remix-gateway/internal/logger"
)

// Manager bundles the session components built from one configuration.
type Manager struct {
	Codec     *Codec
	Cookies   *CookieManager
	Projector *Projector
	Validator *Validator
	Refresher *Refresher
}

// NewManager wires codec, cookies, projector, validator and refresher from
// cfg. backend may be nil, which disables refreshing.
func NewManager(cfg config.App, backend BackendSession, l *logger.Logger) *Manager {
	codec := NewCodec(cfg.SessionSecret, cfg.TokenMaxAge)
	cookies := NewCookieManager(cfg.SessionCookieName, cfg.SecureCookie, cfg.TokenMaxAge)
	projector := NewProjector(l)

	interval := cfg.SessionRefreshInterval
	if backend == nil {
		interval = 0
	}

	return &Manager{
		Codec:     codec,
		Cookies:   cookies,
		Projector: projector,
		Validator: NewValidator(codec, cookies, projector, cfg.AuthDebug, l),
		Refresher: NewRefresher(codec, cookies, backend, interval, l),
	}
}
