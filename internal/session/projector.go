// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"time"

	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/models"
)

// Projector turns a token into the [models.SessionView] seen by callers.
type Projector struct {
	logger *logger.Logger
}

func NewProjector(l *logger.Logger) *Projector {
	return &Projector{logger: l}
}

// Project builds the session view of token for ec. A nil token yields a view
// with default fields. The ssid is copied only for [ServerContext]; for any
// other context the view has no ssid key at all.
//
// Project never logs the ssid value.
func (p *Projector) Project(token *models.Token, ec ExecutionContext) models.SessionView {
	p.logger.Debug().
		Str("event", "callback-start").
		Bool("hasToken", token != nil).
		Msg("projecting session")

	if token == nil {
		token = &models.Token{}
	}

	view := models.SessionView{}
	view.User = models.SessionUser{
		Name:     token.Name,
		Email:    token.Email,
		Provider: token.ProviderOrDefault(),
	}

	ssid, isString := token.SSIDString()
	view.User.HasAuth = isString && ssid != ""

	if token.ExpiresAt != nil {
		view.Expires = token.ExpiresAt.UTC().Format(time.RFC3339)
	}

	p.logger.Debug().
		Str("event", "base-data-set").
		Bool("hasName", token.Name != nil).
		Bool("hasEmail", token.Email != nil).
		Str("provider", view.User.Provider).
		Msg("base session data set")

	p.logger.Debug().
		Str("event", "context-detected").
		Stringer("context", ec).
		Msg("execution context detected")

	if ec == ServerContext {
		// non-string claims are exposed as null; Validate rejects them as invalid_ssid
		if isString {
			view.User.ExposeSSID(&ssid)
		} else {
			view.User.ExposeSSID(nil)
		}
		p.logger.Debug().
			Str("event", "ssid-exposed").
			Bool("hasSsid", isString).
			Msg("ssid exposed to server context")
	} else {
		p.logger.Debug().
			Str("event", "ssid-hidden").
			Msg("ssid hidden from client context")
	}

	p.logger.Debug().
		Str("event", "callback-complete").
		Strs("userKeys", view.User.Keys()).
		Msg("session projected")

	return view
}
