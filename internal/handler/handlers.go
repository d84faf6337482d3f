// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/remix-gateway/internal/config"
	"github.com/MKhiriev/remix-gateway/internal/handler/http"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/metrics"
	"github.com/MKhiriev/remix-gateway/internal/service"
	"github.com/MKhiriev/remix-gateway/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, m, logger),
	}, nil
}
