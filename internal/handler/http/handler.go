// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/metrics"
	"github.com/MKhiriev/remix-gateway/internal/service"
	"github.com/MKhiriev/remix-gateway/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		metrics:  m,
		logger:   logger,
	}
}
