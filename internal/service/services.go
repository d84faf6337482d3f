// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/remix-gateway/internal/adapter"
	"github.com/MKhiriev/remix-gateway/internal/config"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/metrics"
)

type Services struct {
	UserInitService UserInitService
	AuthService     AuthService
	LibraryService  LibraryService
	AppInfoService  AppInfoService
}

func NewServices(backend adapter.Backend, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserInitService: NewUserInitService(backend, m, logger),
		AuthService:     NewAuthService(backend, logger),
		LibraryService:  NewLibraryService(backend, logger),
		AppInfoService:  appInfoService,
	}, nil
}
