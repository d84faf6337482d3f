package main

import (
	"fmt"

	"github.com/MKhiriev/remix-gateway/internal/adapter"
	"github.com/MKhiriev/remix-gateway/internal/config"
	"github.com/MKhiriev/remix-gateway/internal/handler"
	"github.com/MKhiriev/remix-gateway/internal/logger"
	"github.com/MKhiriev/remix-gateway/internal/metrics"
	"github.com/MKhiriev/remix-gateway/internal/server"
	"github.com/MKhiriev/remix-gateway/internal/service"
	"github.com/MKhiriev/remix-gateway/internal/session"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("remix-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("backend", cfg.Backend.BaseURL).
		Bool("secretConfigured", cfg.App.SessionSecret != "").
		Msg("received configs")

	if cfg.Backend.BaseURL == "" {
		log.Warn().Msg("backend base URL is not set, backend routes will answer CONFIG_001")
	}
	if cfg.App.SessionSecret == "" {
		log.Warn().Msg("session secret is not set, every session check will fail")
	}

	m := metrics.New()
	backend := adapter.NewHTTPBackendAdapter(cfg.Backend, m, log)

	services, err := service.NewServices(backend, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	sessions := session.NewManager(cfg.App, services.AuthService, log)

	handlers, err := handler.NewHandlers(services, sessions, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
