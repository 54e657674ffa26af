package main

import (
	"fmt"

	"github.com/MKhiriev/go-reward-keeper/internal/config"
	"github.com/MKhiriev/go-reward-keeper/internal/handler"
	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/metrics"
	"github.com/MKhiriev/go-reward-keeper/internal/server"
	"github.com/MKhiriev/go-reward-keeper/internal/service"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/MKhiriev/go-reward-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("reward-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("reward-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	services, err := service.NewServices(*cfg, utils.NewSystemClock(), m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
