package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-reward-keeper/internal/adapter"
	"github.com/MKhiriev/go-reward-keeper/internal/client"
	"github.com/MKhiriev/go-reward-keeper/internal/config"
	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprintln(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewConsoleLogger("reward-client", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewConsoleLogger("reward-client", os.Stderr, cfg.App.LogLevel)

	rewardAdapter, err := adapter.NewHTTPRewardAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create reward adapter")
	}

	var clip client.Clipboard
	if cfg.Client.CopyToClipboard {
		clip = client.SystemClipboard()
	}

	app, err := client.NewApp(rewardAdapter, clip, cfg.Client, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}
