package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-reward-keeper/internal/adapter"
	"github.com/MKhiriev/go-reward-keeper/internal/config"
	"github.com/MKhiriev/go-reward-keeper/internal/logger"
)

type App struct {
	adapter   adapter.RewardAdapter
	clipboard Clipboard
	cfg       config.Client

	out    io.Writer
	logger *logger.Logger
}

// NewApp wires a client run. clipboard may be nil when copying is disabled.
func NewApp(rewardAdapter adapter.RewardAdapter, clipboard Clipboard, cfg config.Client, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg.InputFile == "" {
		return nil, fmt.Errorf("%w: no input file given", config.ErrInvalidClientConfigs)
	}
	if cfg.CopyToClipboard && clipboard == nil {
		return nil, fmt.Errorf("%w: clipboard copy requested but no clipboard available", config.ErrInvalidClientConfigs)
	}

	return &App{
		adapter:   rewardAdapter,
		clipboard: clipboard,
		cfg:       cfg,
		out:       out,
		logger:    logger,
	}, nil
}

// Run submits the input file once and prints either the reward table or the
// server's error message with its correlation ID.
func (a *App) Run(ctx context.Context) error {
	transactions, err := readTransactions(a.cfg.InputFile)
	if err != nil {
		return err
	}
	a.logger.Debug().Int("transactions", len(transactions)).Str("file", a.cfg.InputFile).Msg("input loaded")

	version, err := a.adapter.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not read server version")
		version = ""
	}

	result, err := a.adapter.CalculateReward(ctx, transactions)
	if err != nil {
		fmt.Fprintln(a.out, renderError(err))
		return fmt.Errorf("calculate reward: %w", err)
	}

	fmt.Fprintln(a.out, renderResult(result, version))

	if a.cfg.CopyToClipboard {
		payload, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		if err = a.clipboard.WriteAll(string(payload)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, helpStyle.Render("Result copied to clipboard."))
	}

	return nil
}
