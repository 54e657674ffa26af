package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-reward-keeper/internal/config"
	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/MKhiriev/go-reward-keeper/models"
)

const (
	calculateRewardPath = "/api/calculate-reward"
	versionPath         = "/api/version"
)

type httpRewardAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRewardAdapter constructs an HTTP implementation of [RewardAdapter].
// cfg.HTTPAddress may be "host:port" or a full URL; "http://" is assumed
// when no scheme is given.
func NewHTTPRewardAdapter(cfg config.Adapter, logger *logger.Logger) (RewardAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("reward adapter created")
	return &httpRewardAdapter{
		client: utils.NewHTTPClientFor(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRewardAdapter) CalculateReward(ctx context.Context, transactions []models.Transaction) (models.RewardResult, error) {
	if transactions == nil {
		// keep the body a JSON array so the server reports an empty list
		transactions = []models.Transaction{}
	}

	var result models.RewardResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(transactions).
		SetResult(&result).
		Post(calculateRewardPath)
	if err != nil {
		return models.RewardResult{}, fmt.Errorf("calculate reward request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Int("status", resp.StatusCode()).Msg("reward server rejected request")
		return models.RewardResult{}, err
	}

	return result, nil
}

func (h *httpRewardAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
