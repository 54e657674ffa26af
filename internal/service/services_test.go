package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-reward-keeper/internal/config"
	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/metrics"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/MKhiriev/go-reward-keeper/internal/validators"
	"github.com/MKhiriev/go-reward-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices_RequiresVersion(t *testing.T) {
	svcs, err := NewServices(config.StructuredConfig{}, utils.NewFixedClock(testNow), nil, logger.Nop())

	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
	assert.Nil(t, svcs)
}

func TestNewServices_RewardServiceValidates(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	for _, m := range []*metrics.Metrics{nil, metrics.New()} {
		svcs, err := NewServices(cfg, utils.NewFixedClock(testNow), m, logger.Nop())
		require.NoError(t, err)

		_, err = svcs.RewardService.CalculateReward(context.Background(), nil)
		assert.ErrorIs(t, err, validators.ErrEmptyList)

		result, err := svcs.RewardService.CalculateReward(context.Background(), []models.Transaction{
			purchase("120", testNow.Add(-time.Hour)),
			purchase("120", testNow.Add(-2*time.Hour)),
		})
		require.NoError(t, err)
		assert.Equal(t, 180, result.TotalPoints)

		assert.Equal(t, "1.0.0", svcs.AppInfoService.GetAppVersion(context.Background()))
	}
}

func TestNewServices_Idempotent(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}
	svcs, err := NewServices(cfg, utils.NewFixedClock(testNow), metrics.New(), logger.Nop())
	require.NoError(t, err)

	transactions := []models.Transaction{
		purchase("120", testNow.Add(-24*time.Hour)),
		purchase("220", testNow.AddDate(0, -1, 0)),
	}

	first, err := svcs.RewardService.CalculateReward(context.Background(), transactions)
	require.NoError(t, err)
	second, err := svcs.RewardService.CalculateReward(context.Background(), transactions)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewServices_HugeCostIsNotScored(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}
	svcs, err := NewServices(cfg, utils.NewFixedClock(testNow), nil, logger.Nop())
	require.NoError(t, err)

	result, err := svcs.RewardService.CalculateReward(context.Background(), []models.Transaction{
		purchase("9223372036854775807", testNow.Add(-time.Hour)),
	})

	require.ErrorIs(t, err, ErrCostTooLarge)
	assert.Zero(t, result.TotalPoints)
}
