package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-reward-keeper/internal/metrics"
	"github.com/MKhiriev/go-reward-keeper/internal/validators"
	"github.com/MKhiriev/go-reward-keeper/models"
)

// RewardMetricsService counts calculations by outcome and records the size
// and result of each request.
type RewardMetricsService struct {
	inner   RewardService
	metrics *metrics.Metrics
}

// NewRewardMetricsService returns a wrapper that reports every calculation
// to m.
func NewRewardMetricsService(m *metrics.Metrics) RewardServiceWrapper {
	return &RewardMetricsService{metrics: m}
}

func (s *RewardMetricsService) CalculateReward(ctx context.Context, transactions []models.Transaction) (models.RewardResult, error) {
	result, err := s.inner.CalculateReward(ctx, transactions)

	s.metrics.ObserveCalculation(outcomeOf(err), len(transactions), result.TotalPoints)

	return result, err
}

func (s *RewardMetricsService) Wrap(wrapped RewardService) RewardService {
	s.inner = wrapped
	return s
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return string(verr.Rule)
	}

	return metrics.OutcomeInternal
}
