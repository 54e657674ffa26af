package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/MKhiriev/go-reward-keeper/internal/validators"
	"github.com/MKhiriev/go-reward-keeper/models"
)

// RewardValidationService runs the reward rules before delegating to the
// wrapped RewardService. The first violated rule aborts the request.
type RewardValidationService struct {
	inner     RewardService
	validator validators.Validator
}

// NewRewardValidationService returns a wrapper that validates transactions
// against the reward rules, reading the current time from clock.
func NewRewardValidationService(clock utils.Clock) RewardServiceWrapper {
	return &RewardValidationService{
		validator: validators.NewTransactionValidator(clock),
	}
}

func (v *RewardValidationService) CalculateReward(ctx context.Context, transactions []models.Transaction) (models.RewardResult, error) {
	if err := v.validator.Validate(ctx, transactions); err != nil {
		return models.RewardResult{}, fmt.Errorf("error during transactions validation before reward calculation: %w", err)
	}

	return v.inner.CalculateReward(ctx, transactions)
}

func (v *RewardValidationService) Wrap(wrapped RewardService) RewardService {
	v.inner = wrapped
	return v
}
