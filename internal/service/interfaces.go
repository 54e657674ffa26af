package service

import (
	"context"

	"github.com/MKhiriev/go-reward-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RewardService turns purchase transactions into a loyalty reward summary.
type RewardService interface {
	// CalculateReward returns the points earned per calendar month and in
	// total. Implementations that validate input return a
	// *validators.ValidationError for the first violated rule and no result.
	CalculateReward(ctx context.Context, transactions []models.Transaction) (models.RewardResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
