package service

import (
	"fmt"

	"github.com/MKhiriev/go-reward-keeper/internal/config"
	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/metrics"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
)

// RewardServiceWrapper defines middleware composition for RewardService.
// Implementations wrap an existing RewardService to add behavior such as
// validating or metrics collection.
type RewardServiceWrapper interface {
	Wrap(RewardService) RewardService // returns a decorated RewardService applying additional behavior
}

type Services struct {
	RewardService  RewardService
	AppInfoService AppInfoService
}

// NewServices assembles the service layer. The reward calculator is wrapped
// by validation and, when m is not nil, by metrics collection (outermost).
func NewServices(cfg config.StructuredConfig, clock utils.Clock, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	wrappers := []RewardServiceWrapper{NewRewardValidationService(clock)}
	if m != nil {
		wrappers = append(wrappers, NewRewardMetricsService(m))
	}

	return &Services{
		RewardService:  wrap(NewRewardService(), wrappers...),
		AppInfoService: appInfo,
	}, nil
}

// wrap applies wrappers inside-out: the last wrapper ends up outermost.
func wrap(svc RewardService, wrappers ...RewardServiceWrapper) RewardService {
	for _, w := range wrappers {
		svc = w.Wrap(svc)
	}
	return svc
}
