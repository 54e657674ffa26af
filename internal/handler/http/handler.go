package http

import (
	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/metrics"
	"github.com/MKhiriev/go-reward-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics is optional; nil disables the /metrics route and the request
	// collectors.
	metrics *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Bool("metrics", m != nil).Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}
