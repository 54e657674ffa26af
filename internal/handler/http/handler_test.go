package http

import (
	"testing"

	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/metrics"
	"github.com/MKhiriev/go-reward-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svcs, m, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, m, h.metrics)
	assert.Same(t, log, h.logger)
}

func TestInit_RegistersRoutes(t *testing.T) {
	tests := []struct {
		name    string
		metrics *metrics.Metrics
		want    []string
	}{
		{name: "without metrics", want: []string{calculateRewardRoute, versionRoute}},
		{name: "with metrics", metrics: metrics.New(), want: []string{calculateRewardRoute, versionRoute, metricsRoute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewHandler(&service.Services{}, tt.metrics, logger.Nop()).Init()

			var patterns []string
			for _, route := range router.Routes() {
				patterns = append(patterns, route.Pattern)
			}

			assert.ElementsMatch(t, tt.want, patterns)
		})
	}
}
