package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	calculateRewardRoute = "/api/calculate-reward"
	versionRoute         = "/api/version"
	metricsRoute         = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)

	if h.metrics != nil {
		router.Use(h.withMetrics)
		router.Method(http.MethodGet, metricsRoute, h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post(calculateRewardRoute, h.calculateReward)
		r.Get(versionRoute, h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
