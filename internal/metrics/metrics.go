// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus collectors of the reward service and
// exposes them over HTTP.
//
// Each Metrics value has its own registry, so tests can create isolated
// instances without tripping over duplicate registrations.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reward_keeper"

// OutcomeSuccess labels calculations that produced a result. Failed
// calculations are labelled with the violated rule name or OutcomeInternal.
const (
	OutcomeSuccess  = "success"
	OutcomeInternal = "internal_error"
)

type Metrics struct {
	registry *prometheus.Registry

	calculations     *prometheus.CounterVec
	pointsAwarded    prometheus.Histogram
	transactionsSeen prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rewards",
				Name:      "calculations_total",
				Help:      "Reward calculations by outcome.",
			},
			[]string{"outcome"},
		),
		pointsAwarded: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "rewards",
				Name:      "points_awarded",
				Help:      "Total points returned per successful calculation.",
				Buckets:   prometheus.ExponentialBuckets(10, 4, 8), // 10 to ~160k
			},
		),
		transactionsSeen: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "rewards",
				Name:      "transactions_per_request",
				Help:      "Number of transactions submitted per calculation.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),

		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.calculations,
		m.pointsAwarded,
		m.transactionsSeen,
		m.httpRequests,
		m.httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveCalculation records one reward calculation. points is only
// observed for successful calculations.
func (m *Metrics) ObserveCalculation(outcome string, transactions, points int) {
	m.calculations.WithLabelValues(outcome).Inc()
	m.transactionsSeen.Observe(float64(transactions))

	if outcome == OutcomeSuccess {
		m.pointsAwarded.Observe(float64(points))
	}
}

// ObserveHTTPRequest records one served HTTP request. route should be the
// router pattern rather than the raw path to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
