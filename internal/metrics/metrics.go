// Package metrics exposes Prometheus metrics for the archive API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "teyvat"
	subsystem = "archive"
)

// Manager owns every collector registered by the service.
// A nil *Manager is valid and records nothing.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	teamsCreated     prometheus.Counter
	teamsDeleted     prometheus.Counter
	teamsRejected    prometheus.Counter
	teamAnalyses     prometheus.Counter
	reactionsPerTeam prometheus.Histogram
}

// NewManager registers the collectors on a fresh registry, so tests can
// build as many managers as they need.
func NewManager() *Manager {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	m := &Manager{registry: reg}

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	m.teamsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "teams_created_total",
		Help:      "Total number of teams saved",
	})

	m.teamsDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "teams_deleted_total",
		Help:      "Total number of team delete requests, including unknown ids",
	})

	m.teamsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "teams_rejected_total",
		Help:      "Total number of team submissions rejected by validation",
	})

	m.teamAnalyses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "team_analyses_total",
		Help:      "Total number of team compositions analyzed",
	})

	m.reactionsPerTeam = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reactions_per_team",
		Help:      "Distinct elemental reactions available per analyzed team",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 6},
	})

	return m
}

// Registry returns the underlying registry, mainly for tests
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) RecordHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Manager) TeamCreated() {
	if m == nil {
		return
	}
	m.teamsCreated.Inc()
}

func (m *Manager) TeamDeleted() {
	if m == nil {
		return
	}
	m.teamsDeleted.Inc()
}

func (m *Manager) TeamRejected() {
	if m == nil {
		return
	}
	m.teamsRejected.Inc()
}

func (m *Manager) TeamAnalyzed(reactions int) {
	if m == nil {
		return
	}
	m.teamAnalyses.Inc()
	m.reactionsPerTeam.Observe(float64(reactions))
}
