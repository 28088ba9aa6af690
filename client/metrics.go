package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hyw-webpics/webpics/client/internal/api"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webpics_client",
			Name:      "requests_total",
			Help:      "Requests sent through the gateway by method, scope and status class.",
		},
		[]string{"method", "scope", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "webpics_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of gateway requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "scope"},
	)
)

func observeRequest(req api.Request, status string, start time.Time) {
	scope := req.Scope.String()
	requestsTotal.WithLabelValues(req.Method, scope, status).Inc()
	requestDuration.WithLabelValues(req.Method, scope).Observe(time.Since(start).Seconds())
}
