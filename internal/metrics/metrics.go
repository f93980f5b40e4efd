package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_backend_requests_total",
			Help: "Total number of requests issued to the shop backend",
		},
		[]string{"method", "endpoint", "status"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_backend_request_duration_seconds",
			Help:    "Shop backend request latency in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	SessionLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_session_logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	SessionRestores = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_session_restores_total",
			Help: "Total number of startup session restorations by result",
		},
		[]string{"result"},
	)

	ForcedLogouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_forced_logouts_total",
			Help: "Total number of sessions torn down after an expired credential was rejected",
		},
	)
)
