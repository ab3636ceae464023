package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "pamc"
)

var (
	apiDurationBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

	// Backend API client metrics
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Count of backend API requests by method and response class.",
	}, []string{"method", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Time taken for a backend API request to complete.",
		Buckets:   apiDurationBuckets,
	}, []string{"method"})

	// Notification channel metrics
	NotificationEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_events_total",
		Help:      "Count of events received on the notification WebSocket.",
	}, []string{"type"})

	// Static hosting metrics
	StaticRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "static_requests_total",
		Help:      "Count of requests served by the static console host.",
	}, []string{"code"})
)
