package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts HTTP requests by method, path and status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washloop_http_requests_total",
		Help: "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	// HTTPDuration observes HTTP request latency by path
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "washloop_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// ScansRecorded counts successfully recorded washes
	ScansRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "washloop_scans_recorded_total",
		Help: "Total washes recorded via QR scans",
	})

	// RewardsIssued counts rewards issued by completed loyalty cycles
	RewardsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "washloop_rewards_issued_total",
		Help: "Total rewards issued",
	})

	// RewardsRedeemed counts successfully claimed rewards
	RewardsRedeemed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "washloop_rewards_redeemed_total",
		Help: "Total rewards redeemed",
	})
)
