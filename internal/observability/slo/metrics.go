// Package slo tracks service level indicators for the API over fixed windows
// and publishes them as gauges next to the raw request metrics.
package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets define the service level objectives for the application.
const (
	// AvailabilitySLO defines the target uptime percentage (99.9% = 43 minutes downtime per month)
	AvailabilitySLO = 99.9

	// LatencyP95SLO defines the target for 95th percentile latency in seconds (200ms)
	LatencyP95SLO = 0.200

	// LatencyP99SLO defines the target for 99th percentile latency in seconds (500ms)
	LatencyP99SLO = 0.500

	// ErrorRateSLO defines the maximum acceptable error rate as a ratio (0.1% = 0.001)
	ErrorRateSLO = 0.001
)

// Gauges hold the values of the last completed window.
var (
	// SLOAvailability is (requests - 5xx) / requests.
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Availability ratio (0-1) over the last window, target: 0.999",
		},
	)

	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p95_seconds",
			Help: "p95 latency in seconds over the last window, target: 0.200",
		},
	)

	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p99_seconds",
			Help: "p99 latency in seconds over the last window, target: 0.500",
		},
	)

	// SLOErrorRate is 5xx / requests.
	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Error rate ratio (0-1) over the last window, target: 0.001",
		},
	)
)
