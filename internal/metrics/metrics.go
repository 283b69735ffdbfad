package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StatesMapped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pogoda_states_mapped_total",
			Help: "Total weather states built from provider payloads",
		},
		[]string{"status"},
	)

	CodesPassedThrough = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pogoda_codes_passed_through_total",
			Help: "Provider codes missing from a mapping table and passed through unchanged",
		},
		[]string{"kind"},
	)

	InvalidInputs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pogoda_invalid_inputs_total",
			Help: "Inputs rejected by the mapper",
		},
		[]string{"operation"},
	)

	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pogoda_api_requests_total",
			Help: "Total HTTP API requests",
		},
		[]string{"endpoint", "status"},
	)

	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pogoda_api_latency_seconds",
			Help:    "HTTP API latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)
