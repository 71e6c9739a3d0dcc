package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	updatesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ead_backend",
			Subsystem: "delivery_consumer",
			Name:      "updates_processed_total",
			Help:      "Total number of successfully processed delivery updates",
		},
	)

	updatesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ead_backend",
			Subsystem: "delivery_consumer",
			Name:      "updates_failed_total",
			Help:      "Total number of failed delivery update processing attempts",
		},
	)

	updatesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ead_backend",
			Subsystem: "delivery_consumer",
			Name:      "updates_dlq_total",
			Help:      "Total number of delivery updates written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ead_backend",
			Subsystem: "delivery_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	updateProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ead_backend",
			Subsystem: "delivery_consumer",
			Name:      "update_processing_duration_seconds",
			Help:      "Histogram of delivery update processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	updatesInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ead_backend",
			Subsystem: "delivery_consumer",
			Name:      "updates_in_progress",
			Help:      "Number of delivery updates currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ead_backend",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order by ID",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ead_backend",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order by ID",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ead_backend",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order by ID",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		updatesProcessed,
		updatesFailed,
		updatesDLQ,
		commitErrors,
		updateProcessingDuration,
		updatesInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
