package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IngestRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scholarship_ingest_rows_total",
			Help: "Rows processed by CSV ingestion, by result",
		},
		[]string{"result"},
	)

	IngestBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scholarship_ingest_batches_total",
			Help: "CSV ingestion batches, by import mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	EligibilityChecks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scholarship_eligibility_checks_total",
			Help: "Eligibility evaluations served",
		},
	)

	EligibilityDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scholarship_eligibility_duration_seconds",
			Help:    "Time spent evaluating one eligibility request",
			Buckets: prometheus.DefBuckets,
		},
	)
)
