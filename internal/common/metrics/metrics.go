// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_completed_total",
			Help: "Total number of completed analyses by kind",
		},
		[]string{"kind"},
	)

	AnalysesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_failed_total",
			Help: "Total number of failed analyses by kind and error code",
		},
		[]string{"kind", "error_code"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Duration of analysis pipeline invocations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
		[]string{"kind"},
	)

	ProposalsRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposals_rendered_total",
			Help: "Total number of proposal documents rendered",
		},
	)
)
