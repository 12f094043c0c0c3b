package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Processing metrics, exposed on /metrics via the default registry.
var (
	MessagesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semker",
		Name:      "messages_submitted_total",
		Help:      "Messages accepted for asynchronous processing.",
	})

	MessagesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semker",
		Name:      "messages_completed_total",
		Help:      "Messages that reached the completed status.",
	})

	MessagesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semker",
		Name:      "messages_failed_total",
		Help:      "Messages that reached the failed status.",
	})

	ProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "semker",
		Name:      "message_processing_seconds",
		Help:      "Wall time of one background processing cycle.",
		Buckets:   prometheus.DefBuckets,
	})
)
