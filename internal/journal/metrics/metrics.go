package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for event journaling and routing.
type Metrics struct {
	EventsHandled      *prometheus.CounterVec
	EventsFailed       prometheus.Counter
	RelationsExtracted prometheus.Counter
	RoutedByUnit       *prometheus.CounterVec
	LookupFailures     *prometheus.CounterVec
	HandleDuration     prometheus.Histogram
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		EventsHandled: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sedrouting_events_handled_total",
			Help: "Case events handled, by direction.",
		}, []string{"direction"}),
		EventsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sedrouting_events_failed_total",
			Help: "Case events whose handling returned an error.",
		}),
		RelationsExtracted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sedrouting_relations_extracted_total",
			Help: "Candidate person relations produced by extraction.",
		}),
		RoutedByUnit: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sedrouting_routed_total",
			Help: "Routing decisions, by target unit code.",
		}, []string{"unit"}),
		LookupFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sedrouting_lookup_failures_total",
			Help: "Collaborator lookups treated as no answer, by collaborator.",
		}, []string{"collaborator"}),
		HandleDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sedrouting_handle_duration_seconds",
			Help:    "End-to-end latency of handling one case event.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
