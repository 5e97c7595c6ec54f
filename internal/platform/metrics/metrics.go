package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	AccusationsCreated   prometheus.Counter
	RatificationsCreated prometheus.Counter
	RatificationsDeleted prometheus.Counter
	RatificationConflict prometheus.Counter
	EmptyConsequencePool prometheus.Counter
	RequestDuration      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		AccusationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ferry_accusations_created_total",
			Help: "Total number of accusations created",
		}),
		RatificationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ferry_ratifications_created_total",
			Help: "Total number of ratifications created",
		}),
		RatificationsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ferry_ratifications_deleted_total",
			Help: "Total number of ratifications deleted",
		}),
		RatificationConflict: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ferry_ratification_conflicts_total",
			Help: "Ratification attempts rejected because the accusation was already ratified",
		}),
		EmptyConsequencePool: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ferry_empty_consequence_pool_total",
			Help: "Ratification attempts that failed because no consequences were enabled",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ferry_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
