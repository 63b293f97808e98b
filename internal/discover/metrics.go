package discover

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "discover_feed_requests_total",
			Help: "Total number of discovery feed requests",
		},
	)

	candidatePoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discover_candidate_pool_size",
			Help:    "Eligible candidate pool size per feed request",
			Buckets: prometheus.LinearBuckets(0, 25, 9),
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discover_compatibility_scores",
			Help:    "Distribution of computed compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

func RecordFeedRequest(poolSize int) {
	feedRequestsTotal.Inc()
	candidatePoolSize.Observe(float64(poolSize))
}

func RecordCompatibilityScore(score int) {
	compatibilityScores.Observe(float64(score))
}
