package likes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	likesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "likes_created_total",
			Help: "Total number of likes created",
		},
		[]string{"kind"},
	)

	matchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "likes_matches_created_total",
			Help: "Total number of matches created from reciprocal likes",
		},
	)
)

func RecordLike(isSuperlike bool) {
	kind := "like"
	if isSuperlike {
		kind = "superlike"
	}
	likesTotal.WithLabelValues(kind).Inc()
}

func RecordMatch() {
	matchesTotal.Inc()
}
