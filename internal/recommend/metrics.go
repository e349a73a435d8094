package recommend

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twogether_recommendations_total",
			Help: "Total number of recommendation lists served",
		},
		[]string{"domain"},
	)

	matchScores = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "twogether_match_score",
			Help:    "Distribution of match scores handed out",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"domain"},
	)

	scoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "twogether_scoring_duration_seconds",
			Help:    "Time spent scoring and ranking a catalog",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"domain"},
	)

	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "twogether_mutations_total",
			Help: "Bookings, completions and status changes by outcome",
		},
		[]string{"operation", "result"},
	)
)

// RecordRecommendations records one ranked list for domain
func RecordRecommendations(domain string, started time.Time, scores []int) {
	recommendationsTotal.WithLabelValues(domain).Inc()
	scoringDuration.WithLabelValues(domain).Observe(time.Since(started).Seconds())
	histogram := matchScores.WithLabelValues(domain)
	for _, score := range scores {
		histogram.Observe(float64(score))
	}
}

// RecordMutation records the outcome of a mutating operation
func RecordMutation(operation string, ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	mutationsTotal.WithLabelValues(operation, result).Inc()
}
