package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"textstats/internal/domain/entity"
)

// Result labels for AnalysesTotal.
const (
	ResultWords = "words"
	ResultEmpty = "empty"
)

// Business metrics track analyzer activity.
var (
	// AnalysesTotal counts completed analyses by result (words or empty).
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_analyses_total",
			Help: "Total number of completed text analyses",
		},
		[]string{"result"},
	)

	// AnalyzedWords observes the word count of each analysis.
	AnalyzedWords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text_analysis_words",
			Help:    "Word count per analyzed text",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	// AnalyzedCharacters observes the character count of each analysis.
	AnalyzedCharacters = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text_analysis_characters",
			Help:    "Character count per analyzed text",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
	)

	// ValidationFailuresTotal counts rejected analysis requests by offending field.
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_analysis_validation_failures_total",
			Help: "Total number of analysis requests rejected by schema validation",
		},
		[]string{"field"},
	)
)

// RecordAnalysis records one completed analysis.
func RecordAnalysis(a *entity.Analysis) {
	result := ResultWords
	if a.IsEmpty() {
		result = ResultEmpty
	}
	AnalysesTotal.WithLabelValues(result).Inc()
	AnalyzedWords.Observe(float64(a.WordCount))
	AnalyzedCharacters.Observe(float64(a.CharacterCount))
}

// RecordValidationFailure records a request rejected for field.
func RecordValidationFailure(field string) {
	ValidationFailuresTotal.WithLabelValues(field).Inc()
}
