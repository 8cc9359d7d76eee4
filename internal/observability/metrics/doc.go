// Package metrics provides the Prometheus business metrics of text analysis.
//
// HTTP request metrics live next to the HTTP middleware; this package only
// covers what the analyzer itself observes:
//   - analyses performed, split by whether the text contained any words
//   - distribution of word and character counts per analysis
//   - validation failures by field
//
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint.
//
// Example usage:
//
//	import "textstats/internal/observability/metrics"
//
//	func analyze(s string) {
//	    a := entity.NewAnalysis(s, text.CountWords(s), text.CountRunes(s))
//	    metrics.RecordAnalysis(a)
//	}
package metrics
