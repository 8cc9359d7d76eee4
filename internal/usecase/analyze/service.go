// Package analyze implements the text analysis use case: counting the words
// and characters of a piece of text.
package analyze

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"textstats/internal/domain/entity"
	"textstats/internal/observability/metrics"
	"textstats/internal/observability/tracing"
)

// Service provides the text analysis use case.
// The zero value is ready to use and counts with WordCounter and CharacterCounter.
type Service struct {
	Words      Counter
	Characters Counter
}

// NewService returns a Service using the default counters.
func NewService() Service {
	return Service{Words: WordCounter{}, Characters: CharacterCounter{}}
}

// Analyze counts the words and characters of in and returns them together
// with in unchanged. It never fails: any string is a valid input.
// Each call is traced and counted in the analysis business metrics.
func (s Service) Analyze(ctx context.Context, in string) *entity.Analysis {
	_, span := tracing.Tracer().Start(ctx, "analyze.Analyze")
	defer span.End()

	a := s.Count(in)

	span.SetAttributes(
		attribute.Int("text."+s.words().Name(), a.WordCount),
		attribute.Int("text."+s.characters().Name(), a.CharacterCount),
	)
	metrics.RecordAnalysis(a)

	return a
}

// Count computes the analysis of in without tracing or metrics.
// Health self-tests use it so probes never show up as user analyses.
func (s Service) Count(in string) *entity.Analysis {
	return entity.NewAnalysis(in, s.words().Count(in), s.characters().Count(in))
}

func (s Service) words() Counter {
	if s.Words == nil {
		return WordCounter{}
	}
	return s.Words
}

func (s Service) characters() Counter {
	if s.Characters == nil {
		return CharacterCounter{}
	}
	return s.Characters
}
