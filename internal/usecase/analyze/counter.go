package analyze

import "textstats/internal/utils/text"

// Counter is one counting strategy applied to the analysed text.
type Counter interface {
	// Count returns the number of units (words or characters) in text.
	Count(text string) int

	// Name returns a short name for the unit, used in span attributes and logs.
	Name() string
}

// WordCounter counts maximal runs of non-whitespace characters.
type WordCounter struct{}

// Count implements Counter.
func (WordCounter) Count(s string) int { return text.CountWords(s) }

// Name implements Counter.
func (WordCounter) Name() string { return "words" }

// CharacterCounter counts Unicode code points, whitespace included.
type CharacterCounter struct{}

// Count implements Counter.
func (CharacterCounter) Count(s string) int { return text.CountRunes(s) }

// Name implements Counter.
func (CharacterCounter) Name() string { return "characters" }
