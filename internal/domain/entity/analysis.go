// Package entity holds the domain types of text analysis.
package entity

// Analysis is the result of analysing one text.
// It lives only for the duration of a single request.
type Analysis struct {
	// OriginalText is the analysed text, unmodified.
	OriginalText string
	// WordCount is the number of maximal non-whitespace runs in OriginalText.
	WordCount int
	// CharacterCount is the number of Unicode code points in OriginalText.
	CharacterCount int
}

// NewAnalysis records the counts computed for text.
// Negative counts are clamped to zero.
func NewAnalysis(text string, words, characters int) *Analysis {
	return &Analysis{
		OriginalText:   text,
		WordCount:      max(words, 0),
		CharacterCount: max(characters, 0),
	}
}

// IsEmpty reports whether the analysed text contained no words.
func (a *Analysis) IsEmpty() bool {
	return a.WordCount == 0
}
