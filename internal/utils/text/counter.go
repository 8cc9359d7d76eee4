// Package text provides the counting primitives behind text analysis.
// Counting is done on Unicode code points and Unicode whitespace, never on bytes.
package text

import (
	"unicode"
	"unicode/utf8"
)

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Every code point counts once, including whitespace and combining marks.
// Surrounding whitespace is not trimmed.
//
// Examples:
//
//	CountRunes("hello")          // returns 5 (ASCII text)
//	CountRunes("こんにちは")       // returns 5 (Japanese text)
//	CountRunes("Hello👋")         // returns 6 (text with emoji)
//	CountRunes("   ")            // returns 3 (whitespace is counted)
//	CountRunes("")               // returns 0 (empty string)
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// IsSpace reports whether r separates words.
// It is Go's standard whitespace class: '\t', '\n', '\v', '\f', '\r', ' ',
// U+0085 (NEL), U+00A0 (NBSP) and every other rune with the Unicode White_Space property.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// CountWords counts the maximal runs of non-whitespace runes in s.
// Leading, trailing and repeated whitespace never produce empty words,
// so the result equals len(strings.Fields(s)) without building the slice.
//
// Examples:
//
//	CountWords("Hello world")        // returns 2
//	CountWords("one  two   three")   // returns 3
//	CountWords("  padded\t\n")       // returns 1
//	CountWords("   ")                // returns 0
func CountWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
