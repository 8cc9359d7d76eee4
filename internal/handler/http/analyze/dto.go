// Package analyze provides the HTTP handler for the text analysis endpoint.
package analyze

import "textstats/internal/domain/entity"

// Request is the body of POST /analyze.
// Text is a pointer so that a missing or null field can be told apart from "".
type Request struct {
	Text *string `json:"text" example:"Hello world"`
}

// Response is the body of a successful analysis.
type Response struct {
	OriginalText   string `json:"original_text" example:"Hello world"`
	WordCount      int    `json:"word_count" example:"2"`
	CharacterCount int    `json:"character_count" example:"11"`
}

func toResponse(a *entity.Analysis) Response {
	return Response{
		OriginalText:   a.OriginalText,
		WordCount:      a.WordCount,
		CharacterCount: a.CharacterCount,
	}
}
