package analyze

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"textstats/internal/domain/entity"
	"textstats/internal/handler/http/respond"
	"textstats/internal/observability/logging"
	"textstats/internal/observability/metrics"
	anaUC "textstats/internal/usecase/analyze"
)

// Handler serves POST /analyze.
type Handler struct{ Svc anaUC.Service }

// ServeHTTP analyzes the text in the request body.
// @Summary      Analyze text
// @Description  Counts the words and characters of the submitted text.
// @Description  Words are maximal runs of non-whitespace characters; characters are Unicode code points.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request body Request true "Text to analyze"
// @Success      200 {object} Response
// @Failure      413 {object} respond.ErrorBody "Request body too large"
// @Failure      422 {object} respond.ValidationBody "Missing or non-string text, or malformed JSON"
// @Failure      500 {object} respond.ErrorBody "Internal server error"
// @Router       /analyze [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	text, err := decodeText(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			respond.SafeError(w, http.StatusRequestEntityTooLarge,
				respond.NewAppError(http.StatusRequestEntityTooLarge, respond.MsgBodyTooLarge, nil))
		case errors.Is(err, entity.ErrValidationFailed):
			var vErr *entity.ValidationError
			errors.As(err, &vErr)
			metrics.RecordValidationFailure(vErr.Field)
			logging.FromContext(r.Context()).Debug("analyze: request rejected",
				slog.String("field", vErr.Field),
				slog.String("reason", vErr.Message))
			respond.Validation(w, vErr)
		default:
			respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("read analyze request: %w", err))
		}
		return
	}

	analysis := h.Svc.Analyze(r.Context(), text)
	respond.JSON(w, http.StatusOK, toResponse(analysis))
}

// decodeText reads the whole body and extracts the text field.
// Keys match exactly, so "Text" does not satisfy "text", and unknown keys are ignored.
// Bodies that are not valid UTF-8 are rejected rather than repaired with U+FFFD.
// Schema problems come back as *entity.ValidationError; read failures
// (including *http.MaxBytesError) are returned unchanged.
func decodeText(body io.Reader) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", entity.NewValidationError("body", entity.MsgInvalidJSON)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", entity.NewValidationError("body", entity.MsgInvalidJSON)
	}

	var req Request
	if v, ok := fields["text"]; ok {
		if err := json.Unmarshal(v, &req.Text); err != nil {
			return "", entity.NewValidationError("text", entity.MsgMustBeString)
		}
	}

	if req.Text == nil {
		return "", entity.NewValidationError("text", entity.MsgFieldRequired)
	}
	return *req.Text, nil
}
