// Package respond provides utilities for sending HTTP responses in JSON format.
// 5xx responses never carry internal error text; details go to the log instead.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"textstats/internal/domain/entity"
)

// Generic messages used for errors whose detail must not reach the client.
const (
	MsgInternal       = "internal server error"
	MsgBodyTooLarge   = "request body too large"
	MsgRequestTimeout = "request timeout"
)

// ErrorBody is the payload of every non-validation error response.
type ErrorBody struct {
	Error string `json:"error" example:"request body too large"`
}

// ValidationDetail describes one rejected request field.
type ValidationDetail struct {
	Field   string `json:"field" example:"text"`
	Message string `json:"message" example:"field required"`
}

// ValidationBody is the 422 payload.
type ValidationBody struct {
	Error   string             `json:"error" example:"validation failed"`
	Details []ValidationDetail `json:"details"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// SafeError writes err to the client unless code is a 5xx, in which case the
// error is logged and a generic message is returned.
// An *AppError anywhere in the chain overrides code with its own and sends its
// user message; its inner error, if any, is logged.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.String("status", http.StatusText(appErr.Code)),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.Any("error", appErr.Err))
		}
		JSON(w, appErr.Code, ErrorBody{Error: appErr.UserMsg})
		return
	}

	if code >= http.StatusInternalServerError {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.Any("error", err))
		JSON(w, code, ErrorBody{Error: MsgInternal})
		return
	}

	JSON(w, code, ErrorBody{Error: err.Error()})
}

// Validation writes the 422 payload for the given field errors.
func Validation(w http.ResponseWriter, errs ...*entity.ValidationError) {
	body := ValidationBody{
		Error:   entity.ErrValidationFailed.Error(),
		Details: make([]ValidationDetail, 0, len(errs)),
	}
	for _, e := range errs {
		if e == nil {
			continue
		}
		body.Details = append(body.Details, ValidationDetail{Field: e.Field, Message: e.Message})
	}
	JSON(w, http.StatusUnprocessableEntity, body)
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}
