// Package http provides the shared HTTP layer of the text analysis service:
// middleware, health and readiness probes, and request metrics.
// Route handlers live in sub-packages such as analyze.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"textstats/internal/domain/entity"
	"textstats/internal/handler/http/respond"
)

// Health check statuses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Self-test input and the counts it must produce.
const (
	selfTestText       = "health check"
	selfTestWords      = 2
	selfTestCharacters = 12
)

// HealthResponse represents the JSON response for the health check endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Analyzer is the part of the analyze use case the health check exercises.
// Count must not record traces or business metrics, so polling the probe
// leaves the analysis counters untouched.
type Analyzer interface {
	Count(text string) *entity.Analysis
}

// HealthHandler handles health check endpoint requests.
// It runs the analyzer against a fixed input and compares the counts.
type HealthHandler struct {
	Analyzer Analyzer
	Version  string
}

// ServeHTTP returns 200 when every check passes and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{
		"analyzer": h.checkAnalyzer(),
	}

	status := StatusHealthy
	code := http.StatusOK
	for _, c := range checks {
		if c.Status != StatusHealthy {
			status = StatusUnhealthy
			code = http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkAnalyzer() CheckStatus {
	if h.Analyzer == nil {
		return CheckStatus{Status: StatusUnhealthy, Message: "not configured"}
	}

	start := time.Now()
	a := h.Analyzer.Count(selfTestText)
	elapsed := time.Since(start)

	if a == nil {
		return CheckStatus{Status: StatusUnhealthy, Message: "analyzer returned no result"}
	}

	details := map[string]any{
		"word_count":      a.WordCount,
		"character_count": a.CharacterCount,
		"duration_ms":     elapsed.Milliseconds(),
	}
	if a.WordCount != selfTestWords || a.CharacterCount != selfTestCharacters {
		return CheckStatus{
			Status: StatusUnhealthy,
			Message: fmt.Sprintf("self-test mismatch: want %d words and %d characters",
				selfTestWords, selfTestCharacters),
			Details: details,
		}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// ReadyHandler handles readiness probe requests.
// It reports ready between MarkReady and MarkShuttingDown.
type ReadyHandler struct {
	ready atomic.Bool
}

// MarkReady starts reporting the service as ready.
func (h *ReadyHandler) MarkReady() {
	h.ready.Store(true)
}

// MarkShuttingDown makes the probe fail so load balancers drain the instance.
func (h *ReadyHandler) MarkShuttingDown() {
	h.ready.Store(false)
}

// Ready reports the current readiness state.
func (h *ReadyHandler) Ready() bool {
	return h.ready.Load()
}

// ServeHTTP returns 200 "ready" or 503 "shutting down".
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.Ready() {
		writeText(w, http.StatusServiceUnavailable, "shutting down")
		return
	}
	writeText(w, http.StatusOK, "ready")
}

// LiveHandler handles liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 "alive".
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "alive")
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("probe: failed to write response",
			slog.String("body", body),
			slog.Any("error", err))
	}
}
