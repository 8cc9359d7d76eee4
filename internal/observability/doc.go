// Package observability groups the service's structured logging, Prometheus
// metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: slog logger construction and context helpers
//   - metrics: business metrics recorded by the analyzer
//   - tracing: tracer provider setup and HTTP tracing middleware
package observability
