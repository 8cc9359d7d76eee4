package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// installRecorder swaps in an in-memory exporter for the duration of a test.
func installRecorder(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter, tp
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter, tp := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "POST /analyze", span.Name)

	attrs := attrMap(span.Attributes)
	assert.Equal(t, "POST", attrs["http.method"].AsString())
	assert.Equal(t, "/analyze", attrs["http.path"].AsString())
	assert.Equal(t, "/analyze", attrs["http.route"].AsString())
	assert.Equal(t, int64(200), attrs["http.status_code"].AsInt64())
}

func TestMiddleware_AddsTraceIDToResponse(t *testing.T) {
	installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	traceID := rr.Header().Get(TraceIDHeader)
	assert.Len(t, traceID, 32)
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter, tp := installRecorder(t)

	var inner string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, span := Tracer().Start(r.Context(), "inner")
		inner = span.SpanContext().TraceID().String()
		span.End()
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NoError(t, tp.ForceFlush(context.Background()))

	expected := "4bf92f3577b34da6a3ce929d0e0e4736"
	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	for _, s := range spans {
		assert.Equal(t, expected, s.SpanContext.TraceID().String())
	}
	assert.Equal(t, expected, inner)
	assert.Equal(t, expected, rr.Header().Get(TraceIDHeader))
}

func TestMiddleware_MarksErrorSpansFor5xx(t *testing.T) {
	exporter, tp := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NoError(t, tp.ForceFlush(context.Background()))
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	attrs := attrMap(spans[0].Attributes)
	assert.True(t, attrs["error"].AsBool())
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestMiddleware_NoErrorAttributeFor4xx(t *testing.T) {
	exporter, tp := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NoError(t, tp.ForceFlush(context.Background()))
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	_, hasError := attrMap(spans[0].Attributes)["error"]
	assert.False(t, hasError)
	assert.NotEqual(t, codes.Error, spans[0].Status.Code)
}

func TestMiddleware_UnknownPathUsesCollapsedRoute(t *testing.T) {
	exporter, tp := installRecorder(t)

	handler := Middleware(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/random/123/path", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NoError(t, tp.ForceFlush(context.Background()))
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /unmatched", spans[0].Name)
}
