package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans created by this service.
const InstrumentationName = "textstats"

// Tracer returns the tracer for creating spans.
// It resolves through the global provider on every call so that a provider
// installed after package init is honoured.
//
// Example usage:
//
//	ctx, span := tracing.Tracer().Start(ctx, "operation-name")
//	defer span.End()
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// ProviderConfig configures the SDK tracer provider.
type ProviderConfig struct {
	ServiceName    string
	ServiceVersion string
	// SampleRatio is the fraction of root spans sampled, in [0, 1].
	SampleRatio float64
	// Exporter receives finished spans. Nil keeps spans in-process only,
	// which still yields real trace IDs for log correlation.
	Exporter sdktrace.SpanExporter
}

// InitProvider installs an SDK tracer provider and the W3C trace-context
// propagator as OpenTelemetry globals. Callers own the returned provider and
// must Shutdown it to flush pending spans.
func InitProvider(cfg ProviderConfig) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}
	if cfg.Exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(cfg.Exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp
}
