// Package tracing provides OpenTelemetry tracing integration.
//
// InitProvider installs an SDK tracer provider with a parent-based ratio
// sampler and the W3C trace-context propagator. Middleware starts a server
// span per HTTP request and echoes the trace ID in the X-Trace-Id header so
// clients can correlate responses with server logs.
//
// Example usage:
//
//	import "textstats/internal/observability/tracing"
//
//	func main() {
//	    tp := tracing.InitProvider(tracing.ProviderConfig{
//	        ServiceName: "textstats",
//	        SampleRatio: 1,
//	    })
//	    defer tp.Shutdown(context.Background())
//	}
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.Tracer().Start(ctx, "process-request")
//	    defer span.End()
//	}
package tracing
