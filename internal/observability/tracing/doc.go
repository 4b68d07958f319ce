// Package tracing provides OpenTelemetry tracing integration: provider
// setup, W3C trace context propagation and an HTTP server-span middleware.
//
// Example usage:
//
//	shutdown, err := tracing.Setup(tracing.Options{Enabled: true, ServiceName: "agency-articles", Exporter: "stdout"})
//	if err != nil { ... }
//	defer shutdown(context.Background())
//
//	handler := tracing.Middleware(mux)
package tracing
