package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func resetGlobals(t *testing.T) {
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
		tracer = otel.Tracer(InstrumentationName)
	})
}

func TestSetup_Disabled(t *testing.T) {
	resetGlobals(t)

	shutdown, err := Setup(Options{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
}

func TestSetup_StdoutExporter(t *testing.T) {
	resetGlobals(t)
	var buf bytes.Buffer

	shutdown, err := Setup(Options{
		Enabled:     true,
		ServiceName: "agency-articles",
		Version:     "test",
		Exporter:    "stdout",
		Writer:      &buf,
	})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "exported-span")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "exported-span")
	assert.Contains(t, buf.String(), "agency-articles")
}

func TestSetup_UnknownExporter(t *testing.T) {
	resetGlobals(t)

	_, err := Setup(Options{Enabled: true, Exporter: "zipkin"})
	assert.Error(t, err)
}
