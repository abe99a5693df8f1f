package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName identifies the toolkit's spans.
const TracerName = "foundry-agent-toolkit"

// Config selects the span exporter.
type Config struct {
	OTLPEndpoint     string
	Debug            bool
	ContentRecording bool
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Setup installs the global tracer provider. With no OTLP endpoint and
// debug off, tracing is a no-op and shutdown does nothing.
func Setup(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	var exporter sdktrace.SpanExporter
	var err error

	switch {
	case cfg.OTLPEndpoint != "":
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
	case cfg.Debug:
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
	default:
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// Tracer returns the toolkit tracer from the installed provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
