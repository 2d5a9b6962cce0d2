// Package tracing initializes OpenTelemetry tracing with an OTLP/gRPC
// exporter and exposes small helpers for span creation.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var tp *sdktrace.TracerProvider

// Init initializes tracing against an OTLP collector endpoint
// (e.g. "localhost:4317"). An empty endpoint installs a no-op provider.
func Init(serviceName, endpoint string) error {
	if endpoint == "" {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return nil
	}

	ctx := context.Background()

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return err
	}

	tp = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return nil
}

// Shutdown flushes and shuts down the tracer provider.
func Shutdown(ctx context.Context) error {
	if tp != nil {
		return tp.Shutdown(ctx)
	}
	return nil
}

// Span aliases the OpenTelemetry span interface so callers outside the
// tracing package do not need the otel import just to pass spans around.
type Span = trace.Span

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// SpanFromContext returns the span recorded in ctx.
func SpanFromContext(ctx context.Context) Span {
	return trace.SpanFromContext(ctx)
}

// StringAttr is a convenience wrapper for creating a string attribute.
func StringAttr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// IntAttr is a convenience wrapper for creating an int attribute.
func IntAttr(key string, value int) attribute.KeyValue {
	return attribute.Int(key, value)
}

// FloatAttr is a convenience wrapper for creating a float attribute.
func FloatAttr(key string, value float64) attribute.KeyValue {
	return attribute.Float64(key, value)
}

// BoolAttr is a convenience wrapper for creating a bool attribute.
func BoolAttr(key string, value bool) attribute.KeyValue {
	return attribute.Bool(key, value)
}
