// Package tracing configures the OpenTelemetry tracer provider for the HTTP server.
package tracing

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"studio-admin-backend/internal/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Options selects the exporter and sampling of the tracer provider
type Options struct {
	ServiceName  string
	Environment  string
	OTLPEndpoint string
	SampleRatio  float64
	// Writer receives spans from the stdout exporter; nil means os.Stdout
	Writer io.Writer
}

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(context.Context) error

// Setup installs a global tracer provider. Spans go to the OTLP endpoint when one is
// configured and to the stdout exporter otherwise.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	serviceName := strings.TrimSpace(opts.ServiceName)
	if serviceName == "" {
		serviceName = "studio-admin-backend"
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", serviceName),
		attribute.String("deployment.environment", opts.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to build tracing resource: %w", err)
	}

	exporter, err := newExporter(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.New().WithFields(map[string]interface{}{
		"service":  serviceName,
		"endpoint": opts.OTLPEndpoint,
	}).Info("tracing initialized")
	return tp.Shutdown, nil
}

// Tracer returns a named tracer from the global provider
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

func newExporter(ctx context.Context, opts Options) (sdktrace.SpanExporter, error) {
	if endpoint := strings.TrimSpace(opts.OTLPEndpoint); endpoint != "" {
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	stdoutOpts := []stdouttrace.Option{}
	if opts.Writer != nil {
		stdoutOpts = append(stdoutOpts, stdouttrace.WithWriter(opts.Writer))
	}
	return stdouttrace.New(stdoutOpts...)
}
