// Package telemetry installs the global OpenTelemetry providers. Traces and
// metrics are exported as JSON into rotated files under one directory.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	serviceName    = "guestchat-gateway"
	serviceVersion = "1.0.0"

	traceFileName  = "guestchat_traces.log"
	metricFileName = "guestchat_metrics.log"
)

// Options controls where telemetry goes.
type Options struct {
	Dir            string
	MetricInterval time.Duration
}

// RotatingFile returns a lumberjack writer with the rotation policy shared by
// logs and telemetry.
func RotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// Setup installs a tracer and meter provider and returns the function that
// flushes and closes them.
func Setup(ctx context.Context, opts Options) (func(), error) {
	if opts.Dir == "" {
		opts.Dir = "logs"
	}
	if opts.MetricInterval <= 0 {
		opts.MetricInterval = 10 * time.Second
	}
	if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create telemetry directory: %w", err)
	}

	traceFile := RotatingFile(filepath.Join(opts.Dir, traceFileName))
	metricsFile := RotatingFile(filepath.Join(opts.Dir, metricFileName))

	shutdown, err := setupProviders(ctx, traceFile, metricsFile, opts.MetricInterval)
	if err != nil {
		_ = traceFile.Close()
		_ = metricsFile.Close()
		return nil, err
	}

	return func() {
		shutdown()
		if err := traceFile.Close(); err != nil {
			slog.Error("Failed to close trace file", "error", err)
		}
		if err := metricsFile.Close(); err != nil {
			slog.Error("Failed to close metrics file", "error", err)
		}
	}, nil
}

func setupProviders(ctx context.Context, traceOut, metricOut io.Writer, interval time.Duration) (func(), error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(traceOut))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(metricOut))
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(interval))),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("Failed to shut down tracer provider", "error", err)
		}
		if err := mp.Shutdown(ctx); err != nil {
			slog.Error("Failed to shut down meter provider", "error", err)
		}
	}, nil
}
