// Package telemetry configures OpenTelemetry tracing for the query service.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	ServiceName    = "github.com/irfndi/oddsframe"
	ServiceVersion = "1.0.0"
)

// Exporter names.
const (
	ExporterOTLP   = "otlp"
	ExporterStdout = "stdout"
)

// TelemetryConfig holds configuration for telemetry
type TelemetryConfig struct {
	Enabled        bool
	Exporter       string
	OTLPEndpoint   string
	ServiceName    string
	ServiceVersion string
	Environment    string
	SampleRate     float64
	BatchTimeout   time.Duration
	MaxExportBatch int
	MaxQueueSize   int
	// Writer receives spans from the stdout exporter; nil means os.Stdout.
	Writer io.Writer
}

// DefaultConfig returns default telemetry configuration
func DefaultConfig() *TelemetryConfig {
	return &TelemetryConfig{
		Enabled:        false,
		Exporter:       ExporterOTLP,
		OTLPEndpoint:   "http://localhost:4318",
		ServiceName:    ServiceName,
		ServiceVersion: ServiceVersion,
		Environment:    "development",
		SampleRate:     1.0,
		BatchTimeout:   5 * time.Second,
		MaxExportBatch: 512,
		MaxQueueSize:   2048,
	}
}

// Provider owns the tracer provider installed by InitTelemetry.
type Provider struct {
	Shutdown func(context.Context) error
	logger   *logrus.Logger
}

// InitTelemetry installs a global tracer provider and propagator. When
// telemetry is disabled the returned provider is a no-op.
func InitTelemetry(ctx context.Context, config *TelemetryConfig, logger *logrus.Logger) (*Provider, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if config == nil || !config.Enabled {
		return &Provider{Shutdown: func(context.Context) error { return nil }, logger: logger}, nil
	}

	exporter, err := newExporter(ctx, config)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(config.ServiceName),
		semconv.ServiceVersion(config.ServiceVersion),
		attribute.String("deployment.environment", config.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(config.BatchTimeout),
			sdktrace.WithMaxExportBatchSize(config.MaxExportBatch),
			sdktrace.WithMaxQueueSize(config.MaxQueueSize),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(config.SampleRate))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.WithFields(logrus.Fields{
		"exporter": config.Exporter,
		"service":  config.ServiceName,
	}).Info("Telemetry initialized")

	return &Provider{Shutdown: tp.Shutdown, logger: logger}, nil
}

func newExporter(ctx context.Context, config *TelemetryConfig) (sdktrace.SpanExporter, error) {
	switch config.Exporter {
	case ExporterStdout:
		w := config.Writer
		if w == nil {
			w = os.Stdout
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		return exp, nil
	case ExporterOTLP, "":
		hostport, path, insecure, _, err := normalizeOTLPEndpoint(config.OTLPEndpoint)
		if err != nil {
			return nil, fmt.Errorf("invalid OTLPEndpoint: %w", err)
		}
		opts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(hostport),
			otlptracehttp.WithURLPath(path),
		}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		return exp, nil
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", config.Exporter)
	}
}

// normalizeOTLPEndpoint splits a collector base URL into the exporter's
// host:port and traces path.
func normalizeOTLPEndpoint(endpoint string) (hostport, urlPath string, insecure bool, resolved string, err error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", "", false, "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return "", "", false, "", fmt.Errorf("endpoint %q must be an http(s) URL", endpoint)
	}
	path := strings.TrimSuffix(u.Path, "/")
	if !strings.HasSuffix(path, "/v1/traces") {
		path += "/v1/traces"
	}
	insecure = u.Scheme == "http"
	return u.Host, path, insecure, u.Scheme + "://" + u.Host + path, nil
}

// GetTracer returns a named tracer from the global provider.
func GetTracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

func GetHTTPTracer() trace.Tracer     { return GetTracer(ServiceName + "/http") }
func GetPipelineTracer() trace.Tracer { return GetTracer(ServiceName + "/pipeline") }
func GetDatabaseTracer() trace.Tracer { return GetTracer(ServiceName + "/database") }
func GetCacheTracer() trace.Tracer    { return GetTracer(ServiceName + "/cache") }

// StartSpan starts a span on tracer.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordError marks span as failed with err. A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
