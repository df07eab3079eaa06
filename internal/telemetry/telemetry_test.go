package telemetry

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNormalizeOTLPEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hostport string
		urlPath  string
		insecure bool
		resolved string
		wantErr  bool
	}{
		{"default localhost", "http://localhost:4318", "localhost:4318", "/v1/traces", true, "http://localhost:4318/v1/traces", false},
		{"trailing slash base", "http://collector:4318/", "collector:4318", "/v1/traces", true, "http://collector:4318/v1/traces", false},
		{"already traces path", "http://collector:4318/v1/traces", "collector:4318", "/v1/traces", true, "http://collector:4318/v1/traces", false},
		{"custom base path", "https://otlp.example.com:4318/otlp", "otlp.example.com:4318", "/otlp/v1/traces", false, "https://otlp.example.com:4318/otlp/v1/traces", false},
		{"invalid no scheme", "collector:4318", "", "", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hp, path, insecure, resolved, err := normalizeOTLPEndpoint(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hostport, hp)
			assert.Equal(t, tt.urlPath, path)
			assert.Equal(t, tt.insecure, insecure)
			assert.Equal(t, tt.resolved, resolved)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.False(t, config.Enabled)
	assert.Equal(t, ExporterOTLP, config.Exporter)
	assert.Equal(t, "http://localhost:4318", config.OTLPEndpoint)
	assert.Equal(t, ServiceName, config.ServiceName)
	assert.Equal(t, 1.0, config.SampleRate)
	assert.Equal(t, 5*time.Second, config.BatchTimeout)
	assert.Equal(t, 512, config.MaxExportBatch)
	assert.Equal(t, 2048, config.MaxQueueSize)
}

func TestTracerGetters(t *testing.T) {
	assert.NotNil(t, GetTracer("test-tracer"))
	assert.NotNil(t, GetHTTPTracer())
	assert.NotNil(t, GetPipelineTracer())
	assert.NotNil(t, GetDatabaseTracer())
	assert.NotNil(t, GetCacheTracer())
}

func TestStartSpan_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := StartSpan(context.Background(), tp.Tracer("test"), "pipeline.step",
		attribute.String("step.kind", "status"))
	RecordError(span, errors.New("invalid status"))
	RecordError(span, nil)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "pipeline.step", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("step.kind", "status"))
	assert.Len(t, spans[0].Events(), 1)
}

func TestInitTelemetry_Disabled(t *testing.T) {
	provider, err := InitTelemetry(context.Background(), &TelemetryConfig{Enabled: false}, nil)
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.logger)
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestInitTelemetry_Stdout(t *testing.T) {
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	var buf bytes.Buffer
	config := DefaultConfig()
	config.Enabled = true
	config.Exporter = ExporterStdout
	config.Writer = &buf

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	provider, err := InitTelemetry(context.Background(), config, logger)
	require.NoError(t, err)

	_, span := GetPipelineTracer().Start(context.Background(), "pipeline.run")
	span.End()
	require.NoError(t, provider.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), "pipeline.run")
}

func TestInitTelemetry_InvalidEndpoint(t *testing.T) {
	config := &TelemetryConfig{
		Enabled:      true,
		Exporter:     ExporterOTLP,
		OTLPEndpoint: "invalid-url://[invalid",
	}

	provider, err := InitTelemetry(context.Background(), config, nil)
	assert.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "invalid OTLPEndpoint")
}

func TestInitTelemetry_UnknownExporter(t *testing.T) {
	config := DefaultConfig()
	config.Enabled = true
	config.Exporter = "zipkin"

	_, err := InitTelemetry(context.Background(), config, nil)
	assert.Error(t, err)
}
