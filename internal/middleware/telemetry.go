// Package middleware provides HTTP middleware for tracing, request IDs and
// request logging.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/irfndi/oddsframe/internal/telemetry"
)

// TelemetryMiddleware traces every request except health checks, which are
// traced by HealthCheckTelemetryMiddleware.
func TelemetryMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return !isHealthPath(r.URL.Path)
		}),
	)
}

func isHealthPath(path string) bool {
	return path == "/health" || path == "/ready" || path == "/live"
}

// RecordError records an error on the current span
func RecordError(c *gin.Context, err error, description string) {
	span := trace.SpanFromContext(c.Request.Context())
	if span.IsRecording() {
		span.RecordError(err)
		span.SetStatus(codes.Error, description)
	}
}

// AddSpanAttribute adds an attribute to the current span
func AddSpanAttribute(c *gin.Context, key string, value interface{}) {
	span := trace.SpanFromContext(c.Request.Context())
	if span.IsRecording() {
		switch v := value.(type) {
		case string:
			span.SetAttributes(attribute.String(key, v))
		case int:
			span.SetAttributes(attribute.Int(key, v))
		case int64:
			span.SetAttributes(attribute.Int64(key, v))
		case float64:
			span.SetAttributes(attribute.Float64(key, v))
		case bool:
			span.SetAttributes(attribute.Bool(key, v))
		default:
			span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", value)))
		}
	}
}

// HealthCheckTelemetryMiddleware adds telemetry specifically for health check endpoints
func HealthCheckTelemetryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := telemetry.GetHTTPTracer().Start(
			c.Request.Context(),
			fmt.Sprintf("Health %s", c.Request.URL.Path),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("span.type", "health_check"),
		)

		c.Request = c.Request.WithContext(ctx)
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		span.SetAttributes(
			attribute.Int("http.status_code", statusCode),
			attribute.Int64("http.response.time_ms", time.Since(start).Milliseconds()),
			attribute.String("health.status", getHealthStatusFromCode(statusCode)),
		)

		if statusCode >= 400 {
			span.SetStatus(codes.Error, fmt.Sprintf("Health check failed: HTTP %d", statusCode))
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("Health check passed: HTTP %d", statusCode))
		}
	}
}

// getHealthStatusFromCode returns a human-readable status based on HTTP code
func getHealthStatusFromCode(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "healthy"
	case code >= 400 && code < 500:
		return "client_error"
	case code >= 500:
		return "server_error"
	default:
		return "unknown"
	}
}
