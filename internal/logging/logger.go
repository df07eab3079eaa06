package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// StandardLogger wraps a logrus logger with the field conventions used across
// the service: service, component, operation and request_id.
type StandardLogger struct {
	logger *logrus.Logger
}

// NewLogger creates a logrus logger writing to out. Production output is
// JSON; development output is text.
func NewLogger(logLevel string, environment string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(ParseLogrusLevel(logLevel))
	if strings.EqualFold(environment, "development") || strings.EqualFold(environment, "test") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// Wrap returns a StandardLogger around an existing logrus logger.
func Wrap(logger *logrus.Logger) *StandardLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &StandardLogger{logger: logger}
}

// WithService creates a logger with service context
func (l *StandardLogger) WithService(serviceName string) *logrus.Entry {
	return l.logger.WithField("service", serviceName)
}

// WithComponent creates a logger with component context
func (l *StandardLogger) WithComponent(componentName string) *logrus.Entry {
	return l.logger.WithField("component", componentName)
}

// WithOperation creates a logger with operation context
func (l *StandardLogger) WithOperation(operationName string) *logrus.Entry {
	return l.logger.WithField("operation", operationName)
}

// WithRequestID creates a logger with request ID context
func (l *StandardLogger) WithRequestID(requestID string) *logrus.Entry {
	return l.logger.WithField("request_id", requestID)
}

// WithDataset creates a logger with dataset context
func (l *StandardLogger) WithDataset(name string) *logrus.Entry {
	return l.logger.WithField("dataset", name)
}

// WithError creates a logger with error context
func (l *StandardLogger) WithError(err error) *logrus.Entry {
	return l.logger.WithError(err)
}

// LogStartup logs application startup information
func (l *StandardLogger) LogStartup(serviceName string, version string, port int) {
	l.logger.WithFields(logrus.Fields{
		"service": serviceName,
		"version": version,
		"port":    port,
		"event":   "startup",
	}).Info("Service starting")
}

// LogShutdown logs application shutdown information
func (l *StandardLogger) LogShutdown(serviceName string, reason string) {
	l.logger.WithFields(logrus.Fields{
		"service": serviceName,
		"reason":  reason,
		"event":   "shutdown",
	}).Info("Service shutting down")
}

// LogCacheOperation logs cache operations in a standardized format
func (l *StandardLogger) LogCacheOperation(operation string, key string, hit bool, durationMs int64) {
	l.logger.WithFields(logrus.Fields{
		"operation":   operation,
		"cache_key":   key,
		"cache_hit":   hit,
		"duration_ms": durationMs,
		"event":       "cache_operation",
	}).Debug("Cache operation")
}

// LogDatabaseOperation logs database operations in a standardized format
func (l *StandardLogger) LogDatabaseOperation(operation string, table string, durationMs int64, rows int64) {
	l.logger.WithFields(logrus.Fields{
		"operation":   operation,
		"table":       table,
		"duration_ms": durationMs,
		"rows":        rows,
		"event":       "database_operation",
	}).Info("Database operation")
}

// LogAPIRequest logs API requests in a standardized format
func (l *StandardLogger) LogAPIRequest(method string, path string, statusCode int, durationMs int64, requestID string) {
	entry := l.logger.WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"status_code": statusCode,
		"duration_ms": durationMs,
		"request_id":  requestID,
		"event":       "api_request",
	})
	switch {
	case statusCode >= 500:
		entry.Error("API request")
	case statusCode >= 400:
		entry.Warn("API request")
	default:
		entry.Info("API request")
	}
}

// Logger returns the underlying *logrus.Logger
func (l *StandardLogger) Logger() *logrus.Logger {
	return l.logger
}

// ParseLogrusLevel converts string level to logrus.Level
func ParseLogrusLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
