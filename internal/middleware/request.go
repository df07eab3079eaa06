package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/irfndi/oddsframe/internal/logging"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key of the request ID.
	RequestIDKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or assigns a new UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		AddSpanAttribute(c, "http.request_id", id)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// RequestLogger logs every completed request, then each error a handler
// attached to the context.
func RequestLogger(logger *logging.StandardLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		id := GetRequestID(c)
		logger.LogAPIRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Milliseconds(), id)
		for _, e := range c.Errors {
			logger.WithRequestID(id).WithError(e.Err).Warn("Request failed")
		}
	}
}

// MaxBodySize caps request bodies at limit bytes. A non-positive limit disables the cap.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
