package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/oddsframe/internal/logging"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses caller id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, id, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logging.Wrap(logger)))
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	out := buf.String()
	assert.Contains(t, out, `"path":"/missing"`)
	assert.Contains(t, out, w.Header().Get(RequestIDHeader))
	assert.Contains(t, out, `"level":"warning"`)
}

func TestRequestLogger_HandlerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logging.Wrap(logger)))
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("season filter: bad year"))
		c.Status(http.StatusBadRequest)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	id := uuid.NewString()
	req.Header.Set(RequestIDHeader, id)
	router.ServeHTTP(w, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "Request failed", entry["msg"])
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, "season filter: bad year", entry["error"])
}

func TestMaxBodySize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MaxBodySize(8))
	router.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("short")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("much longer than eight")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
