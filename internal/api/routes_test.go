package api

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/oddsframe/internal/api/handlers"
	"github.com/irfndi/oddsframe/internal/cache"
	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/database"
	"github.com/irfndi/oddsframe/internal/lookup"
	"github.com/irfndi/oddsframe/internal/middleware"
	"github.com/irfndi/oddsframe/internal/services"
	"github.com/irfndi/oddsframe/internal/testutil"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestRouter(t *testing.T, resultCache cache.ResultCache, redis *database.RedisClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	queries := services.NewQueryService("matches", testutil.MatchDataset(t), resultCache, quietLogger())
	return NewRouter(RouterConfig{Logger: quietLogger(), MaxBodyBytes: 1 << 16}, Dependencies{
		Redis:   redis,
		Queries: queries,
		Goals:   services.NewGoalService(queries),
	})
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := do(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.HealthResponse
	decode(t, w, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "disabled", resp.Services["database"])
	assert.Equal(t, "disabled", resp.Services["redis"])
	assert.Equal(t, "matches", resp.Dataset.Name)
	assert.Equal(t, 5, resp.Dataset.Rows)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestHealthCheck_RedisDown(t *testing.T) {
	mr, client := testutil.NewTestRedis(t)
	router := newTestRouter(t, nil, &database.RedisClient{Client: client})

	w := do(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	mr.Close()
	w = do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp handlers.HealthResponse
	decode(t, w, &resp)
	assert.Equal(t, "degraded", resp.Status)
	assert.Contains(t, resp.Services["redis"], "unhealthy")
}

func TestLookupRoutes(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	t.Run("countries", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/lookup/countries", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data  []string `json:"data"`
			Total int      `json:"total"`
		}
		decode(t, w, &resp)
		assert.Equal(t, lookup.Countries(), resp.Data)
		assert.Equal(t, len(resp.Data), resp.Total)
	})

	t.Run("bookmakers", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/lookup/bookmakers", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "bet365")
	})

	t.Run("markets", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/lookup/markets", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp handlers.MarketsResponse
		decode(t, w, &resp)
		assert.Equal(t, lookup.Markets(), resp.Markets)
		assert.Equal(t, []string{"open", "closed"}, resp.OddsTimes)
	})

	t.Run("statuses", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/lookup/statuses", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []handlers.StatusInfo `json:"data"`
		}
		decode(t, w, &resp)
		require.Len(t, resp.Data, 6)
		assert.Equal(t, handlers.StatusInfo{Code: 100, Description: "Ended"}, resp.Data[3])
	})
}

func TestQuery_JSON(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	body := `{"steps":[
		{"type":"filter","kind":"status","params":{"status_list":[100]}},
		{"type":"slice","kind":"info"}
	]}`
	w := do(router, http.MethodPost, "/api/v1/query", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp handlers.QueryResponse
	decode(t, w, &resp)
	assert.Equal(t, 2, resp.Rows)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Serie A", resp.Data[0]["league_sofascore"])
	assert.Equal(t, "Liga Profesional", resp.Data[1]["league_sofascore"])
	assert.NotContains(t, resp.Columns, "bet365_1x2_home_open")
	assert.Equal(t, resp.Fingerprint, w.Header().Get("X-Query-Fingerprint"))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
}

func TestQuery_CSV(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	body := `{"steps":[{"type":"filter","kind":"country","params":{"countries":"Chile"}}]}`
	w := do(router, http.MethodPost, "/api/v1/query?format=csv", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Equal(t, "1", w.Header().Get("X-Result-Rows"))

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, testutil.MatchColumns(), records[0])
}

func TestQuery_Errors(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{
			name:   "unknown status code",
			path:   "/api/v1/query",
			body:   `{"steps":[{"type":"filter","kind":"status","params":{"status_list":[999]}}]}`,
			status: http.StatusBadRequest,
			code:   "invalid_value",
		},
		{
			name:   "unknown filter kind",
			path:   "/api/v1/query",
			body:   `{"steps":[{"type":"filter","kind":"weather"}]}`,
			status: http.StatusBadRequest,
			code:   "invalid_value",
		},
		{
			name:   "wrong parameter type",
			path:   "/api/v1/query",
			body:   `{"steps":[{"type":"filter","kind":"season","params":{"year":"2021"}}]}`,
			status: http.StatusBadRequest,
			code:   "invalid_type",
		},
		{
			name:   "malformed body",
			path:   "/api/v1/query",
			body:   `{"steps":`,
			status: http.StatusBadRequest,
			code:   "invalid_request",
		},
		{
			name:   "unknown field",
			path:   "/api/v1/query",
			body:   `{"stages":[]}`,
			status: http.StatusBadRequest,
			code:   "invalid_request",
		},
		{
			name:   "bad format",
			path:   "/api/v1/query?format=xml",
			body:   `{"steps":[]}`,
			status: http.StatusBadRequest,
			code:   "invalid_request",
		},
		{
			name:   "body too large",
			path:   "/api/v1/query",
			body:   `{"steps":[{"type":"filter","kind":"country","params":{"countries":["` + strings.Repeat("x", 1<<16) + `"]}}]}`,
			status: http.StatusRequestEntityTooLarge,
			code:   "body_too_large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())

			var resp handlers.ErrorResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), resp.RequestID)
		})
	}
}

func TestQuery_MissingColumn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ds := testutil.MatchDataset(t)
	trimmed, err := ds.Select("test", []string{columns.StatusCode})
	require.NoError(t, err)

	queries := services.NewQueryService("trimmed", trimmed, nil, quietLogger())
	router := NewRouter(RouterConfig{Logger: quietLogger()}, Dependencies{
		Queries: queries,
		Goals:   services.NewGoalService(queries),
	})

	w := do(router, http.MethodPost, "/api/v1/query", `{"steps":[{"type":"filter","kind":"country","params":{"countries":"Chile"}}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handlers.ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "missing_column", resp.Code)

	w = do(router, http.MethodPost, "/api/v1/goals", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestQuery_Cached(t *testing.T) {
	_, client := testutil.NewTestRedis(t)
	router := newTestRouter(t, cache.NewRedisResultCache(client, time.Minute, quietLogger()), nil)

	body := `{"steps":[{"type":"filter","kind":"status","params":{"status_list":100}}]}`
	first := do(router, http.MethodPost, "/api/v1/query", body)
	require.Equal(t, http.StatusOK, first.Code)
	second := do(router, http.MethodPost, "/api/v1/query", body)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))

	var miss, hit handlers.QueryResponse
	decode(t, first, &miss)
	decode(t, second, &hit)
	assert.Equal(t, miss.Columns, hit.Columns)
	assert.Equal(t, miss.Data, hit.Data)

	w := do(router, http.MethodGet, "/api/v1/cache/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats cache.ResultCacheStats
	decode(t, w, &stats)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Sets)

	w = do(router, http.MethodDelete, "/api/v1/cache", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"invalidated":1}`, w.Body.String())
}

func TestInvalidateCache_Disabled(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := do(router, http.MethodDelete, "/api/v1/cache", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGoals(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	t.Run("whole dataset", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/v1/goals", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Parsed  int      `json:"parsed"`
			Skipped int      `json:"skipped"`
			HomeWin string   `json:"home_win"`
			Draw    string   `json:"draw"`
			AwayWin string   `json:"away_win"`
			Leagues []string `json:"leagues"`
		}
		decode(t, w, &resp)
		assert.Equal(t, 4, resp.Parsed)
		assert.Equal(t, 1, resp.Skipped)
		assert.Equal(t, "25", resp.HomeWin)
		assert.Equal(t, "50", resp.Draw)
		assert.Equal(t, "25", resp.AwayWin)
		assert.Len(t, resp.Leagues, 5)
	})

	t.Run("filtered", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/v1/goals", `{"steps":[{"type":"filter","kind":"country","params":{"countries":"Spain"}}]}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Parsed  int    `json:"parsed"`
			AwayWin string `json:"away_win"`
		}
		decode(t, w, &resp)
		assert.Equal(t, 1, resp.Parsed)
		assert.Equal(t, "100", resp.AwayWin)
	})

	t.Run("invalid pipeline", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/v1/goals", `{"steps":[{"type":"slice","kind":"status"}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
