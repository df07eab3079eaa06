package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/irfndi/oddsframe/internal/middleware"
	"github.com/irfndi/oddsframe/internal/pipeline"
	"github.com/irfndi/oddsframe/internal/services"
)

// QueryHandler runs declarative queries against the loaded dataset.
type QueryHandler struct {
	queries *services.QueryService
	goals   *services.GoalService
}

func NewQueryHandler(queries *services.QueryService, goals *services.GoalService) *QueryHandler {
	return &QueryHandler{queries: queries, goals: goals}
}

// QueryResponse is the JSON form of a query result.
type QueryResponse struct {
	Fingerprint string                   `json:"fingerprint"`
	Cached      bool                     `json:"cached"`
	Rows        int                      `json:"rows"`
	Columns     []string                 `json:"columns"`
	Data        []map[string]interface{} `json:"data"`
	DurationMs  int64                    `json:"duration_ms"`
}

// Query runs the posted pipeline. With ?format=csv the result is written as CSV.
func (h *QueryHandler) Query(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		badRequest(c, errors.New("format must be json or csv"))
		return
	}

	spec, err := pipeline.DecodeJSON(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.queries.Query(c.Request.Context(), spec)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.AddSpanAttribute(c, "query.fingerprint", res.Fingerprint)
	middleware.AddSpanAttribute(c, "query.cached", res.Cached)
	c.Header("X-Query-Fingerprint", res.Fingerprint)
	c.Header("X-Cache", cacheHeader(res.Cached))

	if format == "csv" {
		var buf bytes.Buffer
		if err := res.Dataset.WriteCSV(&buf); err != nil {
			respondError(c, err)
			return
		}
		c.Header("X-Result-Rows", strconv.Itoa(res.Dataset.Nrow()))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, QueryResponse{
		Fingerprint: res.Fingerprint,
		Cached:      res.Cached,
		Rows:        res.Dataset.Nrow(),
		Columns:     res.Dataset.Names(),
		Data:        res.Dataset.Records(),
		DurationMs:  res.Duration.Milliseconds(),
	})
}

func cacheHeader(cached bool) string {
	if cached {
		return "HIT"
	}
	return "MISS"
}

// Goals computes the goal distribution of the posted pipeline's result. An
// empty body uses the whole dataset.
func (h *QueryHandler) Goals(c *gin.Context) {
	spec, err := pipeline.DecodeJSON(c.Request.Body)
	if err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}

	dist, err := h.goals.Distribution(c.Request.Context(), spec)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

// InvalidateCache drops cached results for the dataset.
func (h *QueryHandler) InvalidateCache(c *gin.Context) {
	n, err := h.queries.InvalidateCache(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invalidated": n})
}

// CacheStats reports result cache counters.
func (h *QueryHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.queries.CacheStats())
}
