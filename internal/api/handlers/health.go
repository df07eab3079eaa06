package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/irfndi/oddsframe/internal/database"
	"github.com/irfndi/oddsframe/internal/services"
)

var startTime = time.Now()

// Version is reported by the health endpoint; set at link time.
var Version = "dev"

type HealthHandler struct {
	db      *database.PostgresDB
	redis   *database.RedisClient
	queries *services.QueryService
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Dataset   DatasetInfo       `json:"dataset"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
}

// DatasetInfo describes the loaded dataset.
type DatasetInfo struct {
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// NewHealthHandler creates a health handler. db and redis are optional.
func NewHealthHandler(db *database.PostgresDB, redis *database.RedisClient, queries *services.QueryService) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   redis,
		queries: queries,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	services := make(map[string]string)

	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			services["database"] = "unhealthy: " + err.Error()
		} else {
			services["database"] = "healthy"
		}
	} else {
		services["database"] = "disabled"
	}

	if h.redis != nil {
		if err := h.redis.HealthCheck(c.Request.Context()); err != nil {
			services["redis"] = "unhealthy: " + err.Error()
		} else {
			services["redis"] = "healthy"
		}
	} else {
		services["redis"] = "disabled"
	}

	ds := h.queries.Dataset()
	info := DatasetInfo{Name: h.queries.DatasetName(), Rows: ds.Nrow(), Columns: ds.Ncol()}

	overallStatus := "healthy"
	for _, status := range services {
		if status != "healthy" && status != "disabled" {
			overallStatus = "degraded"
			break
		}
	}

	statusCode := http.StatusOK
	if overallStatus != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now(),
		Services:  services,
		Dataset:   info,
		Version:   Version,
		Uptime:    time.Since(startTime).String(),
	})
}
