package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/irfndi/oddsframe/internal/api/handlers"
	"github.com/irfndi/oddsframe/internal/database"
	"github.com/irfndi/oddsframe/internal/logging"
	"github.com/irfndi/oddsframe/internal/middleware"
	"github.com/irfndi/oddsframe/internal/services"
	"github.com/irfndi/oddsframe/internal/telemetry"
)

// Dependencies are the services the HTTP API is built on. DB and Redis are
// optional and only reported by the health check.
type Dependencies struct {
	DB      *database.PostgresDB
	Redis   *database.RedisClient
	Queries *services.QueryService
	Goals   *services.GoalService
}

// RouterConfig configures NewRouter.
type RouterConfig struct {
	ServiceName  string
	MaxBodyBytes int64
	Logger       *logrus.Logger
}

// NewRouter builds a gin engine with the standard middleware chain and every
// route registered.
func NewRouter(cfg RouterConfig, deps Dependencies) *gin.Engine {
	if cfg.ServiceName == "" {
		cfg.ServiceName = telemetry.ServiceName
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.TelemetryMiddleware(cfg.ServiceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logging.Wrap(cfg.Logger)))
	router.Use(middleware.MaxBodySize(cfg.MaxBodyBytes))

	SetupRoutes(router, deps)
	return router
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis, deps.Queries)
	lookupHandler := handlers.NewLookupHandler()
	queryHandler := handlers.NewQueryHandler(deps.Queries, deps.Goals)

	// Health check endpoint
	router.GET("/health", middleware.HealthCheckTelemetryMiddleware(), healthHandler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		lookup := v1.Group("/lookup")
		{
			lookup.GET("/countries", lookupHandler.GetCountries)
			lookup.GET("/bookmakers", lookupHandler.GetBookmakers)
			lookup.GET("/markets", lookupHandler.GetMarkets)
			lookup.GET("/statuses", lookupHandler.GetStatuses)
		}

		v1.POST("/query", queryHandler.Query)
		v1.POST("/goals", queryHandler.Goals)

		cache := v1.Group("/cache")
		{
			cache.GET("/stats", queryHandler.CacheStats)
			cache.DELETE("", queryHandler.InvalidateCache)
		}
	}
}
