package httpv1

import (
	"net/http"
	"time"

	"github.com/Egor213/LogiDash/internal/metrics"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouterConfig struct {
	IngestRateLimit  int
	IngestRateWindow time.Duration
	// Metrics enables echoprometheus, which registers on the default registry.
	Metrics bool
}

func NewRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, cfg RouterConfig) {
	handler.HideBanner = true
	handler.HidePort = true
	handler.JSONSerializer = JSONSerializer{}
	handler.HTTPErrorHandler = HTTPErrorHandler

	handler.Use(middleware.Recover())
	handler.Use(middleware.RequestID())
	handler.Use(RequestLogger())
	if cfg.Metrics {
		handler.Use(metrics.Middleware())
	}

	handler.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	apiKey := APIKeyAuth(services.App)
	basic := BasicAuth(services.User)
	limiter := RateLimitByIP(cfg.IngestRateLimit, cfg.IngestRateWindow)

	api := handler.Group("/api")

	httpLogs := NewHttpLogController(services.HttpLog, counters)
	api.POST("/http-logs", httpLogs.Ingest, limiter, apiKey)
	api.GET("/http-logs", httpLogs.List, basic)
	api.GET("/http-logs/stats", httpLogs.HourlyStats, basic)
	api.GET("/http-logs/stats/summary", httpLogs.TimeframeStats, basic)

	logs := NewLogController(services.Log, counters)
	api.POST("/logs", logs.Ingest, limiter, apiKey)
	api.GET("/logs", logs.List, basic)

	users := NewUserController(services.User)
	api.POST("/register", users.Register)
	api.GET("/user", users.Me, basic)

	projects := NewProjectController(services.Project)
	api.GET("/projects", projects.List, basic)
	api.POST("/projects", projects.Create, basic)
	api.GET("/projects/:projectId", projects.Get, basic)
	api.DELETE("/projects/:projectId", projects.Delete, basic)

	apps := NewAppController(services.App)
	api.POST("/apps", apps.Create, basic)
	api.GET("/apps/:appId", apps.Get, basic)
	api.PUT("/apps/:appId", apps.Rename, basic)
	api.POST("/apps/:appId/rotate-key", apps.RotateKey, basic)
	api.DELETE("/apps/:appId", apps.Delete, basic)
}
