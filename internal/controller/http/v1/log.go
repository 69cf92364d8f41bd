package httpv1

import (
	"net/http"
	"time"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/metrics"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type logRequest struct {
	Source    string     `json:"source"`
	Level     string     `json:"level"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp"`
}

type LogController struct {
	logService service.Log
	counters   *metrics.Counters
}

func NewLogController(ls service.Log, cnt *metrics.Counters) *LogController {
	return &LogController{
		logService: ls,
		counters:   cnt,
	}
}

func (h *LogController) Ingest(c echo.Context) error {
	app := currentApp(c)
	h.counters.IngestRequests.Inc("logs", "received")

	var req logRequest
	if err := c.Bind(&req); err != nil {
		h.counters.IngestRequests.Inc("logs", "failed")
		return err
	}

	entry, err := h.logService.Ingest(c.Request().Context(), app.ID, domain.LogInput{
		Source:    req.Source,
		Level:     req.Level,
		Message:   req.Message,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		h.counters.IngestRequests.Inc("logs", "failed")
		log.WithField("app_id", app.ID).Errorf("Failed to save log: %v", err)
		return mapServiceError(err, "Failed to add log data")
	}

	h.counters.IngestRequests.Inc("logs", "ok")
	return c.JSON(http.StatusCreated, entry)
}

func (h *LogController) List(c echo.Context) error {
	var (
		q   domain.LogQuery
		err error
	)
	if q.AppID, err = queryUUID(c, "appId"); err != nil {
		return err
	}
	if q.Page, err = queryPositiveInt(c, "page"); err != nil {
		return err
	}
	if q.Limit, err = queryPositiveInt(c, "limit"); err != nil {
		return err
	}
	q.Source = c.QueryParam("source")
	q.Level = c.QueryParam("level")

	page, err := h.logService.List(c.Request().Context(), currentUser(c).ID, q)
	if err != nil {
		return mapServiceError(err, "Failed to fetch logs")
	}
	return c.JSON(http.StatusOK, page)
}
