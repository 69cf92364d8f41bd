package httpv1

import (
	"net/http"
	"time"

	logginghelper "github.com/Egor213/LogiDash/internal/controller/common/logging"
	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/metrics"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const ingestFailedSummary = "Failed to add httpLog data"

// httpLogRequest is the ingestion body. AppID is accepted and discarded.
type httpLogRequest struct {
	AppID      json.RawMessage `json:"appId"`
	Source     string          `json:"source"`
	Method     string          `json:"method"`
	URL        string          `json:"url"`
	StatusCode int             `json:"statusCode"`
	Headers    json.RawMessage `json:"headers"`
	Params     json.RawMessage `json:"params"`
	Query      json.RawMessage `json:"query"`
	Body       json.RawMessage `json:"body"`
	Response   json.RawMessage `json:"response"`
	IP         string          `json:"ip"`
	UserAgent  string          `json:"userAgent"`
	Timestamp  *time.Time      `json:"timestamp"`
}

func (r httpLogRequest) toInput() domain.HttpLogInput {
	return domain.HttpLogInput{
		Source:     r.Source,
		Method:     r.Method,
		URL:        r.URL,
		StatusCode: r.StatusCode,
		Headers:    []byte(r.Headers),
		Params:     []byte(r.Params),
		Query:      []byte(r.Query),
		Body:       []byte(r.Body),
		Response:   []byte(r.Response),
		IP:         r.IP,
		UserAgent:  r.UserAgent,
		Timestamp:  r.Timestamp,
	}
}

type deleteAllResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

type HttpLogController struct {
	httpLogService service.HttpLog
	counters       *metrics.Counters
}

func NewHttpLogController(hs service.HttpLog, cnt *metrics.Counters) *HttpLogController {
	return &HttpLogController{
		httpLogService: hs,
		counters:       cnt,
	}
}

func (h *HttpLogController) Ingest(c echo.Context) error {
	app := currentApp(c)
	h.counters.IngestRequests.Inc("http-logs", "received")

	var req httpLogRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.counters.IngestRequests.Inc("http-logs", "failed")
		logginghelper.LogError(app.ID, err)
		return newHTTPError(http.StatusInternalServerError, ingestFailedSummary, err.Error())
	}

	logginghelper.LogReceived(app.ID, req.Method, req.URL, req.StatusCode)

	entry, err := h.httpLogService.Ingest(c.Request().Context(), app.ID, req.toInput())
	if err != nil {
		h.counters.IngestRequests.Inc("http-logs", "failed")
		logginghelper.LogError(app.ID, err)
		return mapServiceError(err, ingestFailedSummary)
	}

	logginghelper.LogSaved(entry)
	h.counters.IngestRequests.Inc("http-logs", "ok")

	return c.JSON(http.StatusCreated, entry)
}

// List serves GET /api/http-logs; delete=true switches it into the admin bulk delete.
func (h *HttpLogController) List(c echo.Context) error {
	user := currentUser(c)

	if c.QueryParam("delete") == "true" {
		n, err := h.httpLogService.DeleteAll(c.Request().Context(), user)
		if err != nil {
			return mapServiceError(err, "Failed to delete http logs")
		}
		return c.JSON(http.StatusOK, deleteAllResponse{Message: "All http logs deleted", Deleted: n})
	}

	q, err := parseHttpLogQuery(c)
	if err != nil {
		return err
	}

	page, err := h.httpLogService.List(c.Request().Context(), user.ID, q)
	if err != nil {
		return mapServiceError(err, "Failed to fetch http logs")
	}
	return c.JSON(http.StatusOK, page)
}

func parseHttpLogQuery(c echo.Context) (domain.HttpLogQuery, error) {
	var (
		q   domain.HttpLogQuery
		err error
	)
	if q.AppID, err = queryUUID(c, "appId"); err != nil {
		return q, err
	}
	if q.StatusCode, err = queryOptionalInt(c, "status"); err != nil {
		return q, err
	}
	if q.StartDate, err = queryTime(c, "startDate"); err != nil {
		return q, err
	}
	if q.EndDate, err = queryTime(c, "endDate"); err != nil {
		return q, err
	}
	if q.Page, err = queryPositiveInt(c, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = queryPositiveInt(c, "limit"); err != nil {
		return q, err
	}
	q.Source = c.QueryParam("source")
	q.Method = c.QueryParam("method")
	q.URL = c.QueryParam("url")
	return q, nil
}

func (h *HttpLogController) HourlyStats(c echo.Context) error {
	appID, err := requiredAppID(c)
	if err != nil {
		return err
	}
	from, err := queryTime(c, "from")
	if err != nil {
		return err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return err
	}

	buckets, err := h.httpLogService.HourlyStats(c.Request().Context(), currentUser(c).ID, appID, from, to)
	if err != nil {
		return mapServiceError(err, "Failed to fetch stats")
	}
	return c.JSON(http.StatusOK, buckets)
}

func (h *HttpLogController) TimeframeStats(c echo.Context) error {
	appID, err := requiredAppID(c)
	if err != nil {
		return err
	}

	stats, err := h.httpLogService.TimeframeStats(c.Request().Context(), currentUser(c).ID, appID)
	if err != nil {
		return mapServiceError(err, "Failed to fetch stats")
	}
	return c.JSON(http.StatusOK, stats)
}

func requiredAppID(c echo.Context) (uuid.UUID, error) {
	if c.QueryParam("appId") == "" {
		return uuid.Nil, badRequest("Missing appId parameter")
	}
	return queryUUID(c, "appId")
}
