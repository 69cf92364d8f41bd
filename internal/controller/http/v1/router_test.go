package httpv1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpv1 "github.com/Egor213/LogiDash/internal/controller/http/v1"
	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/metrics"
	servicemocks "github.com/Egor213/LogiDash/internal/mocks/service"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "supersecret"
	testAPIKey   = "0123456789abcdef"
)

type routerMocks struct {
	user    *servicemocks.MockUser
	project *servicemocks.MockProject
	app     *servicemocks.MockApp
	httpLog *servicemocks.MockHttpLog
	log     *servicemocks.MockLog
}

func newTestRouter(t *testing.T) (*echo.Echo, *routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &routerMocks{
		user:    servicemocks.NewMockUser(ctrl),
		project: servicemocks.NewMockProject(ctrl),
		app:     servicemocks.NewMockApp(ctrl),
		httpLog: servicemocks.NewMockHttpLog(ctrl),
		log:     servicemocks.NewMockLog(ctrl),
	}

	e := echo.New()
	httpv1.NewRouter(e, &service.Services{
		User:    m.user,
		Project: m.project,
		App:     m.app,
		HttpLog: m.httpLog,
		Log:     m.log,
	}, metrics.NewTestCounters(), httpv1.RouterConfig{})
	return e, m
}

func (m *routerMocks) expectUser(role string) domain.User {
	user := domain.User{ID: uuid.New(), Username: "alice", Email: testEmail, Role: role}
	m.user.EXPECT().Authenticate(gomock.Any(), testEmail, testPassword).Return(user, nil)
	return user
}

func (m *routerMocks) expectApp() domain.App {
	app := domain.App{ID: uuid.New(), Name: "api", APIKey: testAPIKey}
	m.app.EXPECT().Authenticate(gomock.Any(), testAPIKey).Return(app, nil)
	return app
}

func do(e *echo.Echo, method, target, body string, setup func(r *http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func withBasic(r *http.Request) {
	r.SetBasicAuth(testEmail, testPassword)
}

func withBearer(key string) func(r *http.Request) {
	return func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+key)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpv1.ErrorResponse {
	t.Helper()
	var body httpv1.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestIngest_Auth(t *testing.T) {
	tcs := []struct {
		name        string
		header      string
		setup       func(m *routerMocks)
		wantDetails string
	}{
		{
			name:        "missing header",
			setup:       func(m *routerMocks) {},
			wantDetails: "Authorization header is missing",
		},
		{
			name:        "wrong scheme",
			header:      "Token " + testAPIKey,
			setup:       func(m *routerMocks) {},
			wantDetails: "Invalid Authorization key",
		},
		{
			name:        "empty token",
			header:      "Bearer ",
			setup:       func(m *routerMocks) {},
			wantDetails: "Invalid Authorization key",
		},
		{
			name:   "unknown key",
			header: "Bearer nope",
			setup: func(m *routerMocks) {
				m.app.EXPECT().Authenticate(gomock.Any(), "nope").Return(domain.App{}, service.ErrInvalidAPIKey)
			},
			wantDetails: "Invalid Authorization key",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestRouter(t)
			tc.setup(m)

			rec := do(e, http.MethodPost, "/api/http-logs", `{"method":"GET"}`, func(r *http.Request) {
				if tc.header != "" {
					r.Header.Set(echo.HeaderAuthorization, tc.header)
				}
			})

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "Unauthorized", body.Error)
			assert.Equal(t, tc.wantDetails, body.Details)
		})
	}
}

func TestIngest_Success(t *testing.T) {
	e, m := newTestRouter(t)
	app := m.expectApp()

	stored := domain.HttpLog{ID: uuid.New(), AppID: app.ID, Method: "GET", StatusCode: 200, Timestamp: time.Now().UTC()}
	m.httpLog.EXPECT().Ingest(gomock.Any(), app.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in domain.HttpLogInput) (domain.HttpLog, error) {
			assert.Equal(t, "GET", in.Method)
			assert.Equal(t, 200, in.StatusCode)
			assert.JSONEq(t, `{"a":[1,2]}`, string(in.Response))
			return stored, nil
		})

	body := `{"appId":"` + uuid.NewString() + `","method":"GET","statusCode":200,"response":{"a":[1,2]}}`
	rec := do(e, http.MethodPost, "/api/http-logs", body, withBearer(testAPIKey))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.HttpLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, app.ID, got.AppID)
}

func TestIngest_ParseError(t *testing.T) {
	for name, body := range map[string]string{
		"unknown field": `{"method":"GET","extra":1}`,
		"malformed":     `{"method":`,
	} {
		t.Run(name, func(t *testing.T) {
			e, m := newTestRouter(t)
			m.expectApp()

			rec := do(e, http.MethodPost, "/api/http-logs", body, withBearer(testAPIKey))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "Failed to add httpLog data", decodeError(t, rec).Error)
		})
	}
}

func TestIngest_StorageError(t *testing.T) {
	e, m := newTestRouter(t)
	app := m.expectApp()
	m.httpLog.EXPECT().Ingest(gomock.Any(), app.ID, gomock.Any()).
		Return(domain.HttpLog{}, service.ErrCannotCreateHttpLog)

	rec := do(e, http.MethodPost, "/api/http-logs", `{"method":"GET"}`, withBearer(testAPIKey))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Failed to add httpLog data", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestListHttpLogs(t *testing.T) {
	t.Run("requires basic auth", func(t *testing.T) {
		e, _ := newTestRouter(t)
		rec := do(e, http.MethodGet, "/api/http-logs", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("filters passed through", func(t *testing.T) {
		e, m := newTestRouter(t)
		user := m.expectUser(domain.RoleUser)
		appID := uuid.New()
		status := 404

		want := domain.HttpLogQuery{
			AppID:      appID,
			Method:     "GET",
			StatusCode: &status,
			StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Page:       2,
			Limit:      5,
		}
		m.httpLog.EXPECT().List(gomock.Any(), user.ID, want).Return(domain.Page[domain.HttpLog]{
			Data:       []domain.HttpLog{},
			Pagination: domain.NewPagination(2, 5, 7),
		}, nil)

		rec := do(e, http.MethodGet,
			"/api/http-logs?appId="+appID.String()+"&method=GET&status=404&startDate=2026-03-01&page=2&limit=5",
			"", withBasic)

		require.Equal(t, http.StatusOK, rec.Code)
		var page domain.Page[domain.HttpLog]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, domain.Pagination{Page: 2, Limit: 5, Total: 7, TotalPages: 2}, page.Pagination)
	})

	for _, query := range []string{"page=0", "limit=-1", "status=abc", "startDate=yesterday", "appId=123"} {
		t.Run("invalid "+query, func(t *testing.T) {
			e, m := newTestRouter(t)
			m.expectUser(domain.RoleUser)

			rec := do(e, http.MethodGet, "/api/http-logs?"+query, "", withBasic)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeleteAllHttpLogs(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		e, m := newTestRouter(t)
		user := m.expectUser(domain.RoleAdmin)
		m.httpLog.EXPECT().DeleteAll(gomock.Any(), user).Return(int64(12), nil)

		rec := do(e, http.MethodGet, "/api/http-logs?delete=true", "", withBasic)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"All http logs deleted","deleted":12}`, rec.Body.String())
	})

	t.Run("regular user", func(t *testing.T) {
		e, m := newTestRouter(t)
		user := m.expectUser(domain.RoleUser)
		m.httpLog.EXPECT().DeleteAll(gomock.Any(), user).Return(int64(0), service.ErrForbidden)

		rec := do(e, http.MethodGet, "/api/http-logs?delete=true", "", withBasic)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHourlyStats(t *testing.T) {
	appID := uuid.New()

	tcs := []struct {
		name       string
		query      string
		setup      func(m *routerMocks, user domain.User)
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing appId",
			query:      "",
			setup:      func(m *routerMocks, user domain.User) {},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Missing appId parameter",
		},
		{
			name:       "invalid appId",
			query:      "?appId=xyz",
			setup:      func(m *routerMocks, user domain.User) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "not found",
			query: "?appId=" + appID.String(),
			setup: func(m *routerMocks, user domain.User) {
				m.httpLog.EXPECT().HourlyStats(gomock.Any(), user.ID, appID, time.Time{}, time.Time{}).
					Return(nil, service.ErrAppNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantDetail: "App not found",
		},
		{
			name:  "foreign app",
			query: "?appId=" + appID.String(),
			setup: func(m *routerMocks, user domain.User) {
				m.httpLog.EXPECT().HourlyStats(gomock.Any(), user.ID, appID, time.Time{}, time.Time{}).
					Return(nil, service.ErrNotOwner)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "success",
			query: "?appId=" + appID.String(),
			setup: func(m *routerMocks, user domain.User) {
				m.httpLog.EXPECT().HourlyStats(gomock.Any(), user.ID, appID, time.Time{}, time.Time{}).
					Return([]domain.HourBucket{{Hour: "2026-03-10 15:00", Total: 3, Errors: 1}}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestRouter(t)
			user := m.expectUser(domain.RoleUser)
			tc.setup(m, user)

			rec := do(e, http.MethodGet, "/api/http-logs/stats"+tc.query, "", withBasic)
			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantDetail != "" {
				assert.Equal(t, tc.wantDetail, decodeError(t, rec).Details)
			}
		})
	}
}

func TestTimeframeStats(t *testing.T) {
	e, m := newTestRouter(t)
	user := m.expectUser(domain.RoleUser)
	appID := uuid.New()

	m.httpLog.EXPECT().TimeframeStats(gomock.Any(), user.ID, appID).Return(domain.TimeframeStats{
		Hour: domain.TimeframeStat{Total: 2, Success: 1, Failed: 1},
	}, nil)

	rec := do(e, http.MethodGet, "/api/http-logs/stats/summary?appId="+appID.String(), "", withBasic)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"hour":  {"total":2,"success":1,"failed":1},
		"day":   {"total":0,"success":0,"failed":0},
		"month": {"total":0,"success":0,"failed":0}
	}`, rec.Body.String())
}
