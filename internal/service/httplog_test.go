package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo/repoerrs"
	"github.com/Egor213/LogiDash/internal/repo/repotypes"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHttpLogService_Ingest(t *testing.T) {
	appID := uuid.New()
	clientTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 3*3600))

	type mockBehavior func(m *testMocks)

	tcs := []struct {
		name         string
		in           domain.HttpLogInput
		mockBehavior mockBehavior
		check        func(t *testing.T, got domain.HttpLog)
		wantErr      error
	}{
		{
			name: "success with defaults",
			in: domain.HttpLogInput{
				Source:     "web",
				Method:     "GET",
				URL:        "/orders",
				StatusCode: 200,
				Headers:    json.RawMessage(`{"accept": "json"}`),
				Body:       json.RawMessage(`"plain"`),
				Response:   json.RawMessage(`null`),
			},
			mockBehavior: func(m *testMocks) {
				m.httpLog.EXPECT().CreateHttpLog(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *domain.HttpLog) error {
						l.ID = uuid.New()
						return nil
					})
				m.producer.EXPECT().SendMessage(gomock.Any(), []byte(appID.String()), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, got domain.HttpLog) {
				assert.Equal(t, appID, got.AppID)
				assert.Equal(t, `{"accept":"json"}`, got.Headers)
				assert.Equal(t, "plain", got.Body)
				assert.Equal(t, "", got.Params)
				assert.Nil(t, got.Response)
				assert.Equal(t, testNow, got.Timestamp)
			},
		},
		{
			name: "client timestamp kept and broker failure ignored",
			in: domain.HttpLogInput{
				Method:     "POST",
				StatusCode: 500,
				Response:   json.RawMessage(`""`),
				Timestamp:  &clientTime,
			},
			mockBehavior: func(m *testMocks) {
				m.httpLog.EXPECT().CreateHttpLog(gomock.Any(), gomock.Any()).Return(nil)
				m.producer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("breaker open"))
			},
			check: func(t *testing.T, got domain.HttpLog) {
				assert.True(t, clientTime.Equal(got.Timestamp))
				require.NotNil(t, got.Response)
				assert.Equal(t, "", *got.Response)
			},
		},
		{
			name: "repository error",
			in:   domain.HttpLogInput{Method: "GET", StatusCode: 200},
			mockBehavior: func(m *testMocks) {
				m.httpLog.EXPECT().CreateHttpLog(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: service.ErrCannotCreateHttpLog,
		},
		{
			name:         "malformed response",
			in:           domain.HttpLogInput{Response: json.RawMessage(`{"a":`)},
			mockBehavior: func(m *testMocks) {},
			wantErr:      service.ErrCannotParseResponse,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestServices(t, false)
			tc.mockBehavior(m)

			got, err := svc.HttpLog.Ingest(context.Background(), appID, tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, got)
		})
	}
}

func TestHttpLogService_List(t *testing.T) {
	userID := uuid.New()
	status := 404

	t.Run("defaults and concurrent count", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		want := repotypes.HttpLogFilter{UserID: userID, StatusCode: &status, Limit: 10, Offset: 0}
		rows := []domain.HttpLog{{ID: uuid.New()}, {ID: uuid.New()}}

		m.httpLog.EXPECT().GetHttpLogs(gomock.Any(), want).Return(rows, nil)
		m.httpLog.EXPECT().CountHttpLogs(gomock.Any(), want).Return(21, nil)

		page, err := svc.HttpLog.List(context.Background(), userID, domain.HttpLogQuery{StatusCode: &status})
		require.NoError(t, err)
		assert.Equal(t, rows, page.Data)
		assert.Equal(t, domain.Pagination{Page: 1, Limit: 10, Total: 21, TotalPages: 3}, page.Pagination)
	})

	t.Run("limit capped and offset", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		want := repotypes.HttpLogFilter{UserID: userID, Limit: 100, Offset: 200}

		m.httpLog.EXPECT().GetHttpLogs(gomock.Any(), want).Return(nil, nil)
		m.httpLog.EXPECT().CountHttpLogs(gomock.Any(), want).Return(0, nil)

		page, err := svc.HttpLog.List(context.Background(), userID, domain.HttpLogQuery{Page: 3, Limit: 500})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.NotNil(t, page.Data)
		assert.Equal(t, 100, page.Pagination.Limit)
	})

	t.Run("invalid page", func(t *testing.T) {
		svc, _ := newTestServices(t, false)
		_, err := svc.HttpLog.List(context.Background(), userID, domain.HttpLogQuery{Page: -1})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("count failure", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		m.httpLog.EXPECT().GetHttpLogs(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.httpLog.EXPECT().CountHttpLogs(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))

		_, err := svc.HttpLog.List(context.Background(), userID, domain.HttpLogQuery{})
		assert.Error(t, err)
	})
}

func TestHttpLogService_DeleteAll(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		m.httpLog.EXPECT().DeleteAllHttpLogs(gomock.Any()).Return(int64(7), nil)

		n, err := svc.HttpLog.DeleteAll(context.Background(), domain.User{ID: uuid.New(), Role: domain.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})

	t.Run("regular user", func(t *testing.T) {
		svc, _ := newTestServices(t, false)
		_, err := svc.HttpLog.DeleteAll(context.Background(), domain.User{ID: uuid.New(), Role: domain.RoleUser})
		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestHttpLogService_HourlyStats(t *testing.T) {
	userID := uuid.New()

	t.Run("buckets filled from both queries", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		app := m.expectOwnedApp(userID)

		window := repotypes.HourWindow{
			AppID:    app.ID,
			From:     testNow.Add(-24 * time.Hour),
			To:       testNow,
			Location: "UTC",
		}
		errWindow := window
		errWindow.ErrorsOnly = true

		m.httpLog.EXPECT().CountByHour(gomock.Any(), window).Return([]domain.HourCount{
			{Hour: time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC), Count: 9},
			{Hour: time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC), Count: 2},
			{Hour: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), Count: 3},
		}, nil)
		m.httpLog.EXPECT().CountByHour(gomock.Any(), errWindow).Return([]domain.HourCount{
			{Hour: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), Count: 1},
		}, nil)

		buckets, err := svc.HttpLog.HourlyStats(context.Background(), userID, app.ID, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, buckets, 24)

		assert.Equal(t, domain.HourBucket{Hour: "2026-03-09 16:00", Total: 2}, buckets[0])
		assert.Equal(t, domain.HourBucket{Hour: "2026-03-10 15:00", Total: 3, Errors: 1}, buckets[23])

		total := 0
		for _, b := range buckets {
			total += b.Total
			assert.LessOrEqual(t, b.Errors, b.Total)
		}
		assert.Equal(t, 5, total)
	})

	t.Run("app of another user", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		app := m.expectOwnedApp(uuid.New())

		_, err := svc.HttpLog.HourlyStats(context.Background(), userID, app.ID, time.Time{}, time.Time{})
		assert.ErrorIs(t, err, service.ErrNotOwner)
	})

	t.Run("unknown app", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		appID := uuid.New()
		m.app.EXPECT().GetAppByID(gomock.Any(), appID).Return(domain.App{}, repoerrs.ErrNotFound)

		_, err := svc.HttpLog.HourlyStats(context.Background(), userID, appID, time.Time{}, time.Time{})
		assert.ErrorIs(t, err, service.ErrAppNotFound)
	})

	t.Run("inverted window", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		app := m.expectOwnedApp(userID)

		_, err := svc.HttpLog.HourlyStats(context.Background(), userID, app.ID, testNow, testNow.Add(-time.Hour))
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestFillHourBuckets(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2026, 1, 1, 1, 5, 0, 0, zone)

	buckets := service.FillHourBuckets(now, nil, nil)
	require.Len(t, buckets, 24)
	assert.Equal(t, "2025-12-31 02:00", buckets[0].Hour)
	assert.Equal(t, "2026-01-01 01:00", buckets[23].Hour)

	for i := 1; i < len(buckets); i++ {
		assert.Less(t, buckets[i-1].Hour, buckets[i].Hour)
		assert.Zero(t, buckets[i].Total)
	}
}

func TestHttpLogService_TimeframeStats(t *testing.T) {
	userID := uuid.New()
	svc, m := newTestServices(t, false)
	app := m.expectOwnedApp(userID)

	m.httpLog.EXPECT().CountByStatusCode(gomock.Any(), app.ID, testNow.Add(-time.Hour)).
		Return([]domain.StatusCount{{StatusCode: 200, Count: 4}, {StatusCode: 400, Count: 1}}, nil)
	m.httpLog.EXPECT().CountByStatusCode(gomock.Any(), app.ID, testNow.Add(-24*time.Hour)).
		Return([]domain.StatusCount{{StatusCode: 201, Count: 10}, {StatusCode: 399, Count: 2}, {StatusCode: 500, Count: 3}}, nil)
	m.httpLog.EXPECT().CountByStatusCode(gomock.Any(), app.ID, testNow.AddDate(0, -1, 0)).
		Return(nil, nil)

	stats, err := svc.HttpLog.TimeframeStats(context.Background(), userID, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TimeframeStat{Total: 5, Success: 4, Failed: 1}, stats.Hour)
	assert.Equal(t, domain.TimeframeStat{Total: 15, Success: 12, Failed: 3}, stats.Day)
	assert.Equal(t, domain.TimeframeStat{}, stats.Month)
}

func TestSummarizeStatuses(t *testing.T) {
	got := service.SummarizeStatuses([]domain.StatusCount{
		{StatusCode: 100, Count: 1},
		{StatusCode: 200, Count: 2},
		{StatusCode: 302, Count: 3},
		{StatusCode: 400, Count: 4},
	})
	assert.Equal(t, domain.TimeframeStat{Total: 10, Success: 5, Failed: 5}, got)
}
