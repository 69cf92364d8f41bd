package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/metrics"
	brokermocks "github.com/Egor213/LogiDash/internal/mocks/broker"
	repomocks "github.com/Egor213/LogiDash/internal/mocks/repository"
	servicemocks "github.com/Egor213/LogiDash/internal/mocks/service"
	"github.com/Egor213/LogiDash/internal/repo"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	user     *repomocks.MockUser
	project  *repomocks.MockProject
	app      *repomocks.MockApp
	httpLog  *repomocks.MockHttpLog
	log      *repomocks.MockLog
	tx       *servicemocks.MockTxManager
	producer *brokermocks.MockProducer
}

var testNow = time.Date(2026, 3, 10, 15, 42, 0, 0, time.UTC)

func newTestServices(t *testing.T, disableRegistration bool) (*service.Services, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		user:     repomocks.NewMockUser(ctrl),
		project:  repomocks.NewMockProject(ctrl),
		app:      repomocks.NewMockApp(ctrl),
		httpLog:  repomocks.NewMockHttpLog(ctrl),
		log:      repomocks.NewMockLog(ctrl),
		tx:       servicemocks.NewMockTxManager(ctrl),
		producer: brokermocks.NewMockProducer(ctrl),
	}

	svc := service.NewServices(service.ServicesDependencies{
		Repos: &repo.Repositories{
			User:    m.user,
			Project: m.project,
			App:     m.app,
			HttpLog: m.httpLog,
			Log:     m.log,
		},
		Counters:            metrics.NewTestCounters(),
		BrokerProducer:      m.producer,
		TxManager:           m.tx,
		StatsLocation:       time.UTC,
		DisableRegistration: disableRegistration,
		Now:                 func() time.Time { return testNow },
	})
	return svc, m
}

// expectOwnedApp wires the app -> project lookups used by ownership checks.
func (m *testMocks) expectOwnedApp(userID uuid.UUID) domain.App {
	project := domain.Project{ID: uuid.New(), Name: "shop", UserID: userID}
	app := domain.App{ID: uuid.New(), Name: "api", APIKey: "key", ProjectID: project.ID}

	m.app.EXPECT().GetAppByID(gomock.Any(), app.ID).Return(app, nil)
	m.project.EXPECT().GetProjectByID(gomock.Any(), project.ID).Return(project, nil)
	return app
}

func (m *testMocks) expectTx() {
	m.tx.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}
