package service

import (
	"context"
	"time"

	"github.com/Egor213/LogiDash/internal/broker"
	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/metrics"
	"github.com/Egor213/LogiDash/internal/repo"
	"github.com/google/uuid"
)

type User interface {
	Register(ctx context.Context, in RegisterInput) (domain.User, error)
	CreateUser(ctx context.Context, in RegisterInput, role string) (domain.User, error)
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
}

type Project interface {
	CreateProject(ctx context.Context, userID uuid.UUID, in ProjectInput) (domain.Project, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	GetProject(ctx context.Context, userID, projectID uuid.UUID) (domain.Project, error)
	DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error
}

type App interface {
	Authenticate(ctx context.Context, apiKey string) (domain.App, error)
	CreateApp(ctx context.Context, userID uuid.UUID, in AppInput) (domain.App, error)
	GetApp(ctx context.Context, userID, appID uuid.UUID) (domain.App, error)
	RenameApp(ctx context.Context, userID, appID uuid.UUID, name string) (domain.App, error)
	RotateKey(ctx context.Context, userID, appID uuid.UUID) (domain.App, error)
	DeleteApp(ctx context.Context, userID, appID uuid.UUID) error
}

type HttpLog interface {
	Ingest(ctx context.Context, appID uuid.UUID, in domain.HttpLogInput) (domain.HttpLog, error)
	List(ctx context.Context, userID uuid.UUID, q domain.HttpLogQuery) (domain.Page[domain.HttpLog], error)
	DeleteAll(ctx context.Context, user domain.User) (int64, error)
	HourlyStats(ctx context.Context, userID, appID uuid.UUID, from, to time.Time) ([]domain.HourBucket, error)
	TimeframeStats(ctx context.Context, userID, appID uuid.UUID) (domain.TimeframeStats, error)
}

type Log interface {
	Ingest(ctx context.Context, appID uuid.UUID, in domain.LogInput) (domain.Log, error)
	List(ctx context.Context, userID uuid.UUID, q domain.LogQuery) (domain.Page[domain.Log], error)
}

// TxManager runs fn in one transaction; repositories pick it up from ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Services struct {
	User
	Project
	App
	HttpLog
	Log
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	TxManager      TxManager

	// StatsLocation sets the wall clock of hour buckets. Defaults to UTC.
	StatsLocation       *time.Location
	DisableRegistration bool
	Now                 func() time.Time
}

func NewServices(deps ServicesDependencies) *Services {
	if deps.StatsLocation == nil {
		deps.StatsLocation = time.UTC
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	owner := newOwnership(deps.Repos.App, deps.Repos.Project)

	return &Services{
		User:    NewUserService(deps.Repos.User, deps.DisableRegistration),
		Project: NewProjectService(deps.Repos.Project, deps.Repos.App, deps.Repos.HttpLog, deps.Repos.Log, deps.TxManager),
		App:     NewAppService(deps.Repos.App, deps.Repos.HttpLog, deps.Repos.Log, owner, deps.TxManager),
		HttpLog: NewHttpLogService(HttpLogServiceDeps{
			Repo:     deps.Repos.HttpLog,
			Owner:    owner,
			Counters: deps.Counters,
			Producer: deps.BrokerProducer,
			Location: deps.StatsLocation,
			Now:      deps.Now,
		}),
		Log: NewLogService(deps.Repos.Log, deps.Counters, deps.Now),
	}
}
