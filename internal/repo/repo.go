package repo

import (
	"context"
	"time"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo/pgdb"
	"github.com/Egor213/LogiDash/internal/repo/repotypes"
	"github.com/Egor213/LogiDash/pkg/postgres"
	"github.com/google/uuid"
)

type User interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Project interface {
	CreateProject(ctx context.Context, p *domain.Project) error
	GetProjectByID(ctx context.Context, id uuid.UUID) (domain.Project, error)
	ListProjectsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type App interface {
	CreateApp(ctx context.Context, a *domain.App) error
	GetAppByID(ctx context.Context, id uuid.UUID) (domain.App, error)
	GetAppByAPIKey(ctx context.Context, apiKey string) (domain.App, error)
	ListAppsByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]domain.App, error)
	UpdateApp(ctx context.Context, a *domain.App) error
	DeleteApp(ctx context.Context, id uuid.UUID) error
	DeleteAppsByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
}

type HttpLog interface {
	CreateHttpLog(ctx context.Context, l *domain.HttpLog) error
	GetHttpLogs(ctx context.Context, filter repotypes.HttpLogFilter) ([]domain.HttpLog, error)
	CountHttpLogs(ctx context.Context, filter repotypes.HttpLogFilter) (int, error)
	DeleteAllHttpLogs(ctx context.Context) (int64, error)
	DeleteHttpLogsByApp(ctx context.Context, appID uuid.UUID) (int64, error)
	CountByHour(ctx context.Context, window repotypes.HourWindow) ([]domain.HourCount, error)
	CountByStatusCode(ctx context.Context, appID uuid.UUID, since time.Time) ([]domain.StatusCount, error)
}

type Log interface {
	CreateLog(ctx context.Context, l *domain.Log) error
	GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.Log, error)
	CountLogs(ctx context.Context, filter repotypes.LogFilter) (int, error)
	DeleteLogsByApp(ctx context.Context, appID uuid.UUID) (int64, error)
}

type Repositories struct {
	User
	Project
	App
	HttpLog
	Log
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		User:    pgdb.NewUserRepo(pg),
		Project: pgdb.NewProjectRepo(pg),
		App:     pgdb.NewAppRepo(pg),
		HttpLog: pgdb.NewHttpLogRepo(pg),
		Log:     pgdb.NewLogRepo(pg),
	}
}
