package pgdb

import (
	"context"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/Egor213/LogiDash/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var appColumns = []string{"id", "name", "api_key", "project_id", "created_at"}

type AppRepo struct {
	*postgres.Postgres
}

func NewAppRepo(pg *postgres.Postgres) *AppRepo {
	return &AppRepo{pg}
}

func (r *AppRepo) CreateApp(ctx context.Context, a *domain.App) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	sql, args, err := r.Builder.
		Insert("apps").
		Columns("id", "name", "api_key", "project_id").
		Values(a.ID, a.Name, a.APIKey, a.ProjectID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&a.CreatedAt); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *AppRepo) GetAppByID(ctx context.Context, id uuid.UUID) (domain.App, error) {
	return r.getApp(ctx, sq.Eq{"id": id})
}

func (r *AppRepo) GetAppByAPIKey(ctx context.Context, apiKey string) (domain.App, error) {
	return r.getApp(ctx, sq.Eq{"api_key": apiKey})
}

func (r *AppRepo) getApp(ctx context.Context, cond sq.Sqlizer) (domain.App, error) {
	sql, args, err := r.Builder.Select(appColumns...).From("apps").Where(cond).ToSql()
	if err != nil {
		return domain.App{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.App{}, errorsUtils.WrapPathErr(err)
	}

	app, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.App])
	if err != nil {
		return domain.App{}, mapReadErr(err)
	}
	return app, nil
}

func (r *AppRepo) ListAppsByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]domain.App, error) {
	if len(projectIDs) == 0 {
		return []domain.App{}, nil
	}

	sql, args, err := r.Builder.
		Select(appColumns...).
		From("apps").
		Where(sq.Eq{"project_id": projectIDs}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.App])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return apps, nil
}

func (r *AppRepo) UpdateApp(ctx context.Context, a *domain.App) error {
	sql, args, err := r.Builder.
		Update("apps").
		Set("name", a.Name).
		Set("api_key", a.APIKey).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return mapWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}
	return nil
}

func (r *AppRepo) DeleteApp(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.Builder.Delete("apps").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return mapWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}
	return nil
}

func (r *AppRepo) DeleteAppsByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	sql, args, err := r.Builder.Delete("apps").Where(sq.Eq{"project_id": projectID}).ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapWriteErr(err)
	}
	return tag.RowsAffected(), nil
}
