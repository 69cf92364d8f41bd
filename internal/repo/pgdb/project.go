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

var projectColumns = []string{"id", "name", "description", "url", "user_id", "created_at"}

type ProjectRepo struct {
	*postgres.Postgres
}

func NewProjectRepo(pg *postgres.Postgres) *ProjectRepo {
	return &ProjectRepo{pg}
}

func (r *ProjectRepo) CreateProject(ctx context.Context, p *domain.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	sql, args, err := r.Builder.
		Insert("projects").
		Columns("id", "name", "description", "url", "user_id").
		Values(p.ID, p.Name, p.Description, p.URL, p.UserID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&p.CreatedAt); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, id uuid.UUID) (domain.Project, error) {
	sql, args, err := r.Builder.Select(projectColumns...).From("projects").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Project{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Project{}, errorsUtils.WrapPathErr(err)
	}

	project, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		return domain.Project{}, mapReadErr(err)
	}
	return project, nil
}

func (r *ProjectRepo) ListProjectsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	sql, args, err := r.Builder.
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"user_id": userID}).
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

	projects, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return projects, nil
}

func (r *ProjectRepo) DeleteProject(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.Builder.Delete("projects").Where(sq.Eq{"id": id}).ToSql()
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
