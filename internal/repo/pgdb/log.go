package pgdb

import (
	"context"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/Egor213/LogiDash/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var logColumns = []string{"id", "app_id", "source", "level", "message", "logged_at"}

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) CreateLog(ctx context.Context, l *domain.Log) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	sql, args, err := r.Builder.
		Insert("logs").
		Columns(logColumns...).
		Values(l.ID, l.AppID, l.Source, l.Level, l.Message, l.Timestamp).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *LogRepo) GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.Log, error) {
	query := r.Builder.
		Select(logColumns...).
		From("logs").
		OrderBy("logged_at DESC", "id")

	if conds := BuildLogQueryFilters(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	query = applyPaging(query, filter.Limit, filter.Offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Log])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return logs, nil
}

func (r *LogRepo) CountLogs(ctx context.Context, filter repotypes.LogFilter) (int, error) {
	query := r.Builder.Select("COUNT(*)").From("logs")
	if conds := BuildLogQueryFilters(filter); len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var total int
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return total, nil
}

func (r *LogRepo) DeleteLogsByApp(ctx context.Context, appID uuid.UUID) (int64, error) {
	sql, args, err := r.Builder.Delete("logs").Where(sq.Eq{"app_id": appID}).ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return tag.RowsAffected(), nil
}
