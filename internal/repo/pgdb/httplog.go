package pgdb

import (
	"context"
	"time"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/Egor213/LogiDash/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var httpLogColumns = []string{
	"id", "app_id", "source", "method", "url", "status_code",
	"headers", "params", "query", "body", "response", "ip", "user_agent", "logged_at",
}

type HttpLogRepo struct {
	*postgres.Postgres
}

func NewHttpLogRepo(pg *postgres.Postgres) *HttpLogRepo {
	return &HttpLogRepo{pg}
}

func (r *HttpLogRepo) CreateHttpLog(ctx context.Context, l *domain.HttpLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	sql, args, err := r.Builder.
		Insert("http_logs").
		Columns(httpLogColumns...).
		Values(
			l.ID, l.AppID, l.Source, l.Method, l.URL, l.StatusCode,
			l.Headers, l.Params, l.Query, l.Body, l.Response, l.IP, l.UserAgent, l.Timestamp,
		).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *HttpLogRepo) GetHttpLogs(ctx context.Context, filter repotypes.HttpLogFilter) ([]domain.HttpLog, error) {
	query := r.Builder.
		Select(httpLogColumns...).
		From("http_logs").
		OrderBy("logged_at DESC", "id")

	if conds := BuildHttpLogQueryFilters(filter); len(conds) > 0 {
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

	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.HttpLog])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return logs, nil
}

func (r *HttpLogRepo) CountHttpLogs(ctx context.Context, filter repotypes.HttpLogFilter) (int, error) {
	query := r.Builder.Select("COUNT(*)").From("http_logs")
	if conds := BuildHttpLogQueryFilters(filter); len(conds) > 0 {
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

func (r *HttpLogRepo) DeleteAllHttpLogs(ctx context.Context) (int64, error) {
	sql, args, err := r.Builder.Delete("http_logs").ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return tag.RowsAffected(), nil
}

func (r *HttpLogRepo) DeleteHttpLogsByApp(ctx context.Context, appID uuid.UUID) (int64, error) {
	sql, args, err := r.Builder.Delete("http_logs").Where(sq.Eq{"app_id": appID}).ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return tag.RowsAffected(), nil
}

// CountByHour groups the window by the wall-clock hour in window.Location.
func (r *HttpLogRepo) CountByHour(ctx context.Context, window repotypes.HourWindow) ([]domain.HourCount, error) {
	sql, args, err := r.Builder.
		Select().
		Column(sq.Expr("date_trunc('hour', logged_at AT TIME ZONE ?) AS hour", window.Location)).
		Column("COUNT(*) AS count").
		From("http_logs").
		Where(sq.And(BuildHourWindowFilters(window))).
		GroupBy("1").
		OrderBy("1").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.HourCount])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return counts, nil
}

func (r *HttpLogRepo) CountByStatusCode(ctx context.Context, appID uuid.UUID, since time.Time) ([]domain.StatusCount, error) {
	sql, args, err := r.Builder.
		Select("status_code", "COUNT(*) AS count").
		From("http_logs").
		Where(sq.Eq{"app_id": appID}).
		Where(sq.GtOrEq{"logged_at": since}).
		GroupBy("status_code").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.StatusCount])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return counts, nil
}
