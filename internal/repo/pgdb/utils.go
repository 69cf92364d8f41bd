package pgdb

import (
	"github.com/Egor213/LogiDash/internal/repo/repoerrs"
	"github.com/Egor213/LogiDash/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const ownedAppsSubquery = "app_id IN (SELECT a.id FROM apps a JOIN projects p ON p.id = a.project_id WHERE p.user_id = ?)"

func ownedByUser(userID uuid.UUID) sq.Sqlizer {
	return sq.Expr(ownedAppsSubquery, userID)
}

func BuildHttpLogQueryFilters(filter repotypes.HttpLogFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.UserID != uuid.Nil {
		conds = append(conds, ownedByUser(filter.UserID))
	}
	if filter.AppID != uuid.Nil {
		conds = append(conds, sq.Eq{"app_id": filter.AppID})
	}
	if filter.Source != "" {
		conds = append(conds, sq.Eq{"source": filter.Source})
	}
	if filter.Method != "" {
		conds = append(conds, sq.Eq{"method": filter.Method})
	}
	if filter.URL != "" {
		conds = append(conds, sq.Eq{"url": filter.URL})
	}
	if filter.StatusCode != nil {
		conds = append(conds, sq.Eq{"status_code": *filter.StatusCode})
	}
	if !filter.From.IsZero() {
		conds = append(conds, sq.GtOrEq{"logged_at": filter.From})
	}
	if !filter.To.IsZero() {
		conds = append(conds, sq.LtOrEq{"logged_at": filter.To})
	}

	return conds
}

func BuildLogQueryFilters(filter repotypes.LogFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.UserID != uuid.Nil {
		conds = append(conds, ownedByUser(filter.UserID))
	}
	if filter.AppID != uuid.Nil {
		conds = append(conds, sq.Eq{"app_id": filter.AppID})
	}
	if filter.Source != "" {
		conds = append(conds, sq.Eq{"source": filter.Source})
	}
	if filter.Level != "" {
		conds = append(conds, sq.Eq{"level": filter.Level})
	}

	return conds
}

func BuildHourWindowFilters(window repotypes.HourWindow) []sq.Sqlizer {
	conds := []sq.Sqlizer{
		sq.Eq{"app_id": window.AppID},
		sq.GtOrEq{"logged_at": window.From},
		sq.Lt{"logged_at": window.To},
	}
	if window.ErrorsOnly {
		conds = append(conds, sq.GtOrEq{"status_code": 400})
	}
	return conds
}

func applyPaging(query sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}
	return query
}

// mapWriteErr translates constraint violations into repoerrs sentinels.
func mapWriteErr(err error) error {
	switch {
	case errorsUtils.IsUniqueViolation(err):
		return errorsUtils.WrapPathErr(repoerrs.ErrAlreadyExists)
	case errorsUtils.IsForeignKeyViolation(err):
		return errorsUtils.WrapPathErr(repoerrs.ErrReferenced)
	default:
		return errorsUtils.WrapPathErr(err)
	}
}

func mapReadErr(err error) error {
	if errorsUtils.IsNoRows(err) {
		return errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}
	return errorsUtils.WrapPathErr(err)
}
