package pgdb

import (
	"context"

	"github.com/Egor213/LogiDash/internal/domain"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/Egor213/LogiDash/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var userColumns = []string{"id", "username", "email", "password_hash", "role", "created_at"}

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pg *postgres.Postgres) *UserRepo {
	return &UserRepo{pg}
}

func (r *UserRepo) CreateUser(ctx context.Context, u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	sql, args, err := r.Builder.
		Insert("users").
		Columns("id", "username", "email", "password_hash", "role").
		Values(u.ID, u.Username, u.Email, u.PasswordHash, u.Role).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&u.CreatedAt); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *UserRepo) getUser(ctx context.Context, cond sq.Sqlizer) (domain.User, error) {
	sql, args, err := r.Builder.Select(userColumns...).From("users").Where(cond).ToSql()
	if err != nil {
		return domain.User{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.User{}, errorsUtils.WrapPathErr(err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return domain.User{}, mapReadErr(err)
	}
	return user, nil
}
