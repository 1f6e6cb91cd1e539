package repository

import (
	"context"
	"errors"
	"time"

	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/infra/repository/converter"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	sql, args, err := db.Builder.Select(converter.UserColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var row converter.UserRow
	if err := r.db.QueryRow(ctx, sql, args...).Scan(row.ScanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	sql, args, err := db.Builder.Update("users").
		Set("last_login", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build last login update", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
