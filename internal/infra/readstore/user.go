package readstore

import (
	"context"
	"errors"

	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, _, err := r.findOne(ctx, squirrel.Eq{"id": id})
	return view, err
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	return r.findOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserReadStore) findOne(ctx context.Context, pred squirrel.Eq) (*queries.AuthorizedUserView, string, error) {
	sql, args, err := db.Builder.
		Select("id", "email", "name", "user_code", "roles", "is_active", "password_hash").
		From("users").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to build user query", err)
	}

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(&view.ID, &view.Email, &view.Name, &view.UserCode, &view.Roles, &view.IsActive, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	return &view, hash, nil
}
