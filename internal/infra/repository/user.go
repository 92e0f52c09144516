package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	var (
		id                   uuid.UUID
		name, emailStr, hash string
		role                 string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1`, email.Value(),
	).Scan(&id, &name, &emailStr, &hash, &role, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	stored, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	return user.ReconstructUser(id, name, stored, hash, user.Role(role), createdAt.UTC(), updatedAt.UTC()), nil
}
