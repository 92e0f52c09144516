package repository

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

func (r *IdempotencyRepository) Find(ctx context.Context, key string, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec := shared.IdempotencyRecord{Key: key, UserID: userID}
	err := r.db.QueryRow(ctx, `
		SELECT endpoint, request_hash, booking_id, expires_at, created_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2
		FOR UPDATE`, key, userID,
	).Scan(&rec.Endpoint, &rec.RequestHash, &rec.BookingID, &rec.ExpiresAt, &rec.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) Save(ctx context.Context, rec shared.IdempotencyRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, booking_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.Key, rec.UserID, rec.Endpoint, rec.RequestHash, rec.BookingID, rec.ExpiresAt, rec.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) Delete(ctx context.Context, key string, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM idempotency_keys WHERE key = $1 AND user_id = $2`, key, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM idempotency_keys WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
