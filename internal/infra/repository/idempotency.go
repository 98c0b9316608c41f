package repository

import (
	"context"
	"time"

	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, status, request_hash, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	var (
		rec       shared.IdempotencyRecord
		expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, key, userID).Scan(
		&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &rec.ResultBookingID, &expiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency record", err)
	}
	rec.ExpiresAt = expiresAt.Time

	return &rec, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key, userID uuid.UUID, responseHash string, bookingID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed',
			response_body_hash = $3,
			result_booking_id = $4,
			updated_at = now()
		WHERE key = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, key, userID, responseHash, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency record not found", nil, infra.KindNotFound)
	}

	return nil
}
