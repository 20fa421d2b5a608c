package dbquery

import (
	"context"

	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getIdempotencyKey = `
SELECT key, scope, request_hash, booking_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND scope = $2 AND expires_at > $3
`

func (q *Queries) GetIdempotencyKey(ctx context.Context, dbtx db.DBTX, key string, scope uuid.UUID, now pgtype.Timestamptz) (IdempotencyKey, error) {
	var i IdempotencyKey
	err := dbtx.QueryRow(ctx, getIdempotencyKey, key, scope, now).Scan(
		&i.Key,
		&i.Scope,
		&i.RequestHash,
		&i.BookingID,
		&i.ExpiresAt,
	)
	return i, err
}

// An expired record for the same key is replaced; a live one is left alone and
// the call reports zero affected rows.
const insertIdempotencyKey = `
INSERT INTO idempotency_keys (key, scope, request_hash, booking_id, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (key, scope) DO UPDATE
SET request_hash = EXCLUDED.request_hash,
    booking_id = EXCLUDED.booking_id,
    expires_at = EXCLUDED.expires_at,
    created_at = now()
WHERE idempotency_keys.expires_at <= now()
`

func (q *Queries) InsertIdempotencyKey(ctx context.Context, dbtx db.DBTX, arg IdempotencyKey) (int64, error) {
	tag, err := dbtx.Exec(ctx, insertIdempotencyKey, arg.Key, arg.Scope, arg.RequestHash, arg.BookingID, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
