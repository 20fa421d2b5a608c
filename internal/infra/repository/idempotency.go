package repository

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	GetIdempotencyKey(ctx context.Context, dbtx db.DBTX, key string, scope uuid.UUID, now pgtype.Timestamptz) (dbquery.IdempotencyKey, error)
	InsertIdempotencyKey(ctx context.Context, dbtx db.DBTX, arg dbquery.IdempotencyKey) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      db.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *IdempotencyRepository) Find(ctx context.Context, key string, scope uuid.UUID, now time.Time) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, key, scope, pgconv.TimeToPgtype(now))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "idempotency key not found", err)
		}
		return nil, infra.WrapPgErr(slog.Default(), "failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:         row.Key,
		Scope:       row.Scope,
		RequestHash: row.RequestHash,
		BookingID:   row.BookingID,
		ExpiresAt:   row.ExpiresAt.Time,
	}, nil
}

func (r *IdempotencyRepository) Save(ctx context.Context, rec shared.IdempotencyRecord) error {
	n, err := r.queries.InsertIdempotencyKey(ctx, r.db, dbquery.IdempotencyKey{
		Key:         rec.Key,
		Scope:       rec.Scope,
		RequestHash: rec.RequestHash,
		BookingID:   rec.BookingID,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
	})
	if err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to save idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "idempotency key already in use", nil)
	}
	return nil
}
