package repository

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryWriteQueries interface {
	EnsureInventoryDays(ctx context.Context, dbtx db.DBTX, arg dbquery.EnsureInventoryDaysParams) error
	LockInventoryDays(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, dates []pgtype.Date) ([]dbquery.InventoryDay, error)
	UpdateInventoryDays(ctx context.Context, dbtx db.DBTX, days []dbquery.InventoryDay) error
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      db.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *InventoryRepository) EnsureDays(ctx context.Context, roomID uuid.UUID, dates []time.Time, capacity int) error {
	err := r.queries.EnsureInventoryDays(ctx, r.db, dbquery.EnsureInventoryDaysParams{
		RoomID:   roomID,
		Dates:    pgconv.DatesToPgtype(dates),
		Capacity: int32(capacity),
	})
	if err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to materialize inventory days", err)
	}
	return nil
}

func (r *InventoryRepository) LockDays(ctx context.Context, roomID uuid.UUID, dates []time.Time) ([]inventory.Day, error) {
	rows, err := r.queries.LockInventoryDays(ctx, r.db, roomID, pgconv.DatesToPgtype(dates))
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to lock inventory days", err)
	}
	return converter.InventoryDaysFromInfra(rows), nil
}

func (r *InventoryRepository) SaveDays(ctx context.Context, days []inventory.Day) error {
	rows := make([]dbquery.InventoryDay, len(days))
	for i, d := range days {
		rows[i] = converter.InventoryDayToInfra(d)
	}
	if err := r.queries.UpdateInventoryDays(ctx, r.db, rows); err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to save inventory days", err)
	}
	return nil
}
