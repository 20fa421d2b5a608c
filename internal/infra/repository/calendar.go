package repository

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CalendarWriteQueries interface {
	ListCalendarPrices(ctx context.Context, dbtx db.DBTX, arg dbquery.DateRangeParams) ([]dbquery.CalendarPrice, error)
	UpsertCalendarPrice(ctx context.Context, dbtx db.DBTX, arg dbquery.CalendarPrice) error
}

type CalendarRepository struct {
	queries CalendarWriteQueries
	db      db.DBTX
}

func NewCalendarRepository(queries CalendarWriteQueries, dbtx db.DBTX) *CalendarRepository {
	return &CalendarRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *CalendarRepository) FindEntries(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]pricing.Entry, error) {
	rows, err := r.queries.ListCalendarPrices(ctx, r.db, dbquery.DateRangeParams{
		RoomID: roomID,
		From:   pgconv.DateToPgtype(from),
		To:     pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list calendar prices", err)
	}
	return converter.CalendarPricesFromInfra(rows), nil
}

func (r *CalendarRepository) Upsert(ctx context.Context, e pricing.Entry) error {
	if err := r.queries.UpsertCalendarPrice(ctx, r.db, converter.CalendarPriceToInfra(e)); err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to upsert calendar price", err)
	}
	return nil
}
