package readstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CalendarViewQueries interface {
	RoomReadQueries
	ListInventoryDays(ctx context.Context, dbtx db.DBTX, arg dbquery.DateRangeParams) ([]dbquery.InventoryDay, error)
	ListCalendarPrices(ctx context.Context, dbtx db.DBTX, arg dbquery.DateRangeParams) ([]dbquery.CalendarPrice, error)
}

type CalendarReadStore struct {
	queries CalendarViewQueries
	db      db.DBTX
	rooms   *RoomReadStore
}

func NewCalendarReadStore(queries CalendarViewQueries, dbtx db.DBTX) *CalendarReadStore {
	return &CalendarReadStore{
		queries: queries,
		db:      dbtx,
		rooms:   NewRoomReadStore(queries, dbtx),
	}
}

func (r *CalendarReadStore) FindRoom(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	snap, err := r.rooms.RoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return &queries.RoomView{
		ID:        snap.ID,
		HotelID:   snap.HotelID,
		Name:      snap.Name,
		Capacity:  snap.Capacity,
		BasePrice: snap.BasePrice,
	}, nil
}

func (r *CalendarReadStore) FindInventoryDays(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]inventory.Day, error) {
	rows, err := r.queries.ListInventoryDays(ctx, r.db, dateRange(roomID, from, to))
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list inventory days", err)
	}
	return converter.InventoryDaysFromInfra(rows), nil
}

func (r *CalendarReadStore) FindPriceEntries(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]pricing.Entry, error) {
	rows, err := r.queries.ListCalendarPrices(ctx, r.db, dateRange(roomID, from, to))
	if err != nil {
		return nil, infra.WrapPgErr(slog.Default(), "failed to list calendar prices", err)
	}
	return converter.CalendarPricesFromInfra(rows), nil
}

func dateRange(roomID uuid.UUID, from, to time.Time) dbquery.DateRangeParams {
	return dbquery.DateRangeParams{
		RoomID: roomID,
		From:   pgconv.DateToPgtype(from),
		To:     pgconv.DateToPgtype(to),
	}
}
