package readstore

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (dbquery.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      db.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapPgErr(slog.Default(), "failed to find booking view", err)
	}
	return rowToBookingView(row), nil
}

func rowToBookingView(row dbquery.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:           row.ID,
		UserID:       pgconv.UUIDPtrFromPgtype(row.UserID),
		HotelID:      row.HotelID,
		HotelName:    row.HotelName,
		HotelStatus:  row.HotelStatus,
		RoomID:       row.RoomID,
		RoomName:     row.RoomName,
		RoomPrice:    row.RoomPrice,
		CheckIn:      pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:     pgconv.DateFromPgtype(row.CheckOut),
		RoomsCount:   int(row.RoomsCount),
		GuestCount:   int(row.GuestCount),
		TotalAmount:  row.TotalAmount,
		Status:       row.Status,
		ContactName:  row.ContactName,
		ContactPhone: row.ContactPhone,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
		CancelledAt:  pgconv.TimePtrFromPgtype(row.CancelledAt),
	}
}
