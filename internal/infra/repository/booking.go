package repository

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, dbtx db.DBTX, arg dbquery.Booking) error
	GetBookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (dbquery.Booking, error)
	GetBookingForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (dbquery.Booking, error)
	UpdateBookingStatus(ctx context.Context, dbtx db.DBTX, arg dbquery.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      db.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInfra(b)); err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, dbquery.UpdateBookingStatusParams{
		ID:          b.ID(),
		Status:      b.Status().String(),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
		CancelledAt: pgconv.TimePtrToPgtype(b.CancelledAt()),
	})
	if err != nil {
		return infra.WrapPgErr(slog.Default(), "failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) toDomain(row dbquery.Booking, err error) (*booking.Booking, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapPgErr(slog.Default(), "failed to find booking", err)
	}
	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to convert booking", err)
	}
	return b, nil
}
