package dbquery

import (
	"context"

	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, user_id, hotel_id, room_id, check_in, check_out, rooms_count, guest_count,
       total_amount, status, contact_name, contact_phone, created_at, updated_at, cancelled_at`

const insertBooking = `
INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`

func (q *Queries) InsertBooking(ctx context.Context, dbtx db.DBTX, arg Booking) error {
	_, err := dbtx.Exec(ctx, insertBooking,
		arg.ID,
		arg.UserID,
		arg.HotelID,
		arg.RoomID,
		arg.CheckIn,
		arg.CheckOut,
		arg.RoomsCount,
		arg.GuestCount,
		arg.TotalAmount,
		arg.Status,
		arg.ContactName,
		arg.ContactPhone,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.CancelledAt,
	)
	return err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(dbtx.QueryRow(ctx, getBookingByID, id))
}

const getBookingForUpdate = getBookingByID + ` FOR UPDATE`

func (q *Queries) GetBookingForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(dbtx.QueryRow(ctx, getBookingForUpdate, id))
}

const updateBookingStatus = `
UPDATE bookings
SET status = $2, updated_at = $3, cancelled_at = $4
WHERE id = $1
`

func (q *Queries) UpdateBookingStatus(ctx context.Context, dbtx db.DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := dbtx.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt, arg.CancelledAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getBookingView = `
SELECT b.id, b.user_id, b.hotel_id, b.room_id, b.check_in, b.check_out, b.rooms_count, b.guest_count,
       b.total_amount, b.status, b.contact_name, b.contact_phone, b.created_at, b.updated_at, b.cancelled_at,
       h.name, h.status, r.name, r.base_price
FROM bookings b
JOIN hotels h ON h.id = b.hotel_id
JOIN rooms r ON r.id = b.room_id
WHERE b.id = $1
`

func (q *Queries) GetBookingView(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (BookingViewRow, error) {
	var i BookingViewRow
	err := dbtx.QueryRow(ctx, getBookingView, id).Scan(
		&i.ID,
		&i.UserID,
		&i.HotelID,
		&i.RoomID,
		&i.CheckIn,
		&i.CheckOut,
		&i.RoomsCount,
		&i.GuestCount,
		&i.TotalAmount,
		&i.Status,
		&i.ContactName,
		&i.ContactPhone,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CancelledAt,
		&i.HotelName,
		&i.HotelStatus,
		&i.RoomName,
		&i.RoomPrice,
	)
	return i, err
}

func scanBooking(row pgx.Row) (Booking, error) {
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.HotelID,
		&i.RoomID,
		&i.CheckIn,
		&i.CheckOut,
		&i.RoomsCount,
		&i.GuestCount,
		&i.TotalAmount,
		&i.Status,
		&i.ContactName,
		&i.ContactPhone,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CancelledAt,
	)
	return i, err
}
