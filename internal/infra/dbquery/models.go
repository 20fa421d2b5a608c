// Package dbquery holds the SQL statements of the service and the row types they
// scan into. Repositories and read stores depend on narrow interfaces over
// *Queries so they can be unit tested with mocks.
package dbquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type RoomWithHotelRow struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	Name        string
	Capacity    int32
	BasePrice   int64
	HotelName   string
	HotelStatus string
	MerchantID  pgtype.UUID
}

type Booking struct {
	ID           uuid.UUID
	UserID       pgtype.UUID
	HotelID      uuid.UUID
	RoomID       uuid.UUID
	CheckIn      pgtype.Date
	CheckOut     pgtype.Date
	RoomsCount   int32
	GuestCount   int32
	TotalAmount  int64
	Status       string
	ContactName  string
	ContactPhone string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
	CancelledAt  pgtype.Timestamptz
}

type BookingViewRow struct {
	Booking
	HotelName   string
	HotelStatus string
	RoomName    string
	RoomPrice   int64
}

type InventoryDay struct {
	RoomID        uuid.UUID
	Date          pgtype.Date
	TotalUnits    int32
	BlockedUnits  int32
	ReservedUnits int32
}

type CalendarPrice struct {
	RoomID     uuid.UUID
	Date       pgtype.Date
	Price      int64
	PromoType  pgtype.Text
	PromoValue pgtype.Int8
}

type IdempotencyKey struct {
	Key         string
	Scope       uuid.UUID
	RequestHash string
	BookingID   uuid.UUID
	ExpiresAt   pgtype.Timestamptz
}

type EnsureInventoryDaysParams struct {
	RoomID   uuid.UUID
	Dates    []pgtype.Date
	Capacity int32
}

type DateRangeParams struct {
	RoomID uuid.UUID
	From   pgtype.Date
	To     pgtype.Date
}

type UpdateBookingStatusParams struct {
	ID          uuid.UUID
	Status      string
	UpdatedAt   pgtype.Timestamptz
	CancelledAt pgtype.Timestamptz
}
