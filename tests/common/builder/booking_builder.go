//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/stay"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	UserID       *uuid.UUID
	HotelID      uuid.UUID
	HotelName    string
	HotelStatus  string
	RoomID       uuid.UUID
	RoomName     string
	RoomPrice    int64
	CheckIn      time.Time
	CheckOut     time.Time
	RoomsCount   int
	GuestCount   int
	TotalAmount  int64
	Status       booking.Status
	ContactName  string
	ContactPhone string
	CreatedAt    time.Time
	CancelledAt  *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	userID := uuid.New()
	return &BookingBuilder{
		ID:           uuid.New(),
		UserID:       &userID,
		HotelID:      uuid.New(),
		HotelName:    "Test Hotel",
		HotelStatus:  "published",
		RoomID:       uuid.New(),
		RoomName:     "Deluxe Twin",
		RoomPrice:    10000,
		CheckIn:      time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2030, 3, 3, 0, 0, 0, 0, time.UTC),
		RoomsCount:   1,
		GuestCount:   2,
		TotalAmount:  20000,
		Status:       booking.StatusConfirmed,
		ContactName:  "Taro Yamada",
		ContactPhone: "+81-90-1234-5678",
		CreatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	s, err := stay.New(b.CheckIn, b.CheckOut, 0)
	if err != nil {
		return nil, err
	}
	occupancy, err := booking.NewOccupancy(b.RoomsCount, b.GuestCount)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoney(b.TotalAmount)
	if err != nil {
		return nil, err
	}
	contact, err := booking.NewContact(b.ContactName, b.ContactPhone)
	if err != nil {
		return nil, err
	}
	updatedAt := b.CreatedAt
	if b.CancelledAt != nil {
		updatedAt = *b.CancelledAt
	}
	return booking.Reconstruct(b.ID, b.UserID, b.HotelID, b.RoomID, s, occupancy, total, b.Status, contact,
		b.CreatedAt, updatedAt, b.CancelledAt), nil
}

func (b *BookingBuilder) BuildRow() (dbquery.Booking, error) {
	d, err := b.BuildDomain()
	if err != nil {
		return dbquery.Booking{}, err
	}
	return converter.BookingToInfra(d), nil
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HotelID:      b.HotelID,
		RoomID:       b.RoomID,
		CheckIn:      stay.FormatDate(b.CheckIn),
		CheckOut:     stay.FormatDate(b.CheckOut),
		RoomsCount:   b.RoomsCount,
		GuestCount:   b.GuestCount,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
	}
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		HotelID:      b.HotelID,
		RoomID:       b.RoomID,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		RoomsCount:   b.RoomsCount,
		GuestCount:   b.GuestCount,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		UserID:       b.UserID,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	updatedAt := b.CreatedAt
	if b.CancelledAt != nil {
		updatedAt = *b.CancelledAt
	}
	return &queries.BookingView{
		ID:           b.ID,
		UserID:       b.UserID,
		HotelID:      b.HotelID,
		HotelName:    b.HotelName,
		HotelStatus:  b.HotelStatus,
		RoomID:       b.RoomID,
		RoomName:     b.RoomName,
		RoomPrice:    b.RoomPrice,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		RoomsCount:   b.RoomsCount,
		GuestCount:   b.GuestCount,
		TotalAmount:  b.TotalAmount,
		Status:       b.Status.String(),
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    updatedAt,
		CancelledAt:  b.CancelledAt,
	}
}

func (b *BookingBuilder) BuildViewRow() (dbquery.BookingViewRow, error) {
	row, err := b.BuildRow()
	if err != nil {
		return dbquery.BookingViewRow{}, err
	}
	return dbquery.BookingViewRow{
		Booking:     row,
		HotelName:   b.HotelName,
		HotelStatus: b.HotelStatus,
		RoomName:    b.RoomName,
		RoomPrice:   b.RoomPrice,
	}, nil
}
