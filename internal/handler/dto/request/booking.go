package request

import (
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Dates accept YYYY-MM-DD or RFC 3339; parse failures surface as INVALID_RANGE.
type CreateBookingRequest struct {
	HotelID      uuid.UUID  `json:"hotel_id" binding:"required"`
	RoomID       uuid.UUID  `json:"room_id" binding:"required"`
	CheckIn      string     `json:"check_in" binding:"required"`
	CheckOut     string     `json:"check_out" binding:"required"`
	RoomsCount   int        `json:"rooms_count" binding:"required,min=1"`
	GuestCount   int        `json:"guest_count" binding:"required,min=1"`
	ContactName  string     `json:"contact_name" binding:"required,notblank,max=100"`
	ContactPhone string     `json:"contact_phone" binding:"required,notblank,max=32"`
	UserID       *uuid.UUID `json:"user_id"`
}

func (r *CreateBookingRequest) ToInput(userID *uuid.UUID, idempotencyKey string) (commands.CreateBookingInput, error) {
	checkIn, err := stay.ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := stay.ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	return commands.CreateBookingInput{
		HotelID:        r.HotelID,
		RoomID:         r.RoomID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		RoomsCount:     r.RoomsCount,
		GuestCount:     r.GuestCount,
		ContactName:    r.ContactName,
		ContactPhone:   r.ContactPhone,
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
	}, nil
}
