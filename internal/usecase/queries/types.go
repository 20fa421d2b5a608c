package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	HotelID      uuid.UUID  `json:"hotel_id"`
	HotelName    string     `json:"hotel_name"`
	HotelStatus  string     `json:"hotel_status"`
	RoomID       uuid.UUID  `json:"room_id"`
	RoomName     string     `json:"room_name"`
	RoomPrice    int64      `json:"room_price"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     time.Time  `json:"check_out"`
	RoomsCount   int        `json:"rooms_count"`
	GuestCount   int        `json:"guest_count"`
	TotalAmount  int64      `json:"total_amount"`
	Status       string     `json:"status"`
	ContactName  string     `json:"contact_name"`
	ContactPhone string     `json:"contact_phone"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

const bookingStatusCancelled = "CANCELLED"

// Supersedes reports whether v is at least as new as next, so a cache must keep v.
// CANCELLED is terminal and always wins over an older CONFIRMED read.
func (v *BookingView) Supersedes(next *BookingView) bool {
	if v.Status == bookingStatusCancelled && next.Status != bookingStatusCancelled {
		return true
	}
	if next.Status == bookingStatusCancelled && v.Status != bookingStatusCancelled {
		return false
	}
	return v.UpdatedAt.After(next.UpdatedAt)
}

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	HotelID   uuid.UUID `json:"hotel_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	BasePrice int64     `json:"base_price"`
}

// CalendarDayView is one night of a room: inventory counters plus the resolved price.
type CalendarDayView struct {
	Date       time.Time `json:"date"`
	Total      int       `json:"total"`
	Blocked    int       `json:"blocked"`
	Reserved   int       `json:"reserved"`
	Available  int       `json:"available"`
	Price      int64     `json:"price"`
	PromoType  *string   `json:"promo_type,omitempty"`
	PromoValue *int64    `json:"promo_value,omitempty"`
}
