package shared

import (
	"time"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshot of the catalog collaborators a booking depends on
type RoomSnapshot struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	Name        string
	Capacity    int
	BasePrice   int64
	HotelName   string
	HotelStatus catalog.HotelStatus
	MerchantID  *uuid.UUID
}

func (s *RoomSnapshot) Room() catalog.Room {
	return catalog.Room{
		ID:        s.ID,
		HotelID:   s.HotelID,
		Name:      s.Name,
		Capacity:  s.Capacity,
		BasePrice: s.BasePrice,
	}
}

func (s *RoomSnapshot) Hotel() catalog.Hotel {
	return catalog.Hotel{
		ID:         s.HotelID,
		Name:       s.HotelName,
		Status:     s.HotelStatus,
		MerchantID: s.MerchantID,
	}
}

// Scope is uuid.Nil for anonymous callers.
type IdempotencyRecord struct {
	Key         string
	Scope       uuid.UUID
	RequestHash string
	BookingID   uuid.UUID
	ExpiresAt   time.Time
}

// Actor is the caller identity resolved by the HTTP layer. UserID is nil for anonymous callers.
type Actor struct {
	UserID *uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

func (a Actor) Scope() uuid.UUID {
	if a.UserID == nil {
		return uuid.Nil
	}
	return *a.UserID
}
