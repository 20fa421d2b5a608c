//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// RoomBuilder describes one room together with the hotel it belongs to.
type RoomBuilder struct {
	HotelID     uuid.UUID
	HotelName   string
	HotelStatus catalog.HotelStatus
	MerchantID  *uuid.UUID
	RoomID      uuid.UUID
	RoomName    string
	Capacity    int
	BasePrice   int64
}

func NewRoomBuilder() *RoomBuilder {
	merchantID := uuid.New()
	return &RoomBuilder{
		HotelID:     uuid.New(),
		HotelName:   "Test Hotel",
		HotelStatus: catalog.HotelPublished,
		MerchantID:  &merchantID,
		RoomID:      uuid.New(),
		RoomName:    "Deluxe Twin",
		Capacity:    5,
		BasePrice:   10000,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildHotel() catalog.Hotel {
	return catalog.Hotel{ID: r.HotelID, Name: r.HotelName, Status: r.HotelStatus, MerchantID: r.MerchantID}
}

func (r *RoomBuilder) BuildRoom() catalog.Room {
	return catalog.Room{ID: r.RoomID, HotelID: r.HotelID, Name: r.RoomName, Capacity: r.Capacity, BasePrice: r.BasePrice}
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:          r.RoomID,
		HotelID:     r.HotelID,
		Name:        r.RoomName,
		Capacity:    r.Capacity,
		BasePrice:   r.BasePrice,
		HotelName:   r.HotelName,
		HotelStatus: r.HotelStatus,
		MerchantID:  r.MerchantID,
	}
}
