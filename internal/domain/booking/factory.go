package booking

import (
	"time"

	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type PriceCalculator interface {
	Total(dates []time.Time, rooms int) int64
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

type CreateParams struct {
	UserID    *uuid.UUID
	HotelID   uuid.UUID
	RoomID    uuid.UUID
	Stay      stay.Stay
	Occupancy Occupancy
	Contact   Contact
}

// Create prices the stay and returns a new CONFIRMED booking.
func (f *Factory) Create(p CreateParams, prices PriceCalculator) (*Booking, error) {
	total, err := NewMoney(prices.Total(p.Stay.Dates(), p.Occupancy.Rooms()))
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now().UTC()
	return &Booking{
		id:        uuid.New(),
		userID:    p.UserID,
		hotelID:   p.HotelID,
		roomID:    p.RoomID,
		stay:      p.Stay,
		occupancy: p.Occupancy,
		total:     total,
		status:    StatusConfirmed,
		contact:   p.Contact,
		createdAt: now,
		updatedAt: now,
	}, nil
}
