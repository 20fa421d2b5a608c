package catalog

import "github.com/google/uuid"

type HotelStatus string

const (
	HotelPending   HotelStatus = "pending"
	HotelApproved  HotelStatus = "approved"
	HotelPublished HotelStatus = "published"
	HotelRejected  HotelStatus = "rejected"
	HotelOffline   HotelStatus = "offline"
)

func (s HotelStatus) String() string {
	return string(s)
}

func (s HotelStatus) IsBookable() bool {
	return s == HotelApproved || s == HotelPublished
}

type Hotel struct {
	ID         uuid.UUID
	Name       string
	Status     HotelStatus
	MerchantID *uuid.UUID
}

func (h Hotel) IsBookable() bool {
	return h.Status.IsBookable()
}

// Room is read-only for booking logic. BasePrice is in minor units.
type Room struct {
	ID        uuid.UUID
	HotelID   uuid.UUID
	Name      string
	Capacity  int
	BasePrice int64
}

func (r Room) BelongsTo(hotelID uuid.UUID) bool {
	return r.HotelID == hotelID
}
