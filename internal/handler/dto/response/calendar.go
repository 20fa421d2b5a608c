package response

import (
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CalendarDayResponse struct {
	Date       string  `json:"date"`
	Total      int     `json:"total"`
	Blocked    int     `json:"blocked"`
	Reserved   int     `json:"reserved"`
	Available  int     `json:"available"`
	Price      int64   `json:"price"`
	PromoType  *string `json:"promo_type,omitempty"`
	PromoValue *int64  `json:"promo_value,omitempty"`
}

type RoomCalendarResponse struct {
	RoomID uuid.UUID              `json:"room_id"`
	From   string                 `json:"from"`
	To     string                 `json:"to"`
	Days   []*CalendarDayResponse `json:"days"`
}

func FromCalendarDays(roomID uuid.UUID, from, to string, days []*queries.CalendarDayView) (*RoomCalendarResponse, error) {
	out := make([]*CalendarDayResponse, 0, len(days))
	if err := copier.CopyWithOption(&out, days, dateOption); err != nil {
		return nil, err
	}
	return &RoomCalendarResponse{RoomID: roomID, From: from, To: to, Days: out}, nil
}

type PriceEntryResponse struct {
	RoomID     uuid.UUID `json:"room_id"`
	Date       string    `json:"date"`
	Price      int64     `json:"price"`
	PromoType  *string   `json:"promo_type,omitempty"`
	PromoValue *int64    `json:"promo_value,omitempty"`
}

func FromPriceEntry(e *pricing.Entry) (*PriceEntryResponse, error) {
	var res PriceEntryResponse
	if err := copier.CopyWithOption(&res, e, dateOption); err != nil {
		return nil, err
	}
	return &res, nil
}

type InventoryDayResponse struct {
	RoomID         uuid.UUID `json:"room_id"`
	Date           string    `json:"date"`
	TotalUnits     int       `json:"total_units"`
	BlockedUnits   int       `json:"blocked_units"`
	ReservedUnits  int       `json:"reserved_units"`
	AvailableUnits int       `json:"available_units"`
}

func FromInventoryDay(d *inventory.Day) (*InventoryDayResponse, error) {
	var res InventoryDayResponse
	if err := copier.CopyWithOption(&res, d, dateOption); err != nil {
		return nil, err
	}
	res.AvailableUnits = d.Available()
	return &res, nil
}
