package request

import (
	"time"

	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CalendarQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q *CalendarQuery) Range() (from, to time.Time, err error) {
	if from, err = stay.ParseDate(q.From); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to, err = stay.ParseDate(q.To); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

type UpsertPriceRequest struct {
	Price      *int64  `json:"price" binding:"required,min=0"`
	PromoType  *string `json:"promo_type" binding:"omitempty,notblank,max=32"`
	PromoValue *int64  `json:"promo_value" binding:"omitempty,min=0"`
}

func (r *UpsertPriceRequest) ToInput(roomID uuid.UUID, date time.Time, actor shared.Actor) commands.UpsertPriceInput {
	return commands.UpsertPriceInput{
		RoomID:     roomID,
		Date:       date,
		Price:      *r.Price,
		PromoType:  r.PromoType,
		PromoValue: r.PromoValue,
		Actor:      actor,
	}
}

// Omitted fields keep their current value; at least one is required.
type SetInventoryRequest struct {
	TotalUnits   *int `json:"total_units" binding:"required_without=BlockedUnits,omitempty,min=0"`
	BlockedUnits *int `json:"blocked_units" binding:"required_without=TotalUnits,omitempty,min=0"`
}

func (r *SetInventoryRequest) ToInput(roomID uuid.UUID, date time.Time) commands.SetInventoryInput {
	return commands.SetInventoryInput{
		RoomID:       roomID,
		Date:         date,
		TotalUnits:   r.TotalUnits,
		BlockedUnits: r.BlockedUnits,
	}
}
