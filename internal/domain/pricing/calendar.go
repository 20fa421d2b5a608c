package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("price cannot be negative")

const dateKey = "2006-01-02"

// Entry overrides a room's base price for one date.
type Entry struct {
	RoomID     uuid.UUID
	Date       time.Time
	Price      int64
	PromoType  *string
	PromoValue *int64
}

func NewEntry(roomID uuid.UUID, date time.Time, price int64, promoType *string, promoValue *int64) (Entry, error) {
	if price < 0 {
		return Entry{}, ErrNegativePrice
	}
	if promoValue != nil && *promoValue < 0 {
		return Entry{}, ErrNegativePrice
	}
	return Entry{
		RoomID:     roomID,
		Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Price:      price,
		PromoType:  promoType,
		PromoValue: promoValue,
	}, nil
}

// Calendar resolves nightly prices for one room: an override when present,
// otherwise the room's base price.
type Calendar struct {
	basePrice int64
	entries   map[string]Entry
}

func NewCalendar(basePrice int64, entries []Entry) *Calendar {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Date.UTC().Format(dateKey)] = e
	}
	return &Calendar{basePrice: basePrice, entries: m}
}

func (c *Calendar) Entry(date time.Time) (Entry, bool) {
	e, ok := c.entries[date.UTC().Format(dateKey)]
	return e, ok
}

func (c *Calendar) NightlyPrice(date time.Time) int64 {
	if e, ok := c.Entry(date); ok {
		return e.Price
	}
	return c.basePrice
}

// Total is rooms × the sum of nightly prices over dates.
func (c *Calendar) Total(dates []time.Time, rooms int) int64 {
	var sum int64
	for _, d := range dates {
		sum += c.NightlyPrice(d)
	}
	return sum * int64(rooms)
}
