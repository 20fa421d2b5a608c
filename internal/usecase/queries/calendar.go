package queries

import (
	"context"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type CalendarQueries interface {
	RoomCalendar(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*CalendarDayView, error)
}

// CalendarReadStore reads without locks; ranges are from <= date < to.
type CalendarReadStore interface {
	FindRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error)
	FindInventoryDays(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]inventory.Day, error)
	FindPriceEntries(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]pricing.Entry, error)
}

type calendarQueriesImpl struct {
	store   CalendarReadStore
	maxDays int
}

func NewCalendarQueries(store CalendarReadStore, maxDays int) CalendarQueries {
	return &calendarQueriesImpl{store: store, maxDays: maxDays}
}

func (q *calendarQueriesImpl) RoomCalendar(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*CalendarDayView, error) {
	dates, err := stay.Expand(from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}
	if q.maxDays > 0 && len(dates) > q.maxDays {
		return nil, errs.Wrapf(errs.ErrInvalidRange, "range exceeds %d days", q.maxDays)
	}
	from, to = stay.Normalize(from), stay.Normalize(to)

	room, err := q.store.FindRoom(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	days, err := q.store.FindInventoryDays(ctx, roomID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read inventory")
	}
	entries, err := q.store.FindPriceEntries(ctx, roomID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read prices")
	}

	byDate := make(map[time.Time]inventory.Day, len(days))
	for _, d := range days {
		byDate[stay.Normalize(d.Date)] = d
	}
	cal := pricing.NewCalendar(room.BasePrice, entries)

	out := make([]*CalendarDayView, 0, len(dates))
	for _, date := range dates {
		d, ok := byDate[date]
		if !ok {
			d = inventory.NewDay(roomID, date, room.Capacity)
		}
		view := &CalendarDayView{
			Date:      date,
			Total:     d.TotalUnits,
			Blocked:   d.BlockedUnits,
			Reserved:  d.ReservedUnits,
			Available: d.Available(),
			Price:     cal.NightlyPrice(date),
		}
		if e, ok := cal.Entry(date); ok {
			view.PromoType = e.PromoType
			view.PromoValue = e.PromoValue
		}
		out = append(out, view)
	}
	return out, nil
}
