package memory

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/infra/repository/converter"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// tx reads through its own staged writes to the committed maps. The store
// mutex is already held, so nothing here locks.
type tx struct {
	s *Store

	bookings    map[uuid.UUID]dbquery.Booking
	days        map[dayKey]inventory.Day
	prices      map[dayKey]pricing.Entry
	idempotency map[idempotencyKey]shared.IdempotencyRecord
}

func newTx(s *Store) *tx {
	return &tx{
		s:           s,
		bookings:    make(map[uuid.UUID]dbquery.Booking),
		days:        make(map[dayKey]inventory.Day),
		prices:      make(map[dayKey]pricing.Entry),
		idempotency: make(map[idempotencyKey]shared.IdempotencyRecord),
	}
}

func (t *tx) commit() {
	for k, v := range t.bookings {
		t.s.bookings[k] = v
	}
	for k, v := range t.days {
		t.s.days[k] = v
	}
	for k, v := range t.prices {
		t.s.prices[k] = v
	}
	for k, v := range t.idempotency {
		t.s.idempotency[k] = v
	}
}

func (t *tx) Bookings() shared.BookingRepository        { return bookingRepo{t} }
func (t *tx) Inventory() shared.InventoryRepository     { return inventoryRepo{t} }
func (t *tx) Calendar() shared.CalendarRepository       { return calendarRepo{t} }
func (t *tx) Idempotency() shared.IdempotencyRepository { return idempotencyRepo{t} }
func (t *tx) Reads() shared.CommandReads                { return reads{t} }

func (t *tx) booking(id uuid.UUID) (dbquery.Booking, bool) {
	if row, ok := t.bookings[id]; ok {
		return row, true
	}
	row, ok := t.s.bookings[id]
	return row, ok
}

func (t *tx) day(k dayKey) (inventory.Day, bool) {
	if d, ok := t.days[k]; ok {
		return d, true
	}
	d, ok := t.s.days[k]
	return d, ok
}

type reads struct{ t *tx }

func (r reads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	return r.t.s.roomSnapshot(id)
}

type bookingRepo struct{ t *tx }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.t.booking(b.ID()); ok {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "booking already exists", nil)
	}
	if _, ok := r.t.s.rooms[b.RoomID()]; !ok {
		return infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, "booking references an unknown room", nil)
	}
	r.t.bookings[b.ID()] = converter.BookingToInfra(b)
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, ok := r.t.booking(id)
	if !ok {
		return nil, notFound("booking not found")
	}
	return converter.BookingFromInfra(row)
}

// FindForUpdate needs no row lock: the store mutex already excludes other transactions.
func (r bookingRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	row, ok := r.t.booking(b.ID())
	if !ok {
		return notFound("booking not found")
	}
	next := converter.BookingToInfra(b)
	row.Status = next.Status
	row.UpdatedAt = next.UpdatedAt
	row.CancelledAt = next.CancelledAt
	r.t.bookings[b.ID()] = row
	return nil
}

type inventoryRepo struct{ t *tx }

func (r inventoryRepo) EnsureDays(_ context.Context, roomID uuid.UUID, dates []time.Time, capacity int) error {
	for _, date := range dates {
		k := keyOf(roomID, date)
		if _, ok := r.t.day(k); ok {
			continue
		}
		r.t.days[k] = inventory.NewDay(roomID, stay.Normalize(date), capacity)
	}
	return nil
}

func (r inventoryRepo) LockDays(_ context.Context, roomID uuid.UUID, dates []time.Time) ([]inventory.Day, error) {
	out := make([]inventory.Day, 0, len(dates))
	for _, date := range dates {
		if d, ok := r.t.day(keyOf(roomID, date)); ok {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// SaveDays enforces the same invariant as the inventory_days CHECK constraints.
func (r inventoryRepo) SaveDays(_ context.Context, days []inventory.Day) error {
	for _, d := range days {
		if err := d.Validate(); err != nil {
			return infra.WrapRepoErr(slog.Default(), infra.KindCheckViolated, "inventory day violates allotment invariant", err)
		}
	}
	for _, d := range days {
		k := keyOf(d.RoomID, d.Date)
		if _, ok := r.t.day(k); !ok {
			return notFound("inventory day not found")
		}
		r.t.days[k] = d
	}
	return nil
}

type calendarRepo struct{ t *tx }

func (r calendarRepo) FindEntries(_ context.Context, roomID uuid.UUID, from, to time.Time) ([]pricing.Entry, error) {
	merged := make(map[dayKey]pricing.Entry)
	for k, e := range r.t.s.prices {
		merged[k] = e
	}
	for k, e := range r.t.prices {
		merged[k] = e
	}
	return entriesInRange(merged, roomID, from, to), nil
}

func (r calendarRepo) Upsert(_ context.Context, e pricing.Entry) error {
	if _, ok := r.t.s.rooms[e.RoomID]; !ok {
		return infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, "price references an unknown room", nil)
	}
	e.Date = stay.Normalize(e.Date)
	r.t.prices[keyOf(e.RoomID, e.Date)] = e
	return nil
}

type idempotencyRepo struct{ t *tx }

func (r idempotencyRepo) Find(_ context.Context, key string, scope uuid.UUID, now time.Time) (*shared.IdempotencyRecord, error) {
	rec, ok := r.lookup(idempotencyKey{key: key, scope: scope})
	if !ok || !rec.ExpiresAt.After(now) {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

// Save replaces an expired record and refuses a live one.
func (r idempotencyRepo) Save(_ context.Context, rec shared.IdempotencyRecord) error {
	k := idempotencyKey{key: rec.Key, scope: rec.Scope}
	if existing, ok := r.lookup(k); ok && existing.ExpiresAt.After(r.t.s.clock.Now()) {
		return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "idempotency key already in use", nil)
	}
	r.t.idempotency[k] = rec
	return nil
}

func (r idempotencyRepo) lookup(k idempotencyKey) (shared.IdempotencyRecord, bool) {
	if rec, ok := r.t.idempotency[k]; ok {
		return rec, true
	}
	rec, ok := r.t.s.idempotency[k]
	return rec, ok
}

func entriesInRange(entries map[dayKey]pricing.Entry, roomID uuid.UUID, from, to time.Time) []pricing.Entry {
	from, to = stay.Normalize(from), stay.Normalize(to)
	out := make([]pricing.Entry, 0)
	for _, e := range entries {
		if e.RoomID != roomID || e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
