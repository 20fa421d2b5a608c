// Package memory is a single-process implementation of the persistence ports.
// One mutex guards the whole store and is held for the duration of Within, so
// transactions are serializable by construction.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownHotel = errs.New("room references an unknown hotel")

type dayKey struct {
	roomID uuid.UUID
	date   string
}

func keyOf(roomID uuid.UUID, date time.Time) dayKey {
	return dayKey{roomID: roomID, date: stay.FormatDate(date)}
}

type idempotencyKey struct {
	key   string
	scope uuid.UUID
}

type Store struct {
	mu    sync.Mutex
	clock clock.Clock

	hotels      map[uuid.UUID]catalog.Hotel
	rooms       map[uuid.UUID]catalog.Room
	bookings    map[uuid.UUID]dbquery.Booking
	days        map[dayKey]inventory.Day
	prices      map[dayKey]pricing.Entry
	idempotency map[idempotencyKey]shared.IdempotencyRecord
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clock:       clk,
		hotels:      make(map[uuid.UUID]catalog.Hotel),
		rooms:       make(map[uuid.UUID]catalog.Room),
		bookings:    make(map[uuid.UUID]dbquery.Booking),
		days:        make(map[dayKey]inventory.Day),
		prices:      make(map[dayKey]pricing.Entry),
		idempotency: make(map[idempotencyKey]shared.IdempotencyRecord),
	}
}

// Within runs fn against a staging overlay and applies it only when fn returns nil.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	t := newTx(s)
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t.commit()
	return nil
}

func (s *Store) AddHotel(h catalog.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels[h.ID] = h
}

func (s *Store) AddRoom(r catalog.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[r.HotelID]; !ok {
		return errs.Wrapf(ErrUnknownHotel, "hotel %s", r.HotelID)
	}
	s.rooms[r.ID] = r
	return nil
}

// PutInventoryDay overwrites a ledger row without going through a transaction.
func (s *Store) PutInventoryDay(d inventory.Day) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d.Date = stay.Normalize(d.Date)
	s.days[keyOf(d.RoomID, d.Date)] = d
	return nil
}

func (s *Store) InventoryDay(roomID uuid.UUID, date time.Time) (inventory.Day, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.days[keyOf(roomID, date)]
	return d, ok
}

func (s *Store) PutPrice(e pricing.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.Date = stay.Normalize(e.Date)
	s.prices[keyOf(e.RoomID, e.Date)] = e
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *Store) roomSnapshot(id uuid.UUID) (*shared.RoomSnapshot, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	hotel, ok := s.hotels[room.HotelID]
	if !ok {
		return nil, notFound("hotel not found")
	}
	return &shared.RoomSnapshot{
		ID:          room.ID,
		HotelID:     room.HotelID,
		Name:        room.Name,
		Capacity:    room.Capacity,
		BasePrice:   room.BasePrice,
		HotelName:   hotel.Name,
		HotelStatus: hotel.Status,
		MerchantID:  hotel.MerchantID,
	}, nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}
