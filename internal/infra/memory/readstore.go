package memory

import (
	"context"
	"sort"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReadStore serves the query side from committed state only.
type ReadStore struct {
	s *Store
}

func (s *Store) ReadStore() *ReadStore {
	return &ReadStore{s: s}
}

func (r *ReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	room, err := r.s.roomSnapshot(row.RoomID)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:           row.ID,
		UserID:       pgconv.UUIDPtrFromPgtype(row.UserID),
		HotelID:      row.HotelID,
		HotelName:    room.HotelName,
		HotelStatus:  room.HotelStatus.String(),
		RoomID:       row.RoomID,
		RoomName:     room.Name,
		RoomPrice:    room.BasePrice,
		CheckIn:      pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:     pgconv.DateFromPgtype(row.CheckOut),
		RoomsCount:   int(row.RoomsCount),
		GuestCount:   int(row.GuestCount),
		TotalAmount:  row.TotalAmount,
		Status:       row.Status,
		ContactName:  row.ContactName,
		ContactPhone: row.ContactPhone,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
		CancelledAt:  pgconv.TimePtrFromPgtype(row.CancelledAt),
	}, nil
}

func (r *ReadStore) FindRoom(_ context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	room, err := r.s.roomSnapshot(roomID)
	if err != nil {
		return nil, err
	}
	return &queries.RoomView{
		ID:        room.ID,
		HotelID:   room.HotelID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		BasePrice: room.BasePrice,
	}, nil
}

func (r *ReadStore) FindInventoryDays(_ context.Context, roomID uuid.UUID, from, to time.Time) ([]inventory.Day, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	from, to = stay.Normalize(from), stay.Normalize(to)
	out := make([]inventory.Day, 0)
	for _, d := range r.s.days {
		if d.RoomID != roomID || d.Date.Before(from) || !d.Date.Before(to) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *ReadStore) FindPriceEntries(_ context.Context, roomID uuid.UUID, from, to time.Time) ([]pricing.Entry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return entriesInRange(r.s.prices, roomID, from, to), nil
}
