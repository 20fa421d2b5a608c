package booking

import (
	"time"

	"hotel-booking/internal/domain/stay"

	"github.com/google/uuid"
)

type Booking struct {
	id          uuid.UUID
	userID      *uuid.UUID
	hotelID     uuid.UUID
	roomID      uuid.UUID
	stay        stay.Stay
	occupancy   Occupancy
	total       Money
	status      Status
	contact     Contact
	createdAt   time.Time
	updatedAt   time.Time
	cancelledAt *time.Time
}

func Reconstruct(
	id uuid.UUID,
	userID *uuid.UUID,
	hotelID, roomID uuid.UUID,
	s stay.Stay,
	occupancy Occupancy,
	total Money,
	status Status,
	contact Contact,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		hotelID:     hotelID,
		roomID:      roomID,
		stay:        s,
		occupancy:   occupancy,
		total:       total,
		status:      status,
		contact:     contact,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		cancelledAt: cancelledAt,
	}
}

// Cancel moves CONFIRMED to CANCELLED. It reports false when the booking was
// already cancelled, in which case nothing changes.
func (b *Booking) Cancel(now time.Time) bool {
	if b.status == StatusCancelled {
		return false
	}
	b.status = StatusCancelled
	b.updatedAt = now
	b.cancelledAt = &now
	return true
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// OwnedBy reports whether the booking was made by userID. Guest bookings have no owner.
func (b *Booking) OwnedBy(userID uuid.UUID) bool {
	return b.userID != nil && *b.userID == userID
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() *uuid.UUID      { return b.userID }
func (b *Booking) HotelID() uuid.UUID      { return b.hotelID }
func (b *Booking) RoomID() uuid.UUID       { return b.roomID }
func (b *Booking) Stay() stay.Stay         { return b.stay }
func (b *Booking) CheckIn() time.Time      { return b.stay.CheckIn() }
func (b *Booking) CheckOut() time.Time     { return b.stay.CheckOut() }
func (b *Booking) RoomsCount() int         { return b.occupancy.Rooms() }
func (b *Booking) GuestCount() int         { return b.occupancy.Guests() }
func (b *Booking) TotalAmount() Money      { return b.total }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) Contact() Contact        { return b.contact }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
