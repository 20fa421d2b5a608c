package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations. Retries on serialization
	// failures and deadlocks; exhausted retries are marked with errs.ErrWriteConflict.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction. Nothing written through them
// is visible to other transactions until Within returns nil.
type Tx interface {
	Bookings() BookingRepository
	Inventory() InventoryRepository
	Calendar() CalendarRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
}

type CommandReads interface {
	// RoomByID returns the room joined with its hotel, or a NOT_FOUND repository error.
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindForUpdate locks the booking row for the rest of the transaction.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type InventoryRepository interface {
	// EnsureDays materializes missing rows with TotalUnits = capacity.
	EnsureDays(ctx context.Context, roomID uuid.UUID, dates []time.Time, capacity int) error
	// LockDays locks existing rows in ascending date order and returns them in that order.
	LockDays(ctx context.Context, roomID uuid.UUID, dates []time.Time) ([]inventory.Day, error)
	SaveDays(ctx context.Context, days []inventory.Day) error
}

type CalendarRepository interface {
	// FindEntries returns overrides with from <= date < to.
	FindEntries(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]pricing.Entry, error)
	Upsert(ctx context.Context, e pricing.Entry) error
}

type IdempotencyRepository interface {
	// Find ignores expired records.
	Find(ctx context.Context, key string, scope uuid.UUID, now time.Time) (*IdempotencyRecord, error)
	Save(ctx context.Context, rec IdempotencyRecord) error
}
