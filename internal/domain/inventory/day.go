package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficient           = errors.New("insufficient inventory")
	ErrInvalidUnits           = errors.New("units must be positive")
	ErrAllotmentBelowReserved = errors.New("allotment would drop below reserved units")
)

// Day is the per-room, per-date ledger row.
// Invariant: 0 <= ReservedUnits and ReservedUnits + BlockedUnits <= TotalUnits.
type Day struct {
	RoomID        uuid.UUID
	Date          time.Time
	TotalUnits    int
	BlockedUnits  int
	ReservedUnits int
}

// NewDay materializes a missing row from room capacity.
func NewDay(roomID uuid.UUID, date time.Time, capacity int) Day {
	return Day{RoomID: roomID, Date: date, TotalUnits: capacity}
}

func (d Day) Available() int {
	a := d.TotalUnits - d.BlockedUnits - d.ReservedUnits
	if a < 0 {
		return 0
	}
	return a
}

func (d Day) Validate() error {
	if d.TotalUnits < 0 || d.BlockedUnits < 0 || d.ReservedUnits < 0 {
		return ErrAllotmentBelowReserved
	}
	if d.ReservedUnits+d.BlockedUnits > d.TotalUnits {
		return ErrAllotmentBelowReserved
	}
	return nil
}

// SetAllotment applies an admin write. Writes that would break the invariant are
// rejected, never clamped.
func (d Day) SetAllotment(total, blocked int) (Day, error) {
	next := d
	next.TotalUnits = total
	next.BlockedUnits = blocked
	if err := next.Validate(); err != nil {
		return d, err
	}
	return next, nil
}

// InsufficientError names the first date that could not satisfy the request.
type InsufficientError struct {
	RoomID    uuid.UUID
	Date      time.Time
	Requested int
	Available int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("insufficient inventory on %s: requested %d, available %d",
		e.Date.Format("2006-01-02"), e.Requested, e.Available)
}

func (e *InsufficientError) Is(target error) bool {
	return target == ErrInsufficient
}
