// Package stay turns a check-in/check-out pair into the calendar nights it occupies.
//
// Both booking creation and cancellation expand the same stored values, so the
// set of inventory days touched on release is always the set reserved on create.
// Dates are ascending, which is also the row lock order used by the inventory store.
package stay

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidRange = errors.New("check-out must be after check-in")
	ErrStayTooLong  = errors.New("stay exceeds the maximum number of nights")
)

// Normalize truncates t to midnight UTC of the calendar day t falls on in UTC.
func Normalize(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Expand returns every night from checkIn (inclusive) to checkOut (exclusive).
func Expand(checkIn, checkOut time.Time) ([]time.Time, error) {
	in, out := Normalize(checkIn), Normalize(checkOut)
	if !out.After(in) {
		return nil, ErrInvalidRange
	}

	n := nights(in, out)
	dates := make([]time.Time, 0, n)
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

func Nights(checkIn, checkOut time.Time) int {
	in, out := Normalize(checkIn), Normalize(checkOut)
	if !out.After(in) {
		return 0
	}
	return nights(in, out)
}

func nights(in, out time.Time) int {
	return int(out.Sub(in).Hours() / 24)
}

// Stay is a validated, normalized date range.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

// New validates the range. maxNights <= 0 disables the length limit.
func New(checkIn, checkOut time.Time, maxNights int) (Stay, error) {
	in, out := Normalize(checkIn), Normalize(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidRange
	}
	if maxNights > 0 && nights(in, out) > maxNights {
		return Stay{}, ErrStayTooLong
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }
func (s Stay) Nights() int         { return nights(s.checkIn, s.checkOut) }

func (s Stay) Dates() []time.Time {
	dates, _ := Expand(s.checkIn, s.checkOut)
	return dates
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the normalized day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidRange
	}
	// The day is the one written in the timestamp, not the UTC one.
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDate(t time.Time) string {
	return Normalize(t).Format(DateLayout)
}
