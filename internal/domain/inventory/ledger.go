package inventory

// CheckAvailability returns an *InsufficientError for the first day (in slice order)
// whose available units are below rooms.
func CheckAvailability(days []Day, rooms int) error {
	if rooms <= 0 {
		return ErrInvalidUnits
	}
	for _, d := range days {
		if d.Available() < rooms {
			return &InsufficientError{RoomID: d.RoomID, Date: d.Date, Requested: rooms, Available: d.Available()}
		}
	}
	return nil
}

// Reserve returns copies of days with rooms added to ReservedUnits on every day.
// It is all-or-nothing: on error the input is untouched and nothing is returned.
func Reserve(days []Day, rooms int) ([]Day, error) {
	if err := CheckAvailability(days, rooms); err != nil {
		return nil, err
	}
	out := make([]Day, len(days))
	for i, d := range days {
		d.ReservedUnits += rooms
		if err := d.Validate(); err != nil {
			return nil, &InsufficientError{RoomID: d.RoomID, Date: d.Date, Requested: rooms, Available: days[i].Available()}
		}
		out[i] = d
	}
	return out, nil
}

// Release returns copies of days with rooms subtracted, floored at zero.
func Release(days []Day, rooms int) []Day {
	out := make([]Day, len(days))
	for i, d := range days {
		d.ReservedUnits -= rooms
		if d.ReservedUnits < 0 {
			d.ReservedUnits = 0
		}
		out[i] = d
	}
	return out
}
