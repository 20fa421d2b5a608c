package converter

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

var ErrCorruptRow = errs.New("stored row violates domain invariants")

func BookingToInfra(b *booking.Booking) dbquery.Booking {
	return dbquery.Booking{
		ID:           b.ID(),
		UserID:       pgconv.UUIDPtrToPgtype(b.UserID()),
		HotelID:      b.HotelID(),
		RoomID:       b.RoomID(),
		CheckIn:      pgconv.DateToPgtype(b.CheckIn()),
		CheckOut:     pgconv.DateToPgtype(b.CheckOut()),
		RoomsCount:   int32(b.RoomsCount()),
		GuestCount:   int32(b.GuestCount()),
		TotalAmount:  b.TotalAmount().Minor(),
		Status:       b.Status().String(),
		ContactName:  b.Contact().Name(),
		ContactPhone: b.Contact().Phone(),
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt()),
		CancelledAt:  pgconv.TimePtrToPgtype(b.CancelledAt()),
	}
}

// BookingFromInfra rebuilds the aggregate. Stored rows passed the same checks on
// insert, so a failure here means the row was edited out of band.
func BookingFromInfra(row dbquery.Booking) (*booking.Booking, error) {
	s, err := stay.New(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut), 0)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptRow)
	}
	occupancy, err := booking.NewOccupancy(int(row.RoomsCount), int(row.GuestCount))
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptRow)
	}
	total, err := booking.NewMoney(row.TotalAmount)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptRow)
	}
	contact, err := booking.NewContact(row.ContactName, row.ContactPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptRow)
	}
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Wrapf(ErrCorruptRow, "unknown status %q", row.Status)
	}

	return booking.Reconstruct(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		row.HotelID,
		row.RoomID,
		s,
		occupancy,
		total,
		status,
		contact,
		row.CreatedAt.Time,
		row.UpdatedAt.Time,
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	), nil
}

func InventoryDayFromInfra(row dbquery.InventoryDay) inventory.Day {
	return inventory.Day{
		RoomID:        row.RoomID,
		Date:          pgconv.DateFromPgtype(row.Date),
		TotalUnits:    int(row.TotalUnits),
		BlockedUnits:  int(row.BlockedUnits),
		ReservedUnits: int(row.ReservedUnits),
	}
}

func InventoryDaysFromInfra(rows []dbquery.InventoryDay) []inventory.Day {
	out := make([]inventory.Day, len(rows))
	for i, r := range rows {
		out[i] = InventoryDayFromInfra(r)
	}
	return out
}

func InventoryDayToInfra(d inventory.Day) dbquery.InventoryDay {
	return dbquery.InventoryDay{
		RoomID:        d.RoomID,
		Date:          pgconv.DateToPgtype(d.Date),
		TotalUnits:    int32(d.TotalUnits),
		BlockedUnits:  int32(d.BlockedUnits),
		ReservedUnits: int32(d.ReservedUnits),
	}
}

func CalendarPriceFromInfra(row dbquery.CalendarPrice) pricing.Entry {
	return pricing.Entry{
		RoomID:     row.RoomID,
		Date:       pgconv.DateFromPgtype(row.Date),
		Price:      row.Price,
		PromoType:  pgconv.StringPtrFromPgtype(row.PromoType),
		PromoValue: pgconv.Int64PtrFromPgtype(row.PromoValue),
	}
}

func CalendarPricesFromInfra(rows []dbquery.CalendarPrice) []pricing.Entry {
	out := make([]pricing.Entry, len(rows))
	for i, r := range rows {
		out[i] = CalendarPriceFromInfra(r)
	}
	return out
}

func CalendarPriceToInfra(e pricing.Entry) dbquery.CalendarPrice {
	return dbquery.CalendarPrice{
		RoomID:     e.RoomID,
		Date:       pgconv.DateToPgtype(e.Date),
		Price:      e.Price,
		PromoType:  pgconv.StringPtrToPgtype(e.PromoType),
		PromoValue: pgconv.Int64PtrToPgtype(e.PromoValue),
	}
}
