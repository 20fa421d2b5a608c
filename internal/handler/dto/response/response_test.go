//go:build unit

package response

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookingView(t *testing.T) {
	id, hotelID, roomID, userID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	created := time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC)
	view := &queries.BookingView{
		ID:           id,
		UserID:       &userID,
		HotelID:      hotelID,
		HotelName:    "Harbor",
		HotelStatus:  "published",
		RoomID:       roomID,
		RoomName:     "Twin",
		RoomPrice:    10000,
		CheckIn:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		RoomsCount:   2,
		GuestCount:   3,
		TotalAmount:  64000,
		Status:       "CONFIRMED",
		ContactName:  "Alice",
		ContactPhone: "+81-90-0000-0000",
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	got, err := FromBookingView(view)
	require.NoError(t, err)

	want := &BookingResponse{
		ID:           id,
		UserID:       &userID,
		HotelID:      hotelID,
		HotelName:    "Harbor",
		HotelStatus:  "published",
		RoomID:       roomID,
		RoomName:     "Twin",
		RoomPrice:    10000,
		CheckIn:      "2025-03-01",
		CheckOut:     "2025-03-04",
		Nights:       3,
		RoomsCount:   2,
		GuestCount:   3,
		TotalAmount:  64000,
		Status:       "CONFIRMED",
		ContactName:  "Alice",
		ContactPhone: "+81-90-0000-0000",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromBookingView() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromCalendarDays(t *testing.T) {
	roomID := uuid.New()
	days := []*queries.CalendarDayView{
		{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Total: 5, Blocked: 1, Reserved: 3, Available: 1, Price: 12000, PromoType: ptr.Of("flat")},
		{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Total: 5, Available: 5, Price: 10000},
	}

	got, err := FromCalendarDays(roomID, "2025-03-01", "2025-03-03", days)
	require.NoError(t, err)

	require.Len(t, got.Days, 2)
	assert.Equal(t, "2025-03-01", got.Days[0].Date)
	assert.Equal(t, 1, got.Days[0].Available)
	assert.Equal(t, "flat", *got.Days[0].PromoType)
	assert.Equal(t, "2025-03-02", got.Days[1].Date)
	assert.Nil(t, got.Days[1].PromoType)
}

func TestFromInventoryDay(t *testing.T) {
	d := &inventory.Day{RoomID: uuid.New(), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), TotalUnits: 5, BlockedUnits: 1, ReservedUnits: 3}

	got, err := FromInventoryDay(d)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", got.Date)
	assert.Equal(t, 1, got.AvailableUnits)
	assert.Equal(t, 3, got.ReservedUnits)
}

func TestFromPriceEntry(t *testing.T) {
	e := &pricing.Entry{RoomID: uuid.New(), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Price: 12000, PromoValue: ptr.Of(int64(500))}

	got, err := FromPriceEntry(e)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", got.Date)
	assert.Equal(t, int64(12000), got.Price)
	assert.Equal(t, int64(500), *got.PromoValue)
}
