package response

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var errUnexpectedSource = errors.New("unexpected source type")

// dateOption renders every time.Time copied into a string field as YYYY-MM-DD.
var dateOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errUnexpectedSource
				}
				return stay.FormatDate(t), nil
			},
		},
	},
}

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	HotelID      uuid.UUID  `json:"hotel_id"`
	HotelName    string     `json:"hotel_name"`
	HotelStatus  string     `json:"hotel_status"`
	RoomID       uuid.UUID  `json:"room_id"`
	RoomName     string     `json:"room_name"`
	RoomPrice    int64      `json:"room_price"`
	CheckIn      string     `json:"check_in"`
	CheckOut     string     `json:"check_out"`
	Nights       int        `json:"nights"`
	RoomsCount   int        `json:"rooms_count"`
	GuestCount   int        `json:"guest_count"`
	TotalAmount  int64      `json:"total_amount"`
	Status       string     `json:"status"`
	ContactName  string     `json:"contact_name"`
	ContactPhone string     `json:"contact_phone"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, v, dateOption); err != nil {
		return nil, err
	}
	res.Nights = stay.Nights(v.CheckIn, v.CheckOut)
	return &res, nil
}
