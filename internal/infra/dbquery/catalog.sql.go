package dbquery

import (
	"context"

	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
)

const getRoomWithHotel = `
SELECT r.id, r.hotel_id, r.name, r.capacity, r.base_price, h.name, h.status, h.merchant_id
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
WHERE r.id = $1
`

func (q *Queries) GetRoomWithHotel(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (RoomWithHotelRow, error) {
	var i RoomWithHotelRow
	err := dbtx.QueryRow(ctx, getRoomWithHotel, id).Scan(
		&i.ID,
		&i.HotelID,
		&i.Name,
		&i.Capacity,
		&i.BasePrice,
		&i.HotelName,
		&i.HotelStatus,
		&i.MerchantID,
	)
	return i, err
}
