package dbquery

import (
	"context"

	"hotel-booking/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const listCalendarPrices = `
SELECT room_id, date, price, promo_type, promo_value
FROM calendar_prices
WHERE room_id = $1 AND date >= $2 AND date < $3
ORDER BY date
`

func (q *Queries) ListCalendarPrices(ctx context.Context, dbtx db.DBTX, arg DateRangeParams) ([]CalendarPrice, error) {
	rows, err := dbtx.Query(ctx, listCalendarPrices, arg.RoomID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (CalendarPrice, error) {
		var i CalendarPrice
		err := row.Scan(&i.RoomID, &i.Date, &i.Price, &i.PromoType, &i.PromoValue)
		return i, err
	})
}

const upsertCalendarPrice = `
INSERT INTO calendar_prices (room_id, date, price, promo_type, promo_value)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (room_id, date) DO UPDATE
SET price = EXCLUDED.price,
    promo_type = EXCLUDED.promo_type,
    promo_value = EXCLUDED.promo_value,
    updated_at = now()
`

func (q *Queries) UpsertCalendarPrice(ctx context.Context, dbtx db.DBTX, arg CalendarPrice) error {
	_, err := dbtx.Exec(ctx, upsertCalendarPrice, arg.RoomID, arg.Date, arg.Price, arg.PromoType, arg.PromoValue)
	return err
}
