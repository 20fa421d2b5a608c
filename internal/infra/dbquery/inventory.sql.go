package dbquery

import (
	"context"

	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const ensureInventoryDays = `
INSERT INTO inventory_days (room_id, date, total_units, blocked_units, reserved_units)
SELECT $1, d, $3, 0, 0
FROM unnest($2::date[]) AS d
ON CONFLICT (room_id, date) DO NOTHING
`

func (q *Queries) EnsureInventoryDays(ctx context.Context, dbtx db.DBTX, arg EnsureInventoryDaysParams) error {
	_, err := dbtx.Exec(ctx, ensureInventoryDays, arg.RoomID, arg.Dates, arg.Capacity)
	return err
}

// Rows are locked in ascending date order so overlapping stays never wait on each other in a cycle.
const lockInventoryDays = `
SELECT room_id, date, total_units, blocked_units, reserved_units
FROM inventory_days
WHERE room_id = $1 AND date = ANY($2::date[])
ORDER BY date
FOR UPDATE
`

func (q *Queries) LockInventoryDays(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, dates []pgtype.Date) ([]InventoryDay, error) {
	rows, err := dbtx.Query(ctx, lockInventoryDays, roomID, dates)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanInventoryDay)
}

const listInventoryDays = `
SELECT room_id, date, total_units, blocked_units, reserved_units
FROM inventory_days
WHERE room_id = $1 AND date >= $2 AND date < $3
ORDER BY date
`

func (q *Queries) ListInventoryDays(ctx context.Context, dbtx db.DBTX, arg DateRangeParams) ([]InventoryDay, error) {
	rows, err := dbtx.Query(ctx, listInventoryDays, arg.RoomID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanInventoryDay)
}

const updateInventoryDay = `
UPDATE inventory_days
SET total_units = $3, blocked_units = $4, reserved_units = $5, updated_at = now()
WHERE room_id = $1 AND date = $2
`

// UpdateInventoryDays sends every update in one batch.
func (q *Queries) UpdateInventoryDays(ctx context.Context, dbtx db.DBTX, days []InventoryDay) error {
	if len(days) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, d := range days {
		batch.Queue(updateInventoryDay, d.RoomID, d.Date, d.TotalUnits, d.BlockedUnits, d.ReservedUnits)
	}
	results := dbtx.SendBatch(ctx, batch)
	for range days {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}
	return results.Close()
}

func scanInventoryDay(row pgx.CollectableRow) (InventoryDay, error) {
	var i InventoryDay
	err := row.Scan(&i.RoomID, &i.Date, &i.TotalUnits, &i.BlockedUnits, &i.ReservedUnits)
	return i, err
}
