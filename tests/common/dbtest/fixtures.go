//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts the hotel and room described by the builder
func CreateTestRoom(t *testing.T, db DBLike, rb *builder.RoomBuilder) (hotelID, roomID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO hotels (id, name, status, merchant_id) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING",
		rb.HotelID, rb.HotelName, string(rb.HotelStatus), rb.MerchantID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO rooms (id, hotel_id, name, capacity, base_price) VALUES ($1, $2, $3, $4, $5)",
		rb.RoomID, rb.HotelID, rb.RoomName, rb.Capacity, rb.BasePrice)
	require.NoError(t, err)

	return rb.HotelID, rb.RoomID
}

func SetTestInventory(t *testing.T, db DBLike, roomID uuid.UUID, date time.Time, total, blocked, reserved int) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
		INSERT INTO inventory_days (room_id, date, total_units, blocked_units, reserved_units)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_id, date) DO UPDATE
		SET total_units = EXCLUDED.total_units,
		    blocked_units = EXCLUDED.blocked_units,
		    reserved_units = EXCLUDED.reserved_units`,
		roomID, date, total, blocked, reserved)
	require.NoError(t, err)
}

func SetTestPrice(t *testing.T, db DBLike, roomID uuid.UUID, date time.Time, price int64) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
		INSERT INTO calendar_prices (room_id, date, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (room_id, date) DO UPDATE SET price = EXCLUDED.price`,
		roomID, date, price)
	require.NoError(t, err)
}

func ReservedUnits(t *testing.T, db DBLike, roomID uuid.UUID, date time.Time) int {
	t.Helper()
	var reserved int
	err := db.QueryRow(context.Background(),
		"SELECT reserved_units FROM inventory_days WHERE room_id = $1 AND date = $2", roomID, date).Scan(&reserved)
	require.NoError(t, err)
	return reserved
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
