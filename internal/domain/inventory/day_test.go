//go:build unit

package inventory_test

import (
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	roomID = uuid.New()
	d1     = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2     = d1.AddDate(0, 0, 1)
)

func TestDayAvailable(t *testing.T) {
	cases := []struct {
		name                     string
		total, blocked, reserved int
		want                     int
	}{
		{name: "空室あり", total: 5, blocked: 1, reserved: 3, want: 1},
		{name: "満室", total: 2, blocked: 0, reserved: 2, want: 0},
		{name: "不整合でも負にならない", total: 1, blocked: 1, reserved: 1, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := inventory.Day{TotalUnits: c.total, BlockedUnits: c.blocked, ReservedUnits: c.reserved}
			assert.Equal(t, c.want, d.Available())
			assert.GreaterOrEqual(t, d.Available(), 0)
		})
	}
}

func TestSetAllotment(t *testing.T) {
	base := inventory.Day{RoomID: roomID, Date: d1, TotalUnits: 5, BlockedUnits: 0, ReservedUnits: 3}

	cases := []struct {
		name           string
		total, blocked int
		errIs          error
	}{
		{name: "在庫増加OK", total: 8, blocked: 1},
		{name: "予約数ちょうどOK", total: 4, blocked: 1},
		{name: "予約数未満NG", total: 2, blocked: 0, errIs: inventory.ErrAllotmentBelowReserved},
		{name: "ブロック超過NG", total: 5, blocked: 3, errIs: inventory.ErrAllotmentBelowReserved},
		{name: "負のブロックNG", total: 5, blocked: -1, errIs: inventory.ErrAllotmentBelowReserved},
		{name: "負の在庫NG", total: -1, blocked: 0, errIs: inventory.ErrAllotmentBelowReserved},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, err := base.SetAllotment(c.total, c.blocked)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, base, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.total, next.TotalUnits)
			assert.Equal(t, c.blocked, next.BlockedUnits)
			assert.Equal(t, base.ReservedUnits, next.ReservedUnits)
			require.NoError(t, next.Validate())
		})
	}
}

func TestReserveAndRelease(t *testing.T) {
	days := []inventory.Day{
		inventory.NewDay(roomID, d1, 5),
		{RoomID: roomID, Date: d2, TotalUnits: 5, BlockedUnits: 1, ReservedUnits: 3},
	}

	t.Run("1室は予約できる", func(t *testing.T) {
		reserved, err := inventory.Reserve(days, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, reserved[0].ReservedUnits)
		assert.Equal(t, 4, reserved[1].ReservedUnits)
		assert.Equal(t, 0, reserved[1].Available())
		// input untouched
		assert.Equal(t, 3, days[1].ReservedUnits)
	})

	t.Run("2室は最初の不足日で失敗", func(t *testing.T) {
		reserved, err := inventory.Reserve(days, 2)
		require.ErrorIs(t, err, inventory.ErrInsufficient)
		assert.Nil(t, reserved)

		var ie *inventory.InsufficientError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, d2, ie.Date)
		assert.Equal(t, 1, ie.Available)
		assert.Equal(t, 2, ie.Requested)
	})

	t.Run("0室はNG", func(t *testing.T) {
		_, err := inventory.Reserve(days, 0)
		require.ErrorIs(t, err, inventory.ErrInvalidUnits)
	})

	t.Run("予約と解放で元に戻る", func(t *testing.T) {
		reserved, err := inventory.Reserve(days, 1)
		require.NoError(t, err)
		assert.Equal(t, days, inventory.Release(reserved, 1))
	})

	t.Run("解放はゼロで下限", func(t *testing.T) {
		released := inventory.Release(days, 10)
		for _, d := range released {
			assert.Equal(t, 0, d.ReservedUnits)
		}
	})
}
