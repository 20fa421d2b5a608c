//go:build unit

package stay_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(stay.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpand(t *testing.T) {
	t.Run("3泊は3日を昇順で返す", func(t *testing.T) {
		dates, err := stay.Expand(day("2025-03-01"), day("2025-03-04"))
		require.NoError(t, err)
		require.Len(t, dates, 3)
		assert.Equal(t, day("2025-03-01"), dates[0])
		assert.Equal(t, day("2025-03-03"), dates[2])
		for i := 1; i < len(dates); i++ {
			assert.True(t, dates[i].After(dates[i-1]))
		}
	})

	t.Run("月末と閏日をまたぐ", func(t *testing.T) {
		dates, err := stay.Expand(day("2024-02-28"), day("2024-03-02"))
		require.NoError(t, err)
		assert.Equal(t, []time.Time{day("2024-02-28"), day("2024-02-29"), day("2024-03-01")}, dates)
	})

	t.Run("時刻とタイムゾーンは正規化される", func(t *testing.T) {
		loc := time.FixedZone("UTC+9", 9*60*60)
		in := time.Date(2025, 5, 10, 15, 30, 0, 0, time.UTC)
		out := time.Date(2025, 5, 12, 8, 0, 0, 0, loc) // 2025-05-11 23:00 UTC
		dates, err := stay.Expand(in, out)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{day("2025-05-10")}, dates)
	})

	t.Run("同日はNG", func(t *testing.T) {
		_, err := stay.Expand(day("2025-03-01"), day("2025-03-01"))
		require.ErrorIs(t, err, stay.ErrInvalidRange)
	})

	t.Run("逆順はNG", func(t *testing.T) {
		_, err := stay.Expand(day("2025-03-05"), day("2025-03-01"))
		require.ErrorIs(t, err, stay.ErrInvalidRange)
	})

	t.Run("Nightsは日数と一致", func(t *testing.T) {
		in, out := day("2025-01-01"), day("2025-01-31")
		dates, err := stay.Expand(in, out)
		require.NoError(t, err)
		assert.Equal(t, len(dates), stay.Nights(in, out))
		assert.Equal(t, 0, stay.Nights(out, in))
	})
}

func TestNew(t *testing.T) {
	cases := []struct {
		name      string
		in, out   string
		maxNights int
		errIs     error
	}{
		{name: "上限ちょうどOK", in: "2025-06-01", out: "2025-07-01", maxNights: 30},
		{name: "上限超過NG", in: "2025-06-01", out: "2025-07-02", maxNights: 30, errIs: stay.ErrStayTooLong},
		{name: "上限なしOK", in: "2025-06-01", out: "2025-12-01", maxNights: 0},
		{name: "同日NG", in: "2025-06-01", out: "2025-06-01", maxNights: 30, errIs: stay.ErrInvalidRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := stay.New(day(c.in), day(c.out), c.maxNights)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, s.Nights(), len(s.Dates()))
			assert.Equal(t, day(c.in), s.CheckIn())
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("日付のみの形式", func(t *testing.T) {
		d, err := stay.ParseDate("2025-03-01")
		require.NoError(t, err)
		assert.Equal(t, day("2025-03-01"), d)
	})

	t.Run("オフセット付きの時刻は記載された暦日になる", func(t *testing.T) {
		d, err := stay.ParseDate("2025-03-01T22:00:00-05:00")
		require.NoError(t, err)
		assert.Equal(t, day("2025-03-01"), d)

		d, err = stay.ParseDate("2025-03-02T01:00:00+09:00")
		require.NoError(t, err)
		assert.Equal(t, day("2025-03-02"), d)
	})

	t.Run("オフセット付きの1泊は1日に展開される", func(t *testing.T) {
		in, err := stay.ParseDate("2026-01-10T23:00:00-05:00")
		require.NoError(t, err)
		out, err := stay.ParseDate("2026-01-11T08:00:00-05:00")
		require.NoError(t, err)

		dates, err := stay.Expand(in, out)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{day("2026-01-10")}, dates)
	})

	t.Run("不正な形式はInvalidRange", func(t *testing.T) {
		_, err := stay.ParseDate("03/01/2025")
		require.ErrorIs(t, err, stay.ErrInvalidRange)
	})
}
