//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/pkg/pgconv"
	repositorymock "hotel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInventoryRepository_EnsureDays(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	dates := []time.Time{
		time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	t.Run("success: one row per date seeded from capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewInventoryRepository(mockQueries, mockDB)

		mockQueries.EXPECT().EnsureInventoryDays(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, arg dbquery.EnsureInventoryDaysParams) error {
				assert.Equal(t, roomID, arg.RoomID)
				assert.Equal(t, int32(5), arg.Capacity)
				assert.Len(t, arg.Dates, 2)
				return nil
			})

		require.NoError(t, repo.EnsureDays(ctx, roomID, dates, 5))
	})

	t.Run("error: foreign key violation for unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewInventoryRepository(mockQueries, mockDB)

		mockQueries.EXPECT().EnsureInventoryDays(ctx, mockDB, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"})

		err := repo.EnsureDays(ctx, roomID, dates, 5)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestInventoryRepository_LockDays(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	date := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		rows       []dbquery.InventoryDay
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: rows converted in date order",
			rows: []dbquery.InventoryDay{
				{RoomID: roomID, Date: pgconv.DateToPgtype(date), TotalUnits: 5, BlockedUnits: 1, ReservedUnits: 3},
			},
		},
		{name: "error: lock wait aborted by deadlock", mockError: &pgconn.PgError{Code: "40P01"}, expectKind: infra.KindConflict},
		{name: "error: database error occurs", mockError: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewInventoryRepository(mockQueries, mockDB)

			mockQueries.EXPECT().LockInventoryDays(ctx, mockDB, roomID, []pgtype.Date{pgconv.DateToPgtype(date)}).
				Return(tc.rows, tc.mockError)

			days, err := repo.LockDays(ctx, roomID, []time.Time{date})
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, days, 1)
			assert.Equal(t, 1, days[0].Available())
			assert.True(t, date.Equal(days[0].Date))
		})
	}
}

func TestInventoryRepository_SaveDays(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	day := inventory.Day{RoomID: roomID, Date: time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC), TotalUnits: 2, ReservedUnits: 2}

	t.Run("success: counters written back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewInventoryRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateInventoryDays(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, rows []dbquery.InventoryDay) error {
				require.Len(t, rows, 1)
				assert.Equal(t, int32(2), rows[0].ReservedUnits)
				return nil
			})

		require.NoError(t, repo.SaveDays(ctx, []inventory.Day{day}))
	})

	t.Run("error: oversell check constraint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewInventoryRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateInventoryDays(ctx, mockDB, gomock.Any()).
			Return(&pgconn.PgError{Code: "23514", ConstraintName: "inventory_days_not_oversold"})

		err := repo.SaveDays(ctx, []inventory.Day{day})
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
	})
}
