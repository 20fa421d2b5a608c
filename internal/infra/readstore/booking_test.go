//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingViewQueries struct {
	mock.Mock
}

func (m *MockBookingViewQueries) GetBookingView(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (dbquery.BookingViewRow, error) {
	args := m.Called(ctx, dbtx, id)
	return args.Get(0).(dbquery.BookingViewRow), args.Error(1)
}

func TestBookingReadStore_FindByID(t *testing.T) {
	b := builder.NewBookingBuilder()
	row, err := b.BuildViewRow()
	require.NoError(t, err)

	tests := []struct {
		name       string
		mockReturn dbquery.BookingViewRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success - booking with hotel and room summary", mockReturn: row},
		{name: "booking not found (pgx)", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "booking not found (database/sql)", mockError: sql.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingViewQueries)
			dbtx := &mockDBTX{}
			store := NewBookingReadStore(mockQueries, dbtx)

			mockQueries.On("GetBookingView", mock.Anything, dbtx, b.ID).Return(tt.mockReturn, tt.mockError)

			view, err := store.FindByID(context.Background(), b.ID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "expected kind [%v] but got (%v)", tt.wantKind, err)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				if diff := cmp.Diff(b.BuildView(), view); diff != "" {
					t.Errorf("booking view mismatch (-want +got):\n%s", diff)
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *mockDBTX) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return nil
}
