//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
		{"wrapped in repository error", infra.WrapPgErr(discardLogger(), "lock days", &pgconn.PgError{Code: pgErrCodeDeadlockDetected}), true},
		{"wrapped by errs", errs.Wrap(&pgconn.PgError{Code: pgErrCodeSerializationFailure}, "commit"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.True(t, shouldRetry(retryable, 2, 3))
	assert.False(t, shouldRetry(retryable, 3, 3), "last attempt must not retry")
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
	assert.False(t, shouldRetry(retryable, 0, 0), "retries disabled")
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		floor := time.Duration(1<<attempt) * base
		ceiling := floor + floor/5

		got := calculateBackoff(attempt, base)

		assert.GreaterOrEqual(t, got, floor, "attempt %d", attempt)
		assert.Less(t, got, ceiling, "attempt %d", attempt)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-5))

	for n := 0; n < 100; n++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
