package cache

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	bookingKeyPrefix = "booking:view:"
	maxSetAttempts   = 3
)

func bookingKey(id uuid.UUID) string {
	return bookingKeyPrefix + id.String()
}

// RedisBookingCache stores booking views as JSON with a fixed TTL.
type RedisBookingCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewRedisBookingCache(rdb redis.UniversalClient, ttl time.Duration) *RedisBookingCache {
	return &RedisBookingCache{rdb: rdb, ttl: ttl}
}

func (c *RedisBookingCache) Get(ctx context.Context, id uuid.UUID) (*queries.BookingView, bool, error) {
	raw, err := c.rdb.Get(ctx, bookingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "redis get")
	}

	var v queries.BookingView
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, errs.Wrap(err, "decode cached booking view")
	}
	return &v, true, nil
}

// Set is a compare-and-set under WATCH: a stored view that supersedes v is kept.
// When the key keeps changing underneath, the entry is dropped instead.
func (c *RedisBookingCache) Set(ctx context.Context, v *queries.BookingView) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "encode booking view")
	}
	key := bookingKey(v.ID)

	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
			keep, kerr := keepCurrent(ctx, tx, key, v)
			if kerr != nil || keep {
				return kerr
			}
			_, perr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, raw, c.ttl)
				return nil
			})
			return perr
		}, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return c.Delete(ctx, v.ID)
	default:
		return errs.Wrap(err, "redis set")
	}
}

func keepCurrent(ctx context.Context, tx *redis.Tx, key string, next *queries.BookingView) (bool, error) {
	raw, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var current queries.BookingView
	if err := json.Unmarshal(raw, &current); err != nil {
		// unreadable entries are overwritten
		return false, nil
	}
	return current.Supersedes(next), nil
}

func (c *RedisBookingCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.rdb.Del(ctx, bookingKey(id)).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}

// NoopBookingCache always misses. Used when caching is disabled.
type NoopBookingCache struct{}

func (NoopBookingCache) Get(context.Context, uuid.UUID) (*queries.BookingView, bool, error) {
	return nil, false, nil
}

func (NoopBookingCache) Set(context.Context, *queries.BookingView) error { return nil }

func (NoopBookingCache) Delete(context.Context, uuid.UUID) error { return nil }
