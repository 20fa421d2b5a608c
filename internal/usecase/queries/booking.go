package queries

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ReloadBooking reads the committed row, bypassing the cache, and writes it back.
	ReloadBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

// BookingViewCache is best effort: errors are logged and the store is used instead.
// Set must not replace a cached view that supersedes the new one.
type BookingViewCache interface {
	Get(ctx context.Context, id uuid.UUID) (*BookingView, bool, error)
	Set(ctx context.Context, v *BookingView) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	cache BookingViewCache
}

func NewBookingQueries(repo BookingViewRepo, cache BookingViewCache) BookingQueries {
	return &bookingQueriesImpl{repo: repo, cache: cache}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	cached, ok, err := q.cache.Get(ctx, id)
	if err != nil {
		slog.Warn("booking cache read failed", "booking_id", id.String(), "error", err.Error())
	}
	if ok {
		return cached, nil
	}

	return q.load(ctx, id)
}

func (q *bookingQueriesImpl) ReloadBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.load(ctx, id)
}

func (q *bookingQueriesImpl) load(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if err := q.cache.Set(ctx, view); err != nil {
		slog.Warn("booking cache write failed", "booking_id", id.String(), "error", err.Error())
	}
	return view, nil
}
