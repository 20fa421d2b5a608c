//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	mockRepo  *queriesmock.MockBookingViewRepo
	mockCache *queriesmock.MockBookingViewCache
	uc        queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = queriesmock.NewMockBookingViewRepo(s.mockCtrl)
	s.mockCache = queriesmock.NewMockBookingViewCache(s.mockCtrl)
	s.uc = queries.NewBookingQueries(s.mockRepo, s.mockCache)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("cache hit skips the store", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), view.ID).Return(view, true, nil).Times(1)

		got, err := s.uc.GetBooking(s.ctx, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("cache miss reads through and fills the cache", func() {
		gomock.InOrder(
			s.mockCache.EXPECT().Get(gomock.Any(), view.ID).Return(nil, false, nil),
			s.mockRepo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil),
			s.mockCache.EXPECT().Set(gomock.Any(), view).Return(nil),
		)

		got, err := s.uc.GetBooking(s.ctx, view.ID)
		s.Require().NoError(err)
		s.Equal(view.HotelName, got.HotelName)
	})

	s.Run("cache errors fall back to the store", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), view.ID).Return(nil, false, errs.New("redis down")).Times(1)
		s.mockRepo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		s.mockCache.EXPECT().Set(gomock.Any(), view).Return(errs.New("redis down")).Times(1)

		got, err := s.uc.GetBooking(s.ctx, view.ID)
		s.Require().NoError(err)
		s.Equal(view.ID, got.ID)
	})

	s.Run("missing booking maps to not found", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), view.ID).Return(nil, false, nil).Times(1)
		s.mockRepo.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)).Times(1)

		_, err := s.uc.GetBooking(s.ctx, view.ID)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("store failure is not reported as not found", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), view.ID).Return(nil, false, nil).Times(1)
		s.mockRepo.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "connection refused", errs.New("dial tcp"))).Times(1)

		_, err := s.uc.GetBooking(s.ctx, view.ID)
		s.Require().Error(err)
		s.False(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *BookingQueriesTestSuite) TestReloadBooking() {
	b := builder.NewBookingBuilder()
	cancelledAt := b.CreatedAt.Add(time.Hour)
	stale := b.BuildView()
	fresh := b.With(func(bb *builder.BookingBuilder) {
		bb.Status = booking.StatusCancelled
		bb.CancelledAt = &cancelledAt
	}).BuildView()

	s.Run("bypasses a cached view and writes the committed one back", func() {
		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
		gomock.InOrder(
			s.mockRepo.EXPECT().FindByID(gomock.Any(), fresh.ID).Return(fresh, nil),
			s.mockCache.EXPECT().Set(gomock.Any(), fresh).Return(nil),
		)

		got, err := s.uc.ReloadBooking(s.ctx, stale.ID)
		s.Require().NoError(err)
		s.Equal("CANCELLED", got.Status)
	})

	s.Run("missing booking maps to not found", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), fresh.ID).
			Return(nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)).Times(1)

		_, err := s.uc.ReloadBooking(s.ctx, fresh.ID)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

// versionedCache follows the BookingViewCache contract: Set keeps a superseding view.
type versionedCache struct {
	mu    sync.Mutex
	views map[string]*queries.BookingView
}

func (c *versionedCache) Get(_ context.Context, id uuid.UUID) (*queries.BookingView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.views[id.String()]
	return v, ok, nil
}

func (c *versionedCache) Set(_ context.Context, v *queries.BookingView) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.views[v.ID.String()]; ok && cur.Supersedes(v) {
		return nil
	}
	c.views[v.ID.String()] = v
	return nil
}

func (c *versionedCache) Delete(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, id.String())
	return nil
}

// swappableRepo returns whatever the booking row holds at read time and can
// hold a reader between the read and its return.
type swappableRepo struct {
	mu      sync.Mutex
	current *queries.BookingView
	readHit chan struct{}
	release chan struct{}
}

func (r *swappableRepo) FindByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	r.mu.Lock()
	v := r.current
	hold := r.readHit
	r.readHit = nil
	r.mu.Unlock()

	if hold != nil {
		close(hold)
		<-r.release
	}
	return v, nil
}

func (r *swappableRepo) commit(v *queries.BookingView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = v
}

func TestGetBooking_ReadBeforeCancelDoesNotOutliveIt(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	confirmed := b.BuildView()
	cancelledAt := b.CreatedAt.Add(time.Minute)
	cancelled := b.With(func(bb *builder.BookingBuilder) {
		bb.Status = booking.StatusCancelled
		bb.CancelledAt = &cancelledAt
	}).BuildView()

	repo := &swappableRepo{current: confirmed, readHit: make(chan struct{}), release: make(chan struct{})}
	cache := &versionedCache{views: map[string]*queries.BookingView{}}
	uc := queries.NewBookingQueries(repo, cache)

	readerHit := repo.readHit
	done := make(chan struct{})
	go func() {
		defer close(done)
		v, err := uc.GetBooking(ctx, confirmed.ID)
		if assert.NoError(t, err) {
			assert.Equal(t, "CONFIRMED", v.Status)
		}
	}()
	<-readerHit

	// cancel commits and evicts while the reader still holds the CONFIRMED row
	repo.commit(cancelled)
	require.NoError(t, cache.Delete(ctx, confirmed.ID))
	reloaded, err := uc.ReloadBooking(ctx, confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", reloaded.Status)

	close(repo.release)
	<-done

	got, err := uc.GetBooking(ctx, confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", got.Status)
}

func TestBookingView_Supersedes(t *testing.T) {
	t0 := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	view := func(status string, at time.Time) *queries.BookingView {
		return &queries.BookingView{Status: status, UpdatedAt: at}
	}

	testCases := []struct {
		name    string
		current *queries.BookingView
		next    *queries.BookingView
		want    bool
	}{
		{"cancelled beats an older confirmed read", view("CANCELLED", t0.Add(time.Minute)), view("CONFIRMED", t0), true},
		{"cancelled beats confirmed with the same timestamp", view("CANCELLED", t0), view("CONFIRMED", t0), true},
		{"confirmed never beats cancelled", view("CONFIRMED", t0.Add(time.Hour)), view("CANCELLED", t0), false},
		{"newer confirmed is kept", view("CONFIRMED", t0.Add(time.Second)), view("CONFIRMED", t0), true},
		{"equal confirmed views are replaced", view("CONFIRMED", t0), view("CONFIRMED", t0), false},
		{"older cancelled is replaced", view("CANCELLED", t0), view("CANCELLED", t0.Add(time.Second)), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.current.Supersedes(tc.next))
		})
	}
}
