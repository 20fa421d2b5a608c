//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra/memory"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	mockCache *commandsmock.MockBookingCacheEvicter
	clock     *clock.MockClock
	store     *memory.Store
	room      *builder.RoomBuilder
	uc        commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCache = commandsmock.NewMockBookingCacheEvicter(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))
	s.store = memory.NewStore(s.clock)

	s.room = builder.NewRoomBuilder()
	s.store.AddHotel(s.room.BuildHotel())
	s.Require().NoError(s.store.AddRoom(s.room.BuildRoom()))

	s.uc = commands.NewBookingCommands(s.store, s.clock, s.mockCache,
		noop.NewTracerProvider().Tracer("test"), config.NewTestConfig().Booking)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) input(checkIn, checkOut time.Time, rooms int) commands.CreateBookingInput {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.HotelID = s.room.HotelID
		b.RoomID = s.room.RoomID
		b.CheckIn = checkIn
		b.CheckOut = checkOut
		b.RoomsCount = rooms
		b.UserID = nil
	}).BuildInput()
}

func (s *BookingCommandsTestSuite) reserved(date time.Time) int {
	d, ok := s.store.InventoryDay(s.room.RoomID, date)
	if !ok {
		return 0
	}
	return d.ReservedUnits
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Pricing() {
	s.store.PutPrice(pricing.Entry{RoomID: s.room.RoomID, Date: testutil.Day(2026, 2, 11), Price: 12000})

	result, err := s.uc.CreateBooking(s.ctx, s.input(testutil.Day(2026, 2, 10), testutil.Day(2026, 2, 13), 2))
	s.Require().NoError(err)
	s.False(result.IsReplayed)

	view, err := s.store.ReadStore().FindByID(s.ctx, result.BookingID)
	s.Require().NoError(err)
	s.Equal(int64(64000), view.TotalAmount)
	s.Equal("CONFIRMED", view.Status)

	for _, d := range []time.Time{testutil.Day(2026, 2, 10), testutil.Day(2026, 2, 11), testutil.Day(2026, 2, 12)} {
		s.Equal(2, s.reserved(d))
	}
	s.Equal(0, s.reserved(testutil.Day(2026, 2, 13)), "check-out night is not reserved")
}

func (s *BookingCommandsTestSuite) TestCreateBooking_AvailabilityScenario() {
	d := testutil.Day(2026, 3, 5)
	s.Require().NoError(s.store.PutInventoryDay(inventory.Day{
		RoomID: s.room.RoomID, Date: d, TotalUnits: 5, BlockedUnits: 1, ReservedUnits: 3,
	}))

	s.Run("two rooms exceed the single available unit", func() {
		_, err := s.uc.CreateBooking(s.ctx, s.input(testutil.Day(2026, 3, 4), testutil.Day(2026, 3, 6), 2))
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrInsufficientInventory))

		var insufficient *inventory.InsufficientError
		s.Require().True(errs.As(err, &insufficient))
		s.Equal(d, insufficient.Date)
		s.Equal(1, insufficient.Available)
		s.Equal(3, s.reserved(d), "failed booking leaves the ledger untouched")
		s.Equal(0, s.reserved(testutil.Day(2026, 3, 4)), "earlier nights are rolled back")
	})

	s.Run("one room fits", func() {
		_, err := s.uc.CreateBooking(s.ctx, s.input(testutil.Day(2026, 3, 4), testutil.Day(2026, 3, 6), 1))
		s.Require().NoError(err)
		s.Equal(4, s.reserved(d))
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Rejections() {
	s.Run("equal dates are rejected before inventory is touched", func() {
		d := testutil.Day(2026, 1, 10)
		_, err := s.uc.CreateBooking(s.ctx, s.input(d, d, 1))
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrInvalidRange))
		_, ok := s.store.InventoryDay(s.room.RoomID, d)
		s.False(ok)
	})

	s.Run("stay longer than the configured maximum", func() {
		_, err := s.uc.CreateBooking(s.ctx, s.input(testutil.Day(2026, 1, 1), testutil.Day(2026, 3, 1), 1))
		s.True(errs.Is(err, errs.ErrInvalidRange))
	})

	s.Run("unknown room", func() {
		in := s.input(testutil.Day(2026, 1, 10), testutil.Day(2026, 1, 11), 1)
		in.RoomID = uuid.New()
		_, err := s.uc.CreateBooking(s.ctx, in)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("room of another hotel", func() {
		in := s.input(testutil.Day(2026, 1, 10), testutil.Day(2026, 1, 11), 1)
		in.HotelID = uuid.New()
		_, err := s.uc.CreateBooking(s.ctx, in)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("hotel not published", func() {
		offline := builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) { r.HotelStatus = "offline" })
		s.store.AddHotel(offline.BuildHotel())
		s.Require().NoError(s.store.AddRoom(offline.BuildRoom()))

		in := s.input(testutil.Day(2026, 1, 10), testutil.Day(2026, 1, 11), 1)
		in.HotelID, in.RoomID = offline.HotelID, offline.RoomID
		_, err := s.uc.CreateBooking(s.ctx, in)
		s.True(errs.Is(err, errs.ErrNotBookable))
		s.Equal(0, s.store.BookingCount())
	})

	s.Run("invalid contact phone", func() {
		in := s.input(testutil.Day(2026, 1, 10), testutil.Day(2026, 1, 11), 1)
		in.ContactPhone = "call me"
		_, err := s.uc.CreateBooking(s.ctx, in)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Idempotency() {
	in := s.input(testutil.Day(2026, 4, 1), testutil.Day(2026, 4, 3), 1)
	in.IdempotencyKey = "order-42"

	first, err := s.uc.CreateBooking(s.ctx, in)
	s.Require().NoError(err)
	s.False(first.IsReplayed)

	s.Run("same request replays the original booking", func() {
		replay, err := s.uc.CreateBooking(s.ctx, in)
		s.Require().NoError(err)
		s.True(replay.IsReplayed)
		s.Equal(first.BookingID, replay.BookingID)
		s.Equal(1, s.reserved(testutil.Day(2026, 4, 1)), "replay does not reserve again")
		s.Equal(1, s.store.BookingCount())
	})

	s.Run("different payload under the same key is rejected", func() {
		changed := in
		changed.RoomsCount = 2
		_, err := s.uc.CreateBooking(s.ctx, changed)
		s.True(errs.Is(err, errs.ErrIdempotencyMismatch))
	})

	s.Run("keys are scoped per user", func() {
		other := in
		userID := uuid.New()
		other.UserID = &userID
		result, err := s.uc.CreateBooking(s.ctx, other)
		s.Require().NoError(err)
		s.False(result.IsReplayed)
		s.NotEqual(first.BookingID, result.BookingID)
	})

	s.Run("expired keys no longer replay", func() {
		s.clock.Add(25 * time.Hour)
		result, err := s.uc.CreateBooking(s.ctx, in)
		s.Require().NoError(err)
		s.False(result.IsReplayed)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Concurrency() {
	d := testutil.Day(2026, 5, 1)
	s.Require().NoError(s.store.PutInventoryDay(inventory.Day{RoomID: s.room.RoomID, Date: d, TotalUnits: 1}))

	results := make([]error, 2)
	var g errgroup.Group
	for i := range results {
		i := i
		g.Go(func() error {
			_, results[i] = s.uc.CreateBooking(s.ctx, s.input(d, d.AddDate(0, 0, 1), 1))
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	succeeded, insufficient := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errs.Is(err, errs.ErrInsufficientInventory):
			insufficient++
		}
	}
	s.Equal(1, succeeded)
	s.Equal(1, insufficient)
	s.Equal(1, s.reserved(d))
	s.Equal(1, s.store.BookingCount())
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	checkIn, checkOut := testutil.Day(2026, 6, 1), testutil.Day(2026, 6, 4)
	owner := uuid.New()
	ownerActor := shared.Actor{UserID: &owner, Role: user.RoleGuest}

	create := func() uuid.UUID {
		in := s.input(checkIn, checkOut, 2)
		in.UserID = &owner
		result, err := s.uc.CreateBooking(s.ctx, in)
		s.Require().NoError(err)
		return result.BookingID
	}

	s.Run("round trip restores every night", func() {
		before := s.reserved(checkIn)
		id := create()
		s.Equal(before+2, s.reserved(checkIn))

		s.mockCache.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		s.Require().NoError(s.uc.CancelBooking(s.ctx, id, ownerActor))

		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			s.Equal(before, s.reserved(d))
		}
		view, err := s.store.ReadStore().FindByID(s.ctx, id)
		s.Require().NoError(err)
		s.Equal("CANCELLED", view.Status)
		s.NotNil(view.CancelledAt)
	})

	s.Run("cancelling twice is a no-op", func() {
		id := create()
		s.mockCache.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		s.Require().NoError(s.uc.CancelBooking(s.ctx, id, ownerActor))
		after := s.reserved(checkIn)

		s.Require().NoError(s.uc.CancelBooking(s.ctx, id, ownerActor))
		s.Equal(after, s.reserved(checkIn))
	})

	s.Run("another user is forbidden", func() {
		id := create()
		stranger := uuid.New()
		err := s.uc.CancelBooking(s.ctx, id, shared.Actor{UserID: &stranger, Role: user.RoleGuest})
		s.True(errs.Is(err, errs.ErrForbidden))

		err = s.uc.CancelBooking(s.ctx, id, shared.Actor{Role: user.RoleGuest})
		s.True(errs.Is(err, errs.ErrForbidden), "anonymous callers cannot cancel owned bookings")
	})

	s.Run("admin may cancel any booking", func() {
		id := create()
		s.mockCache.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		admin := uuid.New()
		s.Require().NoError(s.uc.CancelBooking(s.ctx, id, shared.Actor{UserID: &admin, Role: user.RoleAdmin}))
	})

	s.Run("cache eviction failure does not fail the cancel", func() {
		id := create()
		s.mockCache.EXPECT().Delete(gomock.Any(), id).Return(errs.New("redis down")).Times(1)
		s.Require().NoError(s.uc.CancelBooking(s.ctx, id, ownerActor))
	})

	s.Run("unknown booking", func() {
		err := s.uc.CancelBooking(s.ctx, uuid.New(), ownerActor)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func TestCreateBooking_AnonymousBookingCancellableByAnyone(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	store := memory.NewStore(clk)
	rb := builder.NewRoomBuilder()
	store.AddHotel(rb.BuildHotel())
	require.NoError(t, store.AddRoom(rb.BuildRoom()))

	ctrl := gomock.NewController(t)
	evicter := commandsmock.NewMockBookingCacheEvicter(ctrl)
	evicter.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	uc := commands.NewBookingCommands(store, clk, evicter, noop.NewTracerProvider().Tracer("test"), config.NewTestConfig().Booking)

	in := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.HotelID, b.RoomID, b.UserID = rb.HotelID, rb.RoomID, nil
	}).BuildInput()
	result, err := uc.CreateBooking(context.Background(), in)
	require.NoError(t, err)

	err = uc.CancelBooking(context.Background(), result.BookingID, shared.Actor{Role: user.RoleGuest})
	assert.NoError(t, err)
}
