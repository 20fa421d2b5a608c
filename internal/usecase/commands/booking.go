package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CreateBookingInput struct {
	HotelID        uuid.UUID
	RoomID         uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	RoomsCount     int
	GuestCount     int
	ContactName    string
	ContactPhone   string
	UserID         *uuid.UUID
	IdempotencyKey string
}

type CreateBookingResult struct {
	BookingID  uuid.UUID
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, id uuid.UUID, actor shared.Actor) error
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
	clock   clock.Clock
	cache   BookingCacheEvicter
	tracer  trace.Tracer
	cfg     config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	cache BookingCacheEvicter,
	tracer trace.Tracer,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		factory: booking.NewFactory(clk),
		clock:   clk,
		cache:   cache,
		tracer:  tracer,
		cfg:     cfg,
	}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (result *CreateBookingResult, err error) {
	ctx, span := startSpan(ctx, uc.tracer, "BookingCommands.CreateBooking")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(
		attribute.String("hotel_id", in.HotelID.String()),
		attribute.String("room_id", in.RoomID.String()),
	)

	// Range and shape checks run before any store access.
	s, err := stay.New(in.CheckIn, in.CheckOut, uc.cfg.MaxNights)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}
	occupancy, err := booking.NewOccupancy(in.RoomsCount, in.GuestCount)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	contact, err := booking.NewContact(in.ContactName, in.ContactPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	scope := uuid.Nil
	if in.UserID != nil {
		scope = *in.UserID
	}
	requestHash := calculateRequestHash(in)

	result = &CreateBookingResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = CreateBookingResult{}

		if in.IdempotencyKey != "" {
			rec, ferr := tx.Idempotency().Find(ctx, in.IdempotencyKey, scope, uc.clock.Now())
			if ferr != nil && !infra.IsKind(ferr, infra.KindNotFound) {
				return ferr
			}
			if rec != nil {
				if rec.RequestHash != requestHash {
					return errs.ErrIdempotencyMismatch
				}
				result.BookingID = rec.BookingID
				result.IsReplayed = true
				return nil
			}
		}

		room, rerr := tx.Reads().RoomByID(ctx, in.RoomID)
		if rerr != nil {
			return notFound(rerr)
		}
		if !room.Room().BelongsTo(in.HotelID) {
			return errs.Wrapf(errs.ErrNotFound, "room %s does not belong to hotel %s", in.RoomID, in.HotelID)
		}
		if !room.Hotel().IsBookable() {
			return errs.Wrapf(errs.ErrNotBookable, "hotel status %s", room.HotelStatus)
		}

		dates := s.Dates()
		if derr := tx.Inventory().EnsureDays(ctx, room.ID, dates, room.Capacity); derr != nil {
			return derr
		}
		days, derr := tx.Inventory().LockDays(ctx, room.ID, dates)
		if derr != nil {
			return derr
		}
		reserved, derr := inventory.Reserve(days, occupancy.Rooms())
		if derr != nil {
			return errs.Mark(derr, errs.ErrInsufficientInventory)
		}

		entries, derr := tx.Calendar().FindEntries(ctx, room.ID, s.CheckIn(), s.CheckOut())
		if derr != nil {
			return derr
		}
		b, derr := uc.factory.Create(booking.CreateParams{
			UserID:    in.UserID,
			HotelID:   in.HotelID,
			RoomID:    room.ID,
			Stay:      s,
			Occupancy: occupancy,
			Contact:   contact,
		}, pricing.NewCalendar(room.BasePrice, entries))
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		if derr = tx.Inventory().SaveDays(ctx, reserved); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}

		if in.IdempotencyKey != "" {
			derr = tx.Idempotency().Save(ctx, shared.IdempotencyRecord{
				Key:         in.IdempotencyKey,
				Scope:       scope,
				RequestHash: requestHash,
				BookingID:   b.ID(),
				ExpiresAt:   uc.clock.Now().Add(uc.cfg.IdempotencyWindow()),
			})
			if derr != nil {
				if infra.IsKind(derr, infra.KindDuplicateKey) {
					return errs.Mark(derr, errs.ErrWriteConflict)
				}
				return derr
			}
		}

		result.BookingID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("booking_id", result.BookingID.String()),
		attribute.Bool("replayed", result.IsReplayed),
	)
	return result, nil
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID, actor shared.Actor) (err error) {
	ctx, span := startSpan(ctx, uc.tracer, "BookingCommands.CancelBooking")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("booking_id", id.String()))

	changed := false
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changed = false

		b, ferr := tx.Bookings().FindForUpdate(ctx, id)
		if ferr != nil {
			return notFound(ferr)
		}
		if aerr := authorizeCancel(actor, b); aerr != nil {
			return aerr
		}
		if b.IsCancelled() {
			return nil
		}

		days, lerr := tx.Inventory().LockDays(ctx, b.RoomID(), b.Stay().Dates())
		if lerr != nil {
			return lerr
		}
		if serr := tx.Inventory().SaveDays(ctx, inventory.Release(days, b.RoomsCount())); serr != nil {
			return serr
		}

		b.Cancel(uc.clock.Now().UTC())
		if uerr := tx.Bookings().UpdateStatus(ctx, b); uerr != nil {
			return uerr
		}
		changed = true
		return nil
	})
	if err != nil {
		return err
	}

	if changed {
		if cerr := uc.cache.Delete(ctx, id); cerr != nil {
			slog.Warn("failed to evict booking view", "booking_id", id.String(), "error", cerr.Error())
		}
	}
	return nil
}

// Admins cancel anything; a booking with an owner can only be cancelled by that owner.
func authorizeCancel(actor shared.Actor, b *booking.Booking) error {
	if actor.IsAdmin() {
		return nil
	}
	if b.UserID() == nil {
		return nil
	}
	if actor.UserID == nil || !b.OwnedBy(*actor.UserID) {
		return errs.ErrForbidden
	}
	return nil
}

func calculateRequestHash(in CreateBookingInput) string {
	payload := struct {
		HotelID      uuid.UUID `json:"hotel_id"`
		RoomID       uuid.UUID `json:"room_id"`
		CheckIn      string    `json:"check_in"`
		CheckOut     string    `json:"check_out"`
		RoomsCount   int       `json:"rooms_count"`
		GuestCount   int       `json:"guest_count"`
		ContactName  string    `json:"contact_name"`
		ContactPhone string    `json:"contact_phone"`
	}{
		HotelID:      in.HotelID,
		RoomID:       in.RoomID,
		CheckIn:      stay.FormatDate(in.CheckIn),
		CheckOut:     stay.FormatDate(in.CheckOut),
		RoomsCount:   in.RoomsCount,
		GuestCount:   in.GuestCount,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
	}
	data, _ := json.Marshal(payload)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
