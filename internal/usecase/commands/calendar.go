package commands

import (
	"context"
	"time"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/pricing"
	"hotel-booking/internal/domain/stay"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/ptr"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Nil fields keep the current value.
type SetInventoryInput struct {
	RoomID       uuid.UUID
	Date         time.Time
	TotalUnits   *int
	BlockedUnits *int
}

type UpsertPriceInput struct {
	RoomID     uuid.UUID
	Date       time.Time
	Price      int64
	PromoType  *string
	PromoValue *int64
	Actor      shared.Actor
}

// CalendarCommands covers the admin allotment and merchant price writes.
type CalendarCommands interface {
	SetInventory(ctx context.Context, in SetInventoryInput) (*inventory.Day, error)
	UpsertPrice(ctx context.Context, in UpsertPriceInput) (*pricing.Entry, error)
}

type calendarCommandsImpl struct {
	uow    shared.UnitOfWork
	tracer trace.Tracer
}

func NewCalendarCommands(uow shared.UnitOfWork, tracer trace.Tracer) CalendarCommands {
	return &calendarCommandsImpl{uow: uow, tracer: tracer}
}

func (uc *calendarCommandsImpl) SetInventory(ctx context.Context, in SetInventoryInput) (day *inventory.Day, err error) {
	ctx, span := startSpan(ctx, uc.tracer, "CalendarCommands.SetInventory")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("room_id", in.RoomID.String()))

	date := stay.Normalize(in.Date)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, rerr := tx.Reads().RoomByID(ctx, in.RoomID)
		if rerr != nil {
			return notFound(rerr)
		}

		dates := []time.Time{date}
		if eerr := tx.Inventory().EnsureDays(ctx, room.ID, dates, room.Capacity); eerr != nil {
			return eerr
		}
		days, lerr := tx.Inventory().LockDays(ctx, room.ID, dates)
		if lerr != nil {
			return lerr
		}
		if len(days) != 1 {
			return errs.Wrapf(errs.ErrDatabaseOperationFailed, "expected one inventory row, got %d", len(days))
		}

		current := days[0]
		next, aerr := current.SetAllotment(
			ptr.Deref(in.TotalUnits, current.TotalUnits),
			ptr.Deref(in.BlockedUnits, current.BlockedUnits),
		)
		if aerr != nil {
			return errs.Mark(aerr, errs.ErrAllotmentConflict)
		}
		if serr := tx.Inventory().SaveDays(ctx, []inventory.Day{next}); serr != nil {
			return serr
		}
		day = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (uc *calendarCommandsImpl) UpsertPrice(ctx context.Context, in UpsertPriceInput) (entry *pricing.Entry, err error) {
	ctx, span := startSpan(ctx, uc.tracer, "CalendarCommands.UpsertPrice")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("room_id", in.RoomID.String()))

	e, err := pricing.NewEntry(in.RoomID, stay.Normalize(in.Date), in.Price, in.PromoType, in.PromoValue)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, rerr := tx.Reads().RoomByID(ctx, in.RoomID)
		if rerr != nil {
			return notFound(rerr)
		}
		if !canManageRoom(in.Actor, room) {
			return errs.ErrForbidden
		}
		return tx.Calendar().Upsert(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func canManageRoom(actor shared.Actor, room *shared.RoomSnapshot) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.UserID != nil && room.MerchantID != nil && *room.MerchantID == *actor.UserID
}
