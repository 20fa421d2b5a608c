package components

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/infra/memory"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const backendMemory = "memory"

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is the storage backend chosen by INVENTORY_BACKEND.
type Persistence struct {
	fx.Out

	UoW          shared.UnitOfWork
	BookingViews queries.BookingViewRepo
	Calendar     queries.CalendarReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, tracer trace.Tracer, logger *slog.Logger) (Persistence, error) {
	if cfg.Booking.InventoryBackend == backendMemory {
		return newMemoryPersistence(cfg, clk, logger)
	}
	return newPostgresPersistence(lc, cfg, tracer)
}

func newPostgresPersistence(lc fx.Lifecycle, cfg config.Config, tracer trace.Tracer) (Persistence, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Persistence{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	q := dbquery.New()
	return Persistence{
		UoW:          uow.NewPostgresUoW(pool, q, tracer, cfg.Booking.TxMaxRetries),
		BookingViews: readstore.NewBookingReadStore(q, pool),
		Calendar:     readstore.NewCalendarReadStore(q, pool),
	}, nil
}

func newMemoryPersistence(cfg config.Config, clk clock.Clock, logger *slog.Logger) (Persistence, error) {
	store := memory.NewStore(clk)
	if path := cfg.Booking.MemorySeedFile; path != "" {
		if err := store.LoadFixtureFile(path); err != nil {
			return Persistence{}, err
		}
		logger.Info("memory backend seeded", "fixture", path)
	} else {
		logger.Warn("memory backend started without a catalog fixture")
	}

	reads := store.ReadStore()
	return Persistence{
		UoW:          store,
		BookingViews: reads,
		Calendar:     reads,
	}, nil
}
