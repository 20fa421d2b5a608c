package readstore

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/dbquery"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomWithHotel(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (dbquery.RoomWithHotelRow, error)
}

// RoomReadStore serves catalog lookups to both the write side (inside a
// transaction) and the calendar query.
type RoomReadStore struct {
	queries RoomReadQueries
	db      db.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      dbtx,
	}
}

func (r *RoomReadStore) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomWithHotel(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapPgErr(slog.Default(), "failed to find room", err)
	}

	return &shared.RoomSnapshot{
		ID:          row.ID,
		HotelID:     row.HotelID,
		Name:        row.Name,
		Capacity:    int(row.Capacity),
		BasePrice:   row.BasePrice,
		HotelName:   row.HotelName,
		HotelStatus: catalog.HotelStatus(row.HotelStatus),
		MerchantID:  pgconv.UUIDPtrFromPgtype(row.MerchantID),
	}, nil
}
