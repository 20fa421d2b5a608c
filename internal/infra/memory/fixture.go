package memory

import (
	"io"
	"os"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/pkg/errs"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Fixture is the catalog a memory-backed process starts with. The service owns
// no catalog writes, so local runs need one to have anything to book.
type Fixture struct {
	Hotels []struct {
		ID         uuid.UUID  `json:"id"`
		Name       string     `json:"name"`
		Status     string     `json:"status"`
		MerchantID *uuid.UUID `json:"merchant_id,omitempty"`
		Rooms      []struct {
			ID        uuid.UUID `json:"id"`
			Name      string    `json:"name"`
			Capacity  int       `json:"capacity"`
			BasePrice int64     `json:"base_price"`
		} `json:"rooms"`
	} `json:"hotels"`
}

func (s *Store) LoadFixture(r io.Reader) error {
	var f Fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return errs.Wrap(err, "failed to decode fixture")
	}

	for _, h := range f.Hotels {
		s.AddHotel(catalog.Hotel{
			ID:         h.ID,
			Name:       h.Name,
			Status:     catalog.HotelStatus(h.Status),
			MerchantID: h.MerchantID,
		})
		for _, rm := range h.Rooms {
			err := s.AddRoom(catalog.Room{
				ID:        rm.ID,
				HotelID:   h.ID,
				Name:      rm.Name,
				Capacity:  rm.Capacity,
				BasePrice: rm.BasePrice,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) LoadFixtureFile(path string) error {
	f, err := os.Open(path) // #nosec G304 -- operator-supplied path
	if err != nil {
		return errs.Wrapf(err, "failed to open fixture %s", path)
	}
	defer f.Close()
	return s.LoadFixture(f)
}
