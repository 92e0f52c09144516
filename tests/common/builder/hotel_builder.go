//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/hotel"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Address     string
	City        string
	Country     string
	Amenities   []string
	// Ratings already recorded for the hotel.
	Ratings   []hotel.RatingRecord
	CreatedAt time.Time
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:          uuid.New(),
		Name:        "Seaside Inn",
		Description: "Quiet rooms by the harbour",
		Address:     "1 Harbour Road",
		City:        "Lisbon",
		Country:     "Portugal",
		Amenities:   []string{"wifi", "breakfast"},
		CreatedAt:   Now,
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

func (h *HotelBuilder) details() hotel.Details {
	return hotel.Details{
		Name:        h.Name,
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		Country:     h.Country,
		Amenities:   h.Amenities,
	}
}

func (h *HotelBuilder) BuildDomain() *hotel.Hotel {
	return hotel.ReconstructHotel(h.ID, h.details(), h.Ratings, h.CreatedAt, h.CreatedAt)
}

func (h *HotelBuilder) BuildView() *queries.HotelView {
	agg := hotel.ComputeAggregate(h.Ratings)
	return &queries.HotelView{
		ID:           h.ID,
		Name:         h.Name,
		Description:  h.Description,
		Address:      h.Address,
		City:         h.City,
		Country:      h.Country,
		Amenities:    h.Amenities,
		Rating:       agg.Rating,
		RatingsCount: agg.Count,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.CreatedAt,
	}
}

func (h *HotelBuilder) BuildCreateRequest() reqdto.CreateHotelRequest {
	return reqdto.CreateHotelRequest{
		Name:        h.Name,
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		Country:     h.Country,
		Amenities:   h.Amenities,
	}
}

// WithRating records a rating earned by a fresh booking of a fresh guest.
func (h *HotelBuilder) WithRating(value float64) *HotelBuilder {
	v, err := hotel.NewRatingValue(value)
	if err != nil {
		panic(err)
	}
	h.Ratings = append(h.Ratings, hotel.NewRatingRecord(uuid.New(), uuid.New(), v, h.CreatedAt))
	return h
}

func (h *HotelBuilder) WithCity(city string) *HotelBuilder {
	h.City = city
	return h
}

func (h *HotelBuilder) WithName(name string) *HotelBuilder {
	h.Name = name
	return h
}
