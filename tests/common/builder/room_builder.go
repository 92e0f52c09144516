//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	HotelName          string
	Name               string
	Capacity           int
	PricePerNightCents int64
	Amenities          []string
	CreatedAt          time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                 uuid.New(),
		HotelID:            uuid.New(),
		HotelName:          "Seaside Inn",
		Name:               "Double 101",
		Capacity:           2,
		PricePerNightCents: 10000,
		Amenities:          []string{"balcony"},
		CreatedAt:          Now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() *room.Room {
	price, err := money.FromCents(r.PricePerNightCents)
	if err != nil {
		panic(err)
	}
	return room.ReconstructRoom(r.ID, r.HotelID, r.Name, r.Capacity, price, r.Amenities, r.CreatedAt, r.CreatedAt)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		HotelName:          r.HotelName,
		Name:               r.Name,
		Capacity:           r.Capacity,
		PricePerNightCents: r.PricePerNightCents,
		Amenities:          r.Amenities,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.CreatedAt,
	}
}

func (r *RoomBuilder) BuildCreateRequest() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		HotelID:       r.HotelID,
		Name:          r.Name,
		Capacity:      r.Capacity,
		PricePerNight: float64(r.PricePerNightCents) / 100,
		Amenities:     r.Amenities,
	}
}

func (r *RoomBuilder) InHotel(hotelID uuid.UUID) *RoomBuilder {
	r.HotelID = hotelID
	return r
}

func (r *RoomBuilder) WithPriceCents(cents int64) *RoomBuilder {
	r.PricePerNightCents = cents
	return r
}
