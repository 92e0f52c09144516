package response

import (
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/usecase/queries"
)

type HotelResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Amenities    []string  `json:"amenities"`
	Rating       float64   `json:"rating"`
	RatingsCount int       `json:"ratingsCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type HotelDetailResponse struct {
	Hotel   HotelResponse  `json:"hotel"`
	Rooms   []RoomResponse `json:"rooms"`
	CanRate bool           `json:"canRate"`
}

type RatingResponse struct {
	HotelID      string  `json:"hotelId"`
	UserRating   float64 `json:"userRating"`
	Rating       float64 `json:"rating"`
	RatingsCount int     `json:"ratingsCount"`
}

type RoomResponse struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotelId"`
	HotelName     string    `json:"hotelName,omitempty"`
	Name          string    `json:"name"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"pricePerNight"`
	Amenities     []string  `json:"amenities"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromHotelView(v *queries.HotelView) HotelResponse {
	var res HotelResponse
	copyView(&res, v)
	return res
}

func FromHotelViews(views []*queries.HotelView) []HotelResponse {
	res := make([]HotelResponse, len(views))
	for i, v := range views {
		res[i] = FromHotelView(v)
	}
	return res
}

func FromHotel(h *hotel.Hotel) HotelResponse {
	d := h.Details()
	agg := h.Aggregate()
	var res HotelResponse
	copyView(&res, &d)
	res.ID = h.ID().String()
	if res.Amenities == nil {
		res.Amenities = []string{}
	}
	res.Rating = agg.Rating
	res.RatingsCount = agg.Count
	res.CreatedAt = h.CreatedAt()
	res.UpdatedAt = h.UpdatedAt()
	return res
}

func FromHotelDetail(d *queries.HotelWithEligibility) HotelDetailResponse {
	res := HotelDetailResponse{
		Hotel:   FromHotelView(&d.Hotel),
		Rooms:   make([]RoomResponse, len(d.Rooms)),
		CanRate: d.CanRate,
	}
	for i := range d.Rooms {
		res.Rooms[i] = FromRoomView(&d.Rooms[i])
	}
	return res
}

func FromRating(h *hotel.Hotel, value float64) RatingResponse {
	agg := h.Aggregate()
	return RatingResponse{
		HotelID:      h.ID().String(),
		UserRating:   value,
		Rating:       agg.Rating,
		RatingsCount: agg.Count,
	}
}

func FromRoomView(v *queries.RoomView) RoomResponse {
	var res RoomResponse
	copyView(&res, v)
	res.PricePerNight = centsToAmount(v.PricePerNightCents)
	return res
}

func FromRoomViews(views []*queries.RoomView) []RoomResponse {
	res := make([]RoomResponse, len(views))
	for i, v := range views {
		res[i] = FromRoomView(v)
	}
	return res
}

func FromRoom(r *room.Room) RoomResponse {
	amenities := r.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return RoomResponse{
		ID:            r.ID().String(),
		HotelID:       r.HotelID().String(),
		Name:          r.Name(),
		Capacity:      r.Capacity(),
		PricePerNight: r.PricePerNight().Amount(),
		Amenities:     amenities,
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}
