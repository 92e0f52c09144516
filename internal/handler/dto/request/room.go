package request

import "github.com/google/uuid"

// CreateRoomRequest takes the nightly price in currency units; capacity defaults to 2.
type CreateRoomRequest struct {
	HotelID       uuid.UUID `json:"hotelId" binding:"required"`
	Name          string    `json:"name" binding:"required,max=200"`
	Capacity      int       `json:"capacity" binding:"omitempty,min=1,max=50"`
	PricePerNight float64   `json:"pricePerNight" binding:"required,gt=0"`
	Amenities     []string  `json:"amenities" binding:"omitempty,dive,max=100"`
}

type UpdateRoomRequest struct {
	Name          *string   `json:"name" binding:"omitempty,min=1,max=200"`
	Capacity      *int      `json:"capacity" binding:"omitempty,min=1,max=50"`
	PricePerNight *float64  `json:"pricePerNight" binding:"omitempty,gt=0"`
	Amenities     *[]string `json:"amenities"`
}

type RoomListQuery struct {
	HotelID string `form:"hotelId" binding:"omitempty,uuid"`
}
