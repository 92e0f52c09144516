package request

import "github.com/google/uuid"

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description" binding:"max=5000"`
	Address     string   `json:"address" binding:"max=500"`
	City        string   `json:"city" binding:"max=100"`
	Country     string   `json:"country" binding:"max=100"`
	Amenities   []string `json:"amenities" binding:"omitempty,dive,max=100"`
}

type UpdateHotelRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description" binding:"omitempty,max=5000"`
	Address     *string   `json:"address" binding:"omitempty,max=500"`
	City        *string   `json:"city" binding:"omitempty,max=100"`
	Country     *string   `json:"country" binding:"omitempty,max=100"`
	Amenities   *[]string `json:"amenities"`
}

type HotelListQuery struct {
	City string `form:"city"`
	Q    string `form:"q"`
}

// RateHotelRequest uses a pointer so a missing value is told apart from zero.
type RateHotelRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Value     *float64  `json:"value" binding:"required,rating_value"`
}
