package request

import "github.com/google/uuid"

// CreateBookingRequest carries RFC 3339 instants; a date-only value means midnight UTC.
type CreateBookingRequest struct {
	RoomID   uuid.UUID `json:"roomId" binding:"required"`
	CheckIn  string    `json:"checkIn" binding:"required"`
	CheckOut string    `json:"checkOut" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

type ListBookingsQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After  string `form:"after"`
	Status string `form:"status"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}
