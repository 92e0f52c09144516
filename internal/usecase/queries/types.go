package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	UserName        string    `json:"userName"`
	UserEmail       string    `json:"userEmail"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomName        string    `json:"roomName"`
	HotelID         uuid.UUID `json:"hotelId"`
	HotelName       string    `json:"hotelName"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type HotelView struct {
	ID           uuid.UUID `json:"id"`
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

type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotelId"`
	HotelName          string    `json:"hotelName"`
	Name               string    `json:"name"`
	Capacity           int       `json:"capacity"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
	Amenities          []string  `json:"amenities"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// HotelDetail is the cacheable part of a hotel page; it has no per-user data.
type HotelDetail struct {
	Hotel HotelView  `json:"hotel"`
	Rooms []RoomView `json:"rooms"`
}

type HotelWithEligibility struct {
	Hotel   HotelView
	Rooms   []RoomView
	CanRate bool
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatusCount struct {
	Status string
	Count  int64
}

type MonthlyStat struct {
	Month        time.Time
	Bookings     int64
	RevenueCents int64
}

type HotelRevenue struct {
	HotelID      uuid.UUID
	HotelName    string
	Bookings     int64
	RevenueCents int64
}

type Summary struct {
	Hotels       int64
	Rooms        int64
	Bookings     int64
	RevenueCents int64
	ByStatus     []StatusCount
	Monthly      []MonthlyStat
	// Both top lists are capped at the same size; revenue ignores pending and cancelled.
	TopByBookings []HotelRevenue
	TopByRevenue  []HotelRevenue
}
