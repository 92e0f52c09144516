package response

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName,omitempty"`
	UserEmail  string    `json:"userEmail,omitempty"`
	RoomID     string    `json:"roomId"`
	RoomName   string    `json:"roomName,omitempty"`
	HotelID    string    `json:"hotelId,omitempty"`
	HotelName  string    `json:"hotelName,omitempty"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Nights     int64     `json:"nights"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

type AvailabilityResponse struct {
	RoomID      string `json:"roomId"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	IsAvailable bool   `json:"isAvailable"`
}

type DeletedResponse struct {
	ID string `json:"id"`
}

// FromBooking maps a freshly written booking; names are filled in only by views.
func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID().String(),
		UserID:     b.UserID().String(),
		RoomID:     b.RoomID().String(),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		Nights:     b.Stay().Nights(),
		TotalPrice: b.TotalPrice().Amount(),
		Status:     b.Status().Normalize().String(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	var res BookingResponse
	copyView(&res, v)
	res.TotalPrice = centsToAmount(v.TotalPriceCents)
	res.Status = booking.Status(v.Status).Normalize().String()
	if stay, err := booking.NewStay(v.CheckIn, v.CheckOut); err == nil {
		res.Nights = stay.Nights()
	}
	return res
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) BookingListResponse {
	res := BookingListResponse{Items: make([]BookingResponse, len(views))}
	for i, v := range views {
		res.Items[i] = FromBookingView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
