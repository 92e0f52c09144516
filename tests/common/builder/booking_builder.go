//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RoomID          uuid.UUID
	HotelID         uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	TotalPriceCents int64
	Status          booking.Status
	CreatedAt       time.Time
}

// NewBookingBuilder defaults to a pending two-night stay from the 1st to the 3rd.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		RoomID:          uuid.New(),
		HotelID:         uuid.New(),
		CheckIn:         Day(1),
		CheckOut:        Day(3),
		TotalPriceCents: 20000,
		Status:          booking.StatusPending,
		CreatedAt:       Now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	total, err := money.FromCents(b.TotalPriceCents)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(b.ID, b.UserID, b.RoomID, stay, total, b.Status, b.CreatedAt, b.CreatedAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		UserID:          b.UserID,
		UserName:        "Test Guest",
		UserEmail:       "guest@example.com",
		RoomID:          b.RoomID,
		RoomName:        "Double 101",
		HotelID:         b.HotelID,
		HotelName:       "Seaside Inn",
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn.Format(time.RFC3339),
		CheckOut: b.CheckOut.Format(time.RFC3339),
	}
}

func (b *BookingBuilder) ForUser(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) ForRoom(roomID, hotelID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	b.HotelID = hotelID
	return b
}

func (b *BookingBuilder) Between(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}
