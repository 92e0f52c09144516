package booking

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrRoomUnavailable = errors.New("room is not available for the selected dates")
	ErrInvalidPrice    = errors.New("room price must be positive")
)

// RoomSpec is the room data a booking is priced against.
type RoomSpec struct {
	ID            uuid.UUID
	HotelID       uuid.UUID
	PricePerNight money.Money
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	roomID     uuid.UUID
	stay       Stay
	totalPrice money.Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a pending booking priced at the room's current nightly rate.
// existing must contain every booking currently recorded for the room.
func NewBooking(services *Services, userID uuid.UUID, room RoomSpec, stay Stay, existing []Occupancy) (*Booking, error) {
	if room.PricePerNight.Cents() <= 0 {
		return nil, ErrInvalidPrice
	}
	if !IsAvailable(existing, stay) {
		return nil, ErrRoomUnavailable
	}

	total, err := services.PriceCalculator.Total(room.PricePerNight, stay)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		roomID:     room.ID,
		stay:       stay,
		totalPrice: total,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, userID, roomID uuid.UUID,
	stay Stay,
	totalPrice money.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		roomID:     roomID,
		stay:       stay,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel is unconditional: cancelling a terminal booking just rewrites the status.
func (b *Booking) Cancel(now time.Time) {
	b.status = StatusCancelled
	b.updatedAt = now
}

// SetStatus applies an administrative status change without checking reachability
// from the current status.
func (b *Booking) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	b.status = status
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) Occupancy() Occupancy {
	return Occupancy{BookingID: b.id, Stay: b.stay, Status: b.status}
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) RoomID() uuid.UUID       { return b.roomID }
func (b *Booking) Stay() Stay              { return b.stay }
func (b *Booking) TotalPrice() money.Money { return b.totalPrice }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
