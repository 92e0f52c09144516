package room

import (
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidPrice    = errors.New("price per night must be positive")
)

const (
	MaxRoomNameLength = 255
	DefaultCapacity   = 2
)

type Room struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	name          string
	capacity      int
	pricePerNight money.Money
	amenities     []string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoom(hotelID uuid.UUID, name string, capacity int, pricePerNight money.Money, amenities []string, now time.Time) (*Room, error) {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	r := &Room{
		id:        uuid.New(),
		hotelID:   hotelID,
		amenities: amenities,
		createdAt: now,
		updatedAt: now,
	}
	if err := r.apply(name, capacity, pricePerNight); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(
	id, hotelID uuid.UUID,
	name string,
	capacity int,
	pricePerNight money.Money,
	amenities []string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		hotelID:       hotelID,
		name:          name,
		capacity:      capacity,
		pricePerNight: pricePerNight,
		amenities:     amenities,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update changes descriptive fields and the nightly price. Existing bookings keep
// the total they were priced at.
func (r *Room) Update(name string, capacity int, pricePerNight money.Money, amenities []string, now time.Time) error {
	if err := r.apply(name, capacity, pricePerNight); err != nil {
		return err
	}
	r.amenities = amenities
	r.updatedAt = now
	return nil
}

func (r *Room) apply(name string, capacity int, pricePerNight money.Money) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if pricePerNight.Cents() <= 0 {
		return ErrInvalidPrice
	}
	r.name = name
	r.capacity = capacity
	r.pricePerNight = pricePerNight
	return nil
}

// Spec is what booking creation needs to know about the room.
func (r *Room) Spec() booking.RoomSpec {
	return booking.RoomSpec{ID: r.id, HotelID: r.hotelID, PricePerNight: r.pricePerNight}
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) HotelID() uuid.UUID         { return r.hotelID }
func (r *Room) Name() string               { return r.name }
func (r *Room) Capacity() int              { return r.capacity }
func (r *Room) PricePerNight() money.Money { return r.pricePerNight }
func (r *Room) Amenities() []string        { return r.amenities }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
