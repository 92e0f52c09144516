package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic.
	// fn may run more than once and must not leak state between attempts.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Hotels() HotelRepository
	Users() UserRepository
	Idempotency() IdempotencyRepository
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// LockByID loads the booking and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ListOccupancyByRoom returns every booking on the room, cancelled ones included.
	ListOccupancyByRoom(ctx context.Context, roomID uuid.UUID) ([]booking.Occupancy, error)
	FindStay(ctx context.Context, id uuid.UUID) (*hotel.StaySnapshot, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// LockByID serializes booking creation per room.
	LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// LockByID loads the hotel with its rating records under a row lock.
	LockByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	AddRating(ctx context.Context, hotelID uuid.UUID, record hotel.RatingRecord) error
	SaveAggregate(ctx context.Context, h *hotel.Hotel) error
	UpdateDetails(ctx context.Context, h *hotel.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
}

type IdempotencyRepository interface {
	Find(ctx context.Context, key string, userID uuid.UUID) (*IdempotencyRecord, error)
	Save(ctx context.Context, rec IdempotencyRecord) error
	Delete(ctx context.Context, key string, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
