package queries

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrRoomNotFound    = errs.New("room not found")
	ErrInvalidDates    = errs.New("invalid check-in/check-out dates")
	ErrInvalidStatus   = errs.New("invalid booking status filter")
)

// BookingFilter narrows a listing; zero values mean "any".
type BookingFilter struct {
	UserID   *uuid.UUID
	Statuses []string
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, after *Keyset, limit int32) ([]*BookingView, error)
	OccupancyByRoom(ctx context.Context, roomID uuid.UUID) ([]booking.Occupancy, error)
	StaysInHotel(ctx context.Context, userID, hotelID uuid.UUID) ([]hotel.StaySnapshot, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListAll(ctx context.Context, status string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (bool, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	rooms    RoomReadStore
}

func NewBookingQueries(bookings BookingReadStore, rooms RoomReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, rooms: rooms}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	return q.list(ctx, BookingFilter{UserID: &userID}, cursor, limit)
}

// ListAll lists every booking newest first. Filtering by approved also matches
// legacy confirmed records.
func (q *bookingQueriesImpl) ListAll(ctx context.Context, status string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	var filter BookingFilter
	if status != "" {
		s, err := booking.ParseStatus(status)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidStatus)
		}
		filter.Statuses = []string{s.String()}
		if s.Is(booking.StatusApproved) {
			filter.Statuses = []string{booking.StatusApproved.String(), booking.StatusConfirmed.String()}
		}
	}
	return q.list(ctx, filter, cursor, limit)
}

func (q *bookingQueriesImpl) list(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := afterKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.bookings.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	page, next := paginate(rows, limit, func(v *BookingView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return page, next, nil
}

// IsAvailable is the read-only availability check. It takes no locks, so a true
// result is advisory until a booking is actually created.
func (q *bookingQueriesImpl) IsAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (bool, error) {
	stay, err := booking.ParseStay(checkIn, checkOut)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidDates)
	}

	if _, err = q.rooms.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrRoomNotFound
		}
		return false, err
	}

	existing, err := q.bookings.OccupancyByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	return booking.IsAvailable(existing, stay), nil
}
