package queries

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHotelNotFound = errs.New("hotel not found")

type HotelFilter struct {
	City string
	// Q matches the hotel name case-insensitively.
	Q string
}

type HotelReadStore interface {
	List(ctx context.Context, filter HotelFilter) ([]*HotelView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	RatedBookingIDs(ctx context.Context, hotelID uuid.UUID) ([]uuid.UUID, error)
}

// HotelDetailCache returns (nil, nil) on a miss.
type HotelDetailCache interface {
	Get(ctx context.Context, hotelID uuid.UUID) (*HotelDetail, error)
	Set(ctx context.Context, detail *HotelDetail) error
}

type HotelQueries interface {
	List(ctx context.Context, filter HotelFilter) ([]*HotelView, error)
	GetWithEligibility(ctx context.Context, hotelID uuid.UUID, userID *uuid.UUID) (*HotelWithEligibility, error)
	CanRate(ctx context.Context, hotelID, userID uuid.UUID) (bool, error)
}

type hotelQueriesImpl struct {
	hotels   HotelReadStore
	rooms    RoomReadStore
	bookings BookingReadStore
	cache    HotelDetailCache
	clock    clock.Clock
}

func NewHotelQueries(
	hotels HotelReadStore,
	rooms RoomReadStore,
	bookings BookingReadStore,
	cache HotelDetailCache,
	clk clock.Clock,
) HotelQueries {
	return &hotelQueriesImpl{
		hotels:   hotels,
		rooms:    rooms,
		bookings: bookings,
		cache:    cache,
		clock:    clk,
	}
}

func (q *hotelQueriesImpl) List(ctx context.Context, filter HotelFilter) ([]*HotelView, error) {
	return q.hotels.List(ctx, filter)
}

// GetWithEligibility returns the hotel, its rooms and whether the caller may rate it.
// Anonymous callers can never rate.
func (q *hotelQueriesImpl) GetWithEligibility(ctx context.Context, hotelID uuid.UUID, userID *uuid.UUID) (*HotelWithEligibility, error) {
	detail, err := q.detail(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	result := &HotelWithEligibility{
		Hotel: detail.Hotel,
		Rooms: detail.Rooms,
	}
	if userID == nil {
		return result, nil
	}

	result.CanRate, err = q.CanRate(ctx, hotelID, *userID)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (q *hotelQueriesImpl) CanRate(ctx context.Context, hotelID, userID uuid.UUID) (bool, error) {
	stays, err := q.bookings.StaysInHotel(ctx, userID, hotelID)
	if err != nil {
		return false, err
	}
	if len(stays) == 0 {
		return false, nil
	}

	rated, err := q.hotels.RatedBookingIDs(ctx, hotelID)
	if err != nil {
		return false, err
	}

	return hotel.CanRate(hotelID, userID, stays, hotel.NewRatedBookings(rated...), q.clock.Now()), nil
}

func (q *hotelQueriesImpl) detail(ctx context.Context, hotelID uuid.UUID) (*HotelDetail, error) {
	if q.cache != nil {
		cached, err := q.cache.Get(ctx, hotelID)
		if err != nil {
			slog.Warn("hotel cache read failed", "hotel_id", hotelID.String(), "error", err.Error())
		} else if cached != nil {
			return cached, nil
		}
	}

	h, err := q.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	rooms, err := q.rooms.List(ctx, &hotelID)
	if err != nil {
		return nil, err
	}

	detail := &HotelDetail{Hotel: *h, Rooms: make([]RoomView, 0, len(rooms))}
	for _, r := range rooms {
		detail.Rooms = append(detail.Rooms, *r)
	}

	if q.cache != nil {
		if err := q.cache.Set(ctx, detail); err != nil {
			slog.Warn("hotel cache write failed", "hotel_id", hotelID.String(), "error", err.Error())
		}
	}
	return detail, nil
}
