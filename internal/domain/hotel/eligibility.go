package hotel

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrBookingNotOwned   = errors.New("booking does not belong to the rater")
	ErrBookingOtherHotel = errors.New("booking is not for a room of this hotel")
	ErrStayNotCompleted  = errors.New("stay not completed yet")
)

// StaySnapshot is the booking data rating eligibility depends on.
// HotelID is the hotel owning the booked room.
type StaySnapshot struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	HotelID   uuid.UUID
	Status    booking.Status
	CheckOut  time.Time
}

// IsConcluded reports whether the stay is over: completed, or approved with
// checkout at or before now.
func IsConcluded(s StaySnapshot, now time.Time) bool {
	if s.Status.Is(booking.StatusCompleted) {
		return true
	}
	return s.Status.Is(booking.StatusApproved) && !s.CheckOut.After(now)
}

func CheckEligibility(s StaySnapshot, hotelID, raterID uuid.UUID, now time.Time) error {
	if s.UserID != raterID {
		return ErrBookingNotOwned
	}
	if s.HotelID != hotelID {
		return ErrBookingOtherHotel
	}
	if !IsConcluded(s, now) {
		return ErrStayNotCompleted
	}
	return nil
}

// CanRate is true iff the user holds a concluded booking in the hotel that has
// not been used for a rating yet.
func CanRate(hotelID, userID uuid.UUID, stays []StaySnapshot, rated RatedBookings, now time.Time) bool {
	for _, s := range stays {
		if rated.Has(s.BookingID) {
			continue
		}
		if CheckEligibility(s, hotelID, userID, now) == nil {
			return true
		}
	}
	return false
}
