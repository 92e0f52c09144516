//go:build unit

package hotel_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCheckEligibility(t *testing.T) {
	hotelID := uuid.New()
	guestID := uuid.New()
	now := builder.Now

	stay := func(mutate func(*hotel.StaySnapshot)) hotel.StaySnapshot {
		s := hotel.StaySnapshot{
			BookingID: uuid.New(),
			UserID:    guestID,
			HotelID:   hotelID,
			Status:    booking.StatusCompleted,
			CheckOut:  now.Add(-24 * time.Hour),
		}
		if mutate != nil {
			mutate(&s)
		}
		return s
	}

	cases := []struct {
		name  string
		stay  hotel.StaySnapshot
		errIs error
	}{
		{name: "completed stay", stay: stay(nil)},
		{
			name: "approved stay already checked out",
			stay: stay(func(s *hotel.StaySnapshot) { s.Status = booking.StatusApproved }),
		},
		{
			name: "legacy confirmed stay checking out right now",
			stay: stay(func(s *hotel.StaySnapshot) { s.Status = booking.StatusConfirmed; s.CheckOut = now }),
		},
		{
			name:  "approved stay still running",
			stay:  stay(func(s *hotel.StaySnapshot) { s.Status = booking.StatusApproved; s.CheckOut = now.Add(time.Hour) }),
			errIs: hotel.ErrStayNotCompleted,
		},
		{
			name:  "pending stay in the past",
			stay:  stay(func(s *hotel.StaySnapshot) { s.Status = booking.StatusPending }),
			errIs: hotel.ErrStayNotCompleted,
		},
		{
			name:  "cancelled stay",
			stay:  stay(func(s *hotel.StaySnapshot) { s.Status = booking.StatusCancelled }),
			errIs: hotel.ErrStayNotCompleted,
		},
		{
			name:  "someone else's booking",
			stay:  stay(func(s *hotel.StaySnapshot) { s.UserID = uuid.New() }),
			errIs: hotel.ErrBookingNotOwned,
		},
		{
			name:  "booking in another hotel",
			stay:  stay(func(s *hotel.StaySnapshot) { s.HotelID = uuid.New() }),
			errIs: hotel.ErrBookingOtherHotel,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hotel.CheckEligibility(tc.stay, hotelID, guestID, now)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestCanRate(t *testing.T) {
	hotelID := uuid.New()
	guestID := uuid.New()
	now := builder.Now

	completed := hotel.StaySnapshot{
		BookingID: uuid.New(),
		UserID:    guestID,
		HotelID:   hotelID,
		Status:    booking.StatusCompleted,
		CheckOut:  now.Add(-48 * time.Hour),
	}
	pending := hotel.StaySnapshot{
		BookingID: uuid.New(),
		UserID:    guestID,
		HotelID:   hotelID,
		Status:    booking.StatusPending,
		CheckOut:  now.Add(48 * time.Hour),
	}

	t.Run("unrated completed stay", func(t *testing.T) {
		assert.True(t, hotel.CanRate(hotelID, guestID, []hotel.StaySnapshot{pending, completed}, hotel.NewRatedBookings(), now))
	})

	t.Run("only stay already rated", func(t *testing.T) {
		rated := hotel.NewRatedBookings(completed.BookingID)
		assert.False(t, hotel.CanRate(hotelID, guestID, []hotel.StaySnapshot{pending, completed}, rated, now))
	})

	t.Run("no concluded stay", func(t *testing.T) {
		assert.False(t, hotel.CanRate(hotelID, guestID, []hotel.StaySnapshot{pending}, hotel.NewRatedBookings(), now))
	})

	t.Run("no stays at all", func(t *testing.T) {
		assert.False(t, hotel.CanRate(hotelID, guestID, nil, hotel.NewRatedBookings(), now))
	})

	t.Run("another guest", func(t *testing.T) {
		assert.False(t, hotel.CanRate(hotelID, uuid.New(), []hotel.StaySnapshot{completed}, hotel.NewRatedBookings(), now))
	})
}
