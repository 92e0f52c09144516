//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(now time.Time) *booking.Services {
	return &booking.Services{
		Clock:           clock.NewFixed(now),
		PriceCalculator: booking.NewNightlyPriceCalculator(),
	}
}

func roomSpec(t *testing.T, price float64) booking.RoomSpec {
	t.Helper()
	m, err := money.FromAmount(price)
	require.NoError(t, err)
	return booking.RoomSpec{ID: uuid.New(), HotelID: uuid.New(), PricePerNight: m}
}

func TestNewBooking(t *testing.T) {
	now := day("2024-02-01")
	services := newServices(now)
	userID := uuid.New()
	room := roomSpec(t, 100)

	t.Run("creates pending booking with snapshotted price", func(t *testing.T) {
		b, err := booking.NewBooking(services, userID, room, stay(t, "2024-03-01", "2024-03-04"), nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, int64(30000), b.TotalPrice().Cents())
		assert.Equal(t, room.ID, b.RoomID())
		assert.True(t, b.IsOwnedBy(userID))
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("rejects overlap with a pending booking", func(t *testing.T) {
		existing := []booking.Occupancy{occupancy(t, "2024-01-05", "2024-01-10", booking.StatusPending)}
		b, err := booking.NewBooking(services, userID, room, stay(t, "2024-01-08", "2024-01-12"), existing)
		require.ErrorIs(t, err, booking.ErrRoomUnavailable)
		assert.Nil(t, b)
	})

	t.Run("allows back-to-back booking", func(t *testing.T) {
		existing := []booking.Occupancy{occupancy(t, "2024-01-05", "2024-01-10", booking.StatusPending)}
		_, err := booking.NewBooking(services, userID, room, stay(t, "2024-01-10", "2024-01-12"), existing)
		require.NoError(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		free := roomSpec(t, 0)
		_, err := booking.NewBooking(services, userID, free, stay(t, "2024-03-01", "2024-03-02"), nil)
		require.ErrorIs(t, err, booking.ErrInvalidPrice)
	})
}

func TestBooking_StatusChanges(t *testing.T) {
	now := day("2024-02-01")
	later := now.Add(time.Hour)

	t.Run("cancel is unconditional", func(t *testing.T) {
		for _, from := range []booking.Status{booking.StatusPending, booking.StatusApproved, booking.StatusCompleted, booking.StatusCancelled} {
			b := booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(), stay(t, "2024-03-01", "2024-03-02"), money.Money{}, from, now, now)
			b.Cancel(later)
			assert.Equal(t, booking.StatusCancelled, b.Status(), "from %s", from)
			assert.Equal(t, later, b.UpdatedAt())
		}
	})

	t.Run("admin status change does not check reachability", func(t *testing.T) {
		b := booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(), stay(t, "2024-03-01", "2024-03-02"), money.Money{}, booking.StatusCompleted, now, now)
		require.NoError(t, b.SetStatus(booking.StatusApproved, later))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})
}

func TestParseAdminStatus(t *testing.T) {
	for _, ok := range []string{"approved", "cancelled", "completed"} {
		s, err := booking.ParseAdminStatus(ok)
		require.NoError(t, err)
		assert.Equal(t, booking.Status(ok), s)
	}
	for _, bad := range []string{"archived", "pending", "confirmed", "", "APPROVED"} {
		_, err := booking.ParseAdminStatus(bad)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus, bad)
	}
}

func TestStatus_ConfirmedIsApproved(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.Is(booking.StatusApproved))
	assert.True(t, booking.StatusApproved.Is(booking.StatusConfirmed))
	assert.False(t, booking.StatusPending.Is(booking.StatusApproved))
	assert.Equal(t, booking.StatusApproved, booking.StatusConfirmed.Normalize())
}
