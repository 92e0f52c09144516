//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func stay(t *testing.T, in, out string) booking.Stay {
	t.Helper()
	s, err := booking.NewStay(day(in), day(out))
	require.NoError(t, err)
	return s
}

func occupancy(t *testing.T, in, out string, status booking.Status) booking.Occupancy {
	t.Helper()
	return booking.Occupancy{BookingID: uuid.New(), Stay: stay(t, in, out), Status: status}
}

func TestIsAvailable(t *testing.T) {
	existing := []booking.Occupancy{
		occupancy(t, "2024-01-05", "2024-01-10", booking.StatusPending),
	}

	cases := []struct {
		name      string
		in, out   string
		available bool
	}{
		{name: "overlapping tail conflicts", in: "2024-01-08", out: "2024-01-12", available: false},
		{name: "overlapping head conflicts", in: "2024-01-01", out: "2024-01-06", available: false},
		{name: "contained stay conflicts", in: "2024-01-06", out: "2024-01-07", available: false},
		{name: "enclosing stay conflicts", in: "2024-01-01", out: "2024-01-20", available: false},
		{name: "identical stay conflicts", in: "2024-01-05", out: "2024-01-10", available: false},
		{name: "back-to-back after is free", in: "2024-01-10", out: "2024-01-12", available: true},
		{name: "back-to-back before is free", in: "2024-01-01", out: "2024-01-05", available: true},
		{name: "disjoint stay is free", in: "2024-02-01", out: "2024-02-03", available: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.available, booking.IsAvailable(existing, stay(t, c.in, c.out)))
		})
	}
}

func TestIsAvailable_StatusPolicy(t *testing.T) {
	requested := stay(t, "2024-01-08", "2024-01-12")

	cases := []struct {
		status    booking.Status
		available bool
	}{
		{status: booking.StatusPending, available: false},
		{status: booking.StatusApproved, available: false},
		{status: booking.StatusConfirmed, available: false},
		{status: booking.StatusCompleted, available: false},
		{status: booking.StatusCancelled, available: true},
	}

	for _, c := range cases {
		t.Run(string(c.status), func(t *testing.T) {
			existing := []booking.Occupancy{occupancy(t, "2024-01-05", "2024-01-10", c.status)}
			assert.Equal(t, c.available, booking.IsAvailable(existing, requested))
		})
	}
}

func TestConflicts_ReturnsOnlyHoldingOverlaps(t *testing.T) {
	hit := occupancy(t, "2024-01-05", "2024-01-10", booking.StatusApproved)
	existing := []booking.Occupancy{
		hit,
		occupancy(t, "2024-01-05", "2024-01-10", booking.StatusCancelled),
		occupancy(t, "2024-01-10", "2024-01-15", booking.StatusPending),
	}

	got := booking.Conflicts(existing, stay(t, "2024-01-09", "2024-01-10"))
	require.Len(t, got, 1)
	assert.Equal(t, hit.BookingID, got[0].BookingID)
}

func TestIsAvailable_EmptyRoom(t *testing.T) {
	assert.True(t, booking.IsAvailable(nil, stay(t, "2024-01-01", "2024-01-02")))
}
