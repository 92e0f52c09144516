//go:build unit

package room_test

import (
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, cents int64) money.Money {
	t.Helper()
	m, err := money.FromCents(cents)
	require.NoError(t, err)
	return m
}

func TestNewRoom(t *testing.T) {
	hotelID := uuid.New()

	t.Run("capacity defaults to two", func(t *testing.T) {
		r, err := room.NewRoom(hotelID, " Twin 2 ", 0, price(t, 8000), nil, builder.Now)
		require.NoError(t, err)
		assert.Equal(t, room.DefaultCapacity, r.Capacity())
		assert.Equal(t, "Twin 2", r.Name())
		assert.Equal(t, hotelID, r.HotelID())
	})

	cases := []struct {
		name     string
		roomName string
		capacity int
		cents    int64
		errIs    error
	}{
		{name: "empty name", roomName: "  ", capacity: 2, cents: 100, errIs: room.ErrEmptyRoomName},
		{name: "long name", roomName: strings.Repeat("x", room.MaxRoomNameLength+1), capacity: 2, cents: 100, errIs: room.ErrRoomNameTooLong},
		{name: "negative capacity", roomName: "A", capacity: -1, cents: 100, errIs: room.ErrInvalidCapacity},
		{name: "zero price", roomName: "A", capacity: 2, cents: 0, errIs: room.ErrInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := room.NewRoom(hotelID, tc.roomName, tc.capacity, price(t, tc.cents), nil, builder.Now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestRoom_Update(t *testing.T) {
	r := builder.NewRoomBuilder().BuildDomain()
	later := builder.Now.Add(time.Hour)

	require.NoError(t, r.Update("Suite", 4, price(t, 25000), []string{"sea view"}, later))
	assert.Equal(t, "Suite", r.Name())
	assert.Equal(t, 4, r.Capacity())
	assert.Equal(t, int64(25000), r.PricePerNight().Cents())
	assert.Equal(t, []string{"sea view"}, r.Amenities())
	assert.Equal(t, later, r.UpdatedAt())

	err := r.Update("Suite", 0, price(t, 25000), nil, later)
	assert.ErrorIs(t, err, room.ErrInvalidCapacity)
	assert.Equal(t, 4, r.Capacity())
}

func TestRoom_Spec(t *testing.T) {
	r := builder.NewRoomBuilder().WithPriceCents(12345).BuildDomain()
	spec := r.Spec()
	assert.Equal(t, r.ID(), spec.ID)
	assert.Equal(t, r.HotelID(), spec.HotelID)
	assert.Equal(t, int64(12345), spec.PricePerNight.Cents())
}
