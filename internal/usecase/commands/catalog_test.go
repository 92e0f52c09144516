//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/fakestore"
	sharedmock "hotel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogFixture struct {
	store *fakestore.Store
	clock *clock.Fixed
	cache *sharedmock.MockHotelCacheInvalidator
	hotel *hotel.Hotel
	room  *room.Room
	sut   commands.CatalogCommands
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := fakestore.New()
	h := builder.NewHotelBuilder().BuildDomain()
	rm := builder.NewRoomBuilder().InHotel(h.ID()).BuildDomain()
	store.PutHotel(h)
	store.PutRoom(rm)

	clk := clock.NewFixed(builder.Now)
	cache := sharedmock.NewMockHotelCacheInvalidator(ctrl)

	return &catalogFixture{
		store: store,
		clock: clk,
		cache: cache,
		hotel: h,
		room:  rm,
		sut:   commands.NewCatalogCommands(store, clk, cache),
	}
}

func TestCatalogCommands_Hotels(t *testing.T) {
	t.Run("create starts unrated", func(t *testing.T) {
		f := newCatalogFixture(t)

		h, err := f.sut.CreateHotel(context.Background(), commands.CreateHotelInput{
			Name: "  Harbour View ",
			City: "Porto",
		})

		require.NoError(t, err)
		assert.Equal(t, "Harbour View", h.Name())
		assert.Equal(t, hotel.Aggregate{}, h.Aggregate())
		stored, ok := f.store.Hotel(h.ID())
		require.True(t, ok)
		assert.Equal(t, "Porto", stored.Details().City)
	})

	t.Run("create requires a name", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.sut.CreateHotel(context.Background(), commands.CreateHotelInput{Name: " "})

		assert.True(t, errs.Is(err, commands.ErrInvalidHotel), "got %v", err)
	})

	t.Run("update patches given fields and keeps the rating", func(t *testing.T) {
		f := newCatalogFixture(t)
		rated := builder.NewHotelBuilder().WithRating(5).WithRating(3).BuildDomain()
		f.store.PutHotel(rated)
		f.cache.EXPECT().Invalidate(gomock.Any(), rated.ID()).Return(nil)
		f.clock.Advance(time.Hour)

		city := "Faro"
		h, err := f.sut.UpdateHotel(context.Background(), rated.ID(), commands.UpdateHotelInput{City: &city})

		require.NoError(t, err)
		assert.Equal(t, "Faro", h.Details().City)
		assert.Equal(t, "Seaside Inn", h.Name())
		assert.Equal(t, builder.Now.Add(time.Hour), h.UpdatedAt())
		rating, count, _ := f.store.HotelAggregate(rated.ID())
		assert.Equal(t, 4.0, rating)
		assert.Equal(t, 2, count)
	})

	t.Run("update of unknown hotel", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.sut.UpdateHotel(context.Background(), uuid.New(), commands.UpdateHotelInput{})

		assert.True(t, errs.Is(err, commands.ErrHotelNotFound), "got %v", err)
	})

	t.Run("delete removes the hotel and its rooms", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.cache.EXPECT().Invalidate(gomock.Any(), f.hotel.ID()).Return(nil)

		id, err := f.sut.DeleteHotel(context.Background(), f.hotel.ID())

		require.NoError(t, err)
		assert.Equal(t, f.hotel.ID(), id)
		_, ok := f.store.Hotel(f.hotel.ID())
		assert.False(t, ok)
		_, ok = f.store.Room(f.room.ID())
		assert.False(t, ok)
	})

	t.Run("delete is refused while rooms have bookings", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.store.PutBooking(builder.NewBookingBuilder().ForRoom(f.room.ID(), f.hotel.ID()).BuildDomain())

		_, err := f.sut.DeleteHotel(context.Background(), f.hotel.ID())

		assert.True(t, errs.Is(err, commands.ErrHotelInUse), "got %v", err)
		_, ok := f.store.Hotel(f.hotel.ID())
		assert.True(t, ok)
	})
}

func TestCatalogCommands_Rooms(t *testing.T) {
	t.Run("create converts the price to cents", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.cache.EXPECT().Invalidate(gomock.Any(), f.hotel.ID()).Return(nil)

		r, err := f.sut.CreateRoom(context.Background(), commands.CreateRoomInput{
			HotelID:       f.hotel.ID(),
			Name:          "Suite 300",
			Capacity:      4,
			PricePerNight: 129.99,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(12999), r.PricePerNight().Cents())
		_, ok := f.store.Room(r.ID())
		assert.True(t, ok)
	})

	t.Run("create validates input", func(t *testing.T) {
		cases := map[string]commands.CreateRoomInput{
			"empty name":        {Name: "", Capacity: 2, PricePerNight: 100},
			"negative capacity": {Name: "A", Capacity: -1, PricePerNight: 100},
			"zero price":        {Name: "A", Capacity: 2, PricePerNight: 0},
			"negative price":    {Name: "A", Capacity: 2, PricePerNight: -10},
			"overflowing price": {Name: "A", Capacity: 2, PricePerNight: 1e18},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				f := newCatalogFixture(t)
				in.HotelID = f.hotel.ID()

				_, err := f.sut.CreateRoom(context.Background(), in)

				assert.True(t, errs.Is(err, commands.ErrInvalidRoom), "got %v", err)
			})
		}
	})

	t.Run("zero capacity falls back to the default", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.cache.EXPECT().Invalidate(gomock.Any(), f.hotel.ID()).Return(nil)

		r, err := f.sut.CreateRoom(context.Background(), commands.CreateRoomInput{
			HotelID: f.hotel.ID(), Name: "A", Capacity: 0, PricePerNight: 100,
		})

		require.NoError(t, err)
		assert.Equal(t, room.DefaultCapacity, r.Capacity())
		stored, ok := f.store.Room(r.ID())
		require.True(t, ok)
		assert.Equal(t, 2, stored.Capacity())
	})

	t.Run("create in unknown hotel", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.sut.CreateRoom(context.Background(), commands.CreateRoomInput{
			HotelID: uuid.New(), Name: "A", Capacity: 1, PricePerNight: 50,
		})

		assert.True(t, errs.Is(err, commands.ErrHotelNotFound), "got %v", err)
	})

	t.Run("price change leaves existing booking totals alone", func(t *testing.T) {
		f := newCatalogFixture(t)
		b := builder.NewBookingBuilder().ForRoom(f.room.ID(), f.hotel.ID()).BuildDomain()
		f.store.PutBooking(b)
		f.cache.EXPECT().Invalidate(gomock.Any(), f.hotel.ID()).Return(nil)

		price := 250.0
		r, err := f.sut.UpdateRoom(context.Background(), f.room.ID(), commands.UpdateRoomInput{PricePerNight: &price})

		require.NoError(t, err)
		assert.Equal(t, int64(25000), r.PricePerNight().Cents())
		assert.Equal(t, f.room.Name(), r.Name())
		stored, _ := f.store.Booking(b.ID())
		assert.Equal(t, b.TotalPrice(), stored.TotalPrice())
	})

	t.Run("update rejects invalid values", func(t *testing.T) {
		f := newCatalogFixture(t)

		capacity := 0
		_, err := f.sut.UpdateRoom(context.Background(), f.room.ID(), commands.UpdateRoomInput{Capacity: &capacity})

		assert.True(t, errs.Is(err, commands.ErrInvalidRoom), "got %v", err)
		stored, _ := f.store.Room(f.room.ID())
		assert.Equal(t, f.room.Capacity(), stored.Capacity())
	})

	t.Run("update of unknown room", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.sut.UpdateRoom(context.Background(), uuid.New(), commands.UpdateRoomInput{})

		assert.True(t, errs.Is(err, commands.ErrRoomNotFound), "got %v", err)
	})

	t.Run("delete of a room without bookings", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.cache.EXPECT().Invalidate(gomock.Any(), f.hotel.ID()).Return(nil)

		id, err := f.sut.DeleteRoom(context.Background(), f.room.ID())

		require.NoError(t, err)
		assert.Equal(t, f.room.ID(), id)
		_, ok := f.store.Room(f.room.ID())
		assert.False(t, ok)
	})

	t.Run("delete is refused while bookings reference the room", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.store.PutBooking(builder.NewBookingBuilder().ForRoom(f.room.ID(), f.hotel.ID()).BuildDomain())

		_, err := f.sut.DeleteRoom(context.Background(), f.room.ID())

		assert.True(t, errs.Is(err, commands.ErrRoomInUse), "got %v", err)
		_, ok := f.store.Room(f.room.ID())
		assert.True(t, ok)
	})

	t.Run("delete of unknown room", func(t *testing.T) {
		f := newCatalogFixture(t)

		_, err := f.sut.DeleteRoom(context.Background(), uuid.New())

		assert.True(t, errs.Is(err, commands.ErrRoomNotFound), "got %v", err)
	})
}
