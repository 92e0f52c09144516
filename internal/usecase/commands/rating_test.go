//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
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

type ratingFixture struct {
	store     *fakestore.Store
	publisher *sharedmock.MockEventPublisher
	cache     *sharedmock.MockHotelCacheInvalidator
	hotel     *hotel.Hotel
	room      *room.Room
	guest     uuid.UUID
	sut       commands.RatingCommands
}

func newRatingFixture(t *testing.T) *ratingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := fakestore.New()
	h := builder.NewHotelBuilder().BuildDomain()
	rm := builder.NewRoomBuilder().InHotel(h.ID()).BuildDomain()
	store.PutHotel(h)
	store.PutRoom(rm)

	publisher := sharedmock.NewMockEventPublisher(ctrl)
	cache := sharedmock.NewMockHotelCacheInvalidator(ctrl)

	return &ratingFixture{
		store:     store,
		publisher: publisher,
		cache:     cache,
		hotel:     h,
		room:      rm,
		guest:     uuid.New(),
		sut:       commands.NewRatingCommands(store, clock.NewFixed(builder.Now), publisher, cache),
	}
}

func (f *ratingFixture) allowSideEffects() {
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Invalidate(gomock.Any(), f.hotel.ID()).Return(nil).AnyTimes()
}

// stay seeds a booking of the guest in the fixture hotel.
func (f *ratingFixture) stay(mutate func(*builder.BookingBuilder)) *booking.Booking {
	bb := builder.NewBookingBuilder().
		ForUser(f.guest).
		ForRoom(f.room.ID(), f.hotel.ID()).
		WithStatus(booking.StatusCompleted)
	if mutate != nil {
		bb.With(mutate)
	}
	b := bb.BuildDomain()
	f.store.PutBooking(b)
	return b
}

func (f *ratingFixture) rate(bookingID uuid.UUID, value float64) (*commands.RateHotelResult, error) {
	return f.sut.Rate(context.Background(), commands.RateHotelInput{
		HotelID:   f.hotel.ID(),
		BookingID: bookingID,
		UserID:    f.guest,
		Value:     value,
	})
}

func TestRatingCommands_Rate(t *testing.T) {
	t.Run("aggregate is the rounded mean of all ratings", func(t *testing.T) {
		f := newRatingFixture(t)
		f.allowSideEffects()

		var last *commands.RateHotelResult
		for _, v := range []float64{5, 4, 3} {
			b := f.stay(nil)
			result, err := f.rate(b.ID(), v)
			require.NoError(t, err)
			last = result
		}

		assert.Equal(t, hotel.Aggregate{Rating: 4.0, Count: 3}, last.Hotel.Aggregate())
		rating, count, ok := f.store.HotelAggregate(f.hotel.ID())
		require.True(t, ok)
		assert.Equal(t, 4.0, rating)
		assert.Equal(t, 3, count)
		assert.Equal(t, 3, f.store.RatingCount(f.hotel.ID()))
	})

	t.Run("publishes the new aggregate and drops the cached hotel", func(t *testing.T) {
		f := newRatingFixture(t)
		b := f.stay(nil)
		f.cache.EXPECT().Invalidate(gomock.Any(), f.hotel.ID()).Return(nil).Times(1)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		result, err := f.rate(b.ID(), 4.5)

		require.NoError(t, err)
		assert.Equal(t, 4.5, result.Value)
		assert.Equal(t, hotel.Aggregate{Rating: 4.5, Count: 1}, result.Hotel.Aggregate())
	})

	t.Run("cache failure does not fail the rating", func(t *testing.T) {
		f := newRatingFixture(t)
		b := f.stay(nil)
		f.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.rate(b.ID(), 3)

		require.NoError(t, err)
		assert.Equal(t, 1, f.store.RatingCount(f.hotel.ID()))
	})

	t.Run("second rating for the same booking", func(t *testing.T) {
		f := newRatingFixture(t)
		f.allowSideEffects()
		b := f.stay(nil)

		_, err := f.rate(b.ID(), 5)
		require.NoError(t, err)
		_, err = f.rate(b.ID(), 1)

		assert.True(t, errs.Is(err, commands.ErrAlreadyRated), "got %v", err)
		assert.Equal(t, 1, f.store.RatingCount(f.hotel.ID()))
		rating, count, _ := f.store.HotelAggregate(f.hotel.ID())
		assert.Equal(t, 5.0, rating)
		assert.Equal(t, 1, count)
	})

	t.Run("unique violation on insert maps to already rated", func(t *testing.T) {
		f := newRatingFixture(t)
		b := f.stay(nil)
		f.store.FailOnce("Hotels.AddRating",
			infra.WrapRepoErr("failed to add rating", errors.New("unique"), infra.KindDuplicateKey))

		_, err := f.rate(b.ID(), 5)

		assert.True(t, errs.Is(err, commands.ErrAlreadyRated), "got %v", err)
		_, count, _ := f.store.HotelAggregate(f.hotel.ID())
		assert.Zero(t, count)
	})

	t.Run("approved stay whose checkout has passed", func(t *testing.T) {
		f := newRatingFixture(t)
		f.allowSideEffects()
		b := f.stay(func(bb *builder.BookingBuilder) {
			bb.Status = booking.StatusApproved
			bb.CheckOut = builder.Now
		})

		_, err := f.rate(b.ID(), 4)

		assert.NoError(t, err)
	})

	t.Run("legacy confirmed stay counts as approved", func(t *testing.T) {
		f := newRatingFixture(t)
		f.allowSideEffects()
		b := f.stay(func(bb *builder.BookingBuilder) { bb.Status = booking.StatusConfirmed })

		_, err := f.rate(b.ID(), 4)

		assert.NoError(t, err)
	})

	t.Run("ineligible bookings", func(t *testing.T) {
		cases := map[string]func(f *ratingFixture) *booking.Booking{
			"pending": func(f *ratingFixture) *booking.Booking {
				return f.stay(func(bb *builder.BookingBuilder) { bb.Status = booking.StatusPending })
			},
			"cancelled": func(f *ratingFixture) *booking.Booking {
				return f.stay(func(bb *builder.BookingBuilder) { bb.Status = booking.StatusCancelled })
			},
			"approved and still running": func(f *ratingFixture) *booking.Booking {
				return f.stay(func(bb *builder.BookingBuilder) {
					bb.Status = booking.StatusApproved
					bb.CheckIn = builder.Day(9)
					bb.CheckOut = builder.Day(12)
				})
			},
			"another guest's booking": func(f *ratingFixture) *booking.Booking {
				return f.stay(func(bb *builder.BookingBuilder) { bb.UserID = uuid.New() })
			},
			"booking in another hotel": func(f *ratingFixture) *booking.Booking {
				other := builder.NewRoomBuilder().InHotel(uuid.New()).BuildDomain()
				f.store.PutRoom(other)
				return f.stay(func(bb *builder.BookingBuilder) { bb.RoomID = other.ID() })
			},
		}
		for name, seed := range cases {
			t.Run(name, func(t *testing.T) {
				f := newRatingFixture(t)
				b := seed(f)

				_, err := f.rate(b.ID(), 5)

				assert.True(t, errs.Is(err, commands.ErrRatingForbidden), "got %v", err)
				assert.Zero(t, f.store.RatingCount(f.hotel.ID()))
			})
		}
	})

	t.Run("out of range value", func(t *testing.T) {
		f := newRatingFixture(t)
		b := f.stay(nil)

		for _, v := range []float64{0, 0.5, 5.5, -1} {
			_, err := f.rate(b.ID(), v)
			assert.True(t, errs.Is(err, commands.ErrInvalidRating), "value %v: got %v", v, err)
		}
		assert.Zero(t, f.store.Commits())
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newRatingFixture(t)
		b := f.stay(nil)

		_, err := f.sut.Rate(context.Background(), commands.RateHotelInput{
			HotelID: uuid.New(), BookingID: b.ID(), UserID: f.guest, Value: 5,
		})

		assert.True(t, errs.Is(err, commands.ErrHotelNotFound), "got %v", err)
	})

	t.Run("unknown booking is forbidden", func(t *testing.T) {
		f := newRatingFixture(t)

		_, err := f.rate(uuid.New(), 5)

		assert.True(t, errs.Is(err, commands.ErrRatingForbidden), "got %v", err)
		assert.False(t, errs.Is(err, commands.ErrBookingNotFound))
		assert.ErrorIs(t, err, hotel.ErrBookingNotOwned)
	})
}
