//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingViews(n int) []*queries.BookingView {
	views := make([]*queries.BookingView, n)
	for i := range views {
		views[i] = builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CreatedAt = builder.Now.Add(-time.Duration(i) * time.Minute)
		}).BuildView()
	}
	return views
}

func TestBookingQueries_ListForUser(t *testing.T) {
	t.Run("full page yields a cursor at the last row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		sut := queries.NewBookingQueries(store, queriesmock.NewMockRoomReadStore(ctrl))
		userID := uuid.New()
		rows := bookingViews(3)

		store.EXPECT().
			List(gomock.Any(), queries.BookingFilter{UserID: &userID}, (*queries.Keyset)(nil), int32(3)).
			Return(rows, nil)

		page, next, err := sut.ListForUser(context.Background(), userID, nil, 2)

		require.NoError(t, err)
		assert.Len(t, page, 2)
		require.NotNil(t, next)
		ks, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, ks.ID)
		assert.True(t, rows[1].CreatedAt.Equal(ks.CreatedAt))
	})

	t.Run("short page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		sut := queries.NewBookingQueries(store, queriesmock.NewMockRoomReadStore(ctrl))

		store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), int32(queries.DefaultListLimit+1)).
			Return(bookingViews(1), nil)

		page, next, err := sut.ListForUser(context.Background(), uuid.New(), nil, 0)

		require.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Nil(t, next)
	})

	t.Run("cursor is passed as keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		sut := queries.NewBookingQueries(store, queriesmock.NewMockRoomReadStore(ctrl))
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(builder.Now, lastID)}

		store.EXPECT().List(gomock.Any(), gomock.Any(), &queries.Keyset{CreatedAt: builder.Now, ID: lastID}, gomock.Any()).
			Return(nil, nil)

		_, _, err := sut.ListForUser(context.Background(), uuid.New(), cursor, 10)
		require.NoError(t, err)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sut := queries.NewBookingQueries(queriesmock.NewMockBookingReadStore(ctrl), queriesmock.NewMockRoomReadStore(ctrl))

		_, _, err := sut.ListForUser(context.Background(), uuid.New(), &queries.Cursor{After: "%%%"}, 10)

		assert.True(t, errs.Is(err, queries.ErrInvalidCursor), "got %v", err)
	})
}

func TestBookingQueries_ListAll(t *testing.T) {
	tests := []struct {
		status string
		want   []string
	}{
		{"", nil},
		{"pending", []string{"pending"}},
		{"approved", []string{"approved", "confirmed"}},
		{"confirmed", []string{"approved", "confirmed"}},
		{"cancelled", []string{"cancelled"}},
	}
	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			sut := queries.NewBookingQueries(store, queriesmock.NewMockRoomReadStore(ctrl))

			store.EXPECT().List(gomock.Any(), queries.BookingFilter{Statuses: tt.want}, gomock.Any(), gomock.Any()).
				Return(nil, nil)

			_, _, err := sut.ListAll(context.Background(), tt.status, nil, 10)
			require.NoError(t, err)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sut := queries.NewBookingQueries(queriesmock.NewMockBookingReadStore(ctrl), queriesmock.NewMockRoomReadStore(ctrl))

		_, _, err := sut.ListAll(context.Background(), "archived", nil, 10)

		assert.True(t, errs.Is(err, queries.ErrInvalidStatus), "got %v", err)
	})
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	sut := queries.NewBookingQueries(store, queriesmock.NewMockRoomReadStore(ctrl))
	view := builder.NewBookingBuilder().BuildView()
	missing := uuid.New()

	store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
	store.EXPECT().FindByID(gomock.Any(), missing).Return(nil, infra.NotFound("booking not found"))

	got, err := sut.GetByID(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, view, got)

	_, err = sut.GetByID(context.Background(), missing)
	assert.True(t, errs.Is(err, queries.ErrBookingNotFound), "got %v", err)
}

func TestBookingQueries_IsAvailable(t *testing.T) {
	roomID := uuid.New()
	occupancy := func(from, to int, status booking.Status) booking.Occupancy {
		stay, err := booking.NewStay(builder.Day(from), builder.Day(to))
		if err != nil {
			panic(err)
		}
		return booking.Occupancy{BookingID: uuid.New(), Stay: stay, Status: status}
	}
	existing := []booking.Occupancy{
		occupancy(1, 5, booking.StatusApproved),
		occupancy(8, 12, booking.StatusPending),
		occupancy(14, 18, booking.StatusCancelled),
	}

	tests := []struct {
		name              string
		checkIn, checkOut string
		want              bool
	}{
		{"overlaps an approved stay", "2026-03-01", "2026-03-10", false},
		{"overlaps a pending stay", "2026-03-11", "2026-03-13", false},
		{"between stays", "2026-03-05", "2026-03-08", true},
		{"over a cancelled stay", "2026-03-14", "2026-03-18", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bookings := queriesmock.NewMockBookingReadStore(ctrl)
			rooms := queriesmock.NewMockRoomReadStore(ctrl)
			sut := queries.NewBookingQueries(bookings, rooms)

			rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(&queries.RoomView{ID: roomID}, nil)
			bookings.EXPECT().OccupancyByRoom(gomock.Any(), roomID).Return(existing, nil)

			got, err := sut.IsAvailable(context.Background(), roomID, tt.checkIn, tt.checkOut)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid dates never reach the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sut := queries.NewBookingQueries(queriesmock.NewMockBookingReadStore(ctrl), queriesmock.NewMockRoomReadStore(ctrl))

		_, err := sut.IsAvailable(context.Background(), roomID, "2026-03-10", "2026-03-09")

		assert.True(t, errs.Is(err, queries.ErrInvalidDates), "got %v", err)
	})

	t.Run("unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		sut := queries.NewBookingQueries(queriesmock.NewMockBookingReadStore(ctrl), rooms)
		rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(nil, infra.NotFound("room not found"))

		_, err := sut.IsAvailable(context.Background(), roomID, "2026-03-10", "2026-03-12")

		assert.True(t, errs.Is(err, queries.ErrRoomNotFound), "got %v", err)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}

func TestAfterCursor_RoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 10, 12, 0, 0, 123456789, time.UTC)

	ks, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.Equal(t, id, ks.ID)
	assert.Equal(t, at.Truncate(time.Microsecond), ks.CreatedAt)
}
