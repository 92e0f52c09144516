package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewSelect = `
	SELECT b.id, b.user_id, u.name, u.email, b.room_id, rm.name, rm.hotel_id, h.name,
	       b.check_in, b.check_out, b.total_price_cents, b.status, b.created_at, b.updated_at
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN rooms rm ON rm.id = b.room_id
	JOIN hotels h ON h.id = rm.hotel_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewSelect+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanBookingView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return v, nil
}

// List orders newest first; after continues strictly past the given keyset.
func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.UserID != nil {
		conds = append(conds, "b.user_id = "+arg(*filter.UserID))
	}
	if len(filter.Statuses) > 0 {
		conds = append(conds, "b.status = ANY("+arg(filter.Statuses)+")")
	}
	if after != nil {
		conds = append(conds, fmt.Sprintf("(b.created_at, b.id) < (%s, %s)", arg(after.CreatedAt), arg(after.ID)))
	}

	sql := bookingViewSelect
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY b.created_at DESC, b.id DESC LIMIT " + arg(limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	result, err := pgx.CollectRows(rows, scanBookingView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return result, nil
}

func (r *BookingReadStore) OccupancyByRoom(ctx context.Context, roomID uuid.UUID) ([]booking.Occupancy, error) {
	return repository.QueryOccupancy(ctx, r.db, roomID)
}

// StaysInHotel lists the user's bookings on any room of the hotel.
func (r *BookingReadStore) StaysInHotel(ctx context.Context, userID, hotelID uuid.UUID) ([]hotel.StaySnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.user_id, rm.hotel_id, b.status, b.check_out
		FROM bookings b
		JOIN rooms rm ON rm.id = b.room_id
		WHERE b.user_id = $1 AND rm.hotel_id = $2
		ORDER BY b.check_out`, userID, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stays", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (hotel.StaySnapshot, error) {
		var (
			s      hotel.StaySnapshot
			status string
		)
		if err := row.Scan(&s.BookingID, &s.UserID, &s.HotelID, &status, &s.CheckOut); err != nil {
			return hotel.StaySnapshot{}, err
		}
		s.Status = booking.Status(status)
		s.CheckOut = s.CheckOut.UTC()
		return s, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan stays", err)
	}
	return result, nil
}

func scanBookingView(row pgx.CollectableRow) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.UserID, &v.UserName, &v.UserEmail, &v.RoomID, &v.RoomName, &v.HotelID, &v.HotelName,
		&v.CheckIn, &v.CheckOut, &v.TotalPriceCents, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.CheckIn = v.CheckIn.UTC()
	v.CheckOut = v.CheckOut.UTC()
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return &v, nil
}
