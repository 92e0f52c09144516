package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, user_id, room_id, check_in, check_out, total_price_cents, status, created_at, updated_at`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID(), b.UserID(), b.RoomID(),
		b.Stay().CheckIn(), b.Stay().CheckOut(),
		b.TotalPrice().Cents(), b.Status().String(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ListOccupancyByRoom(ctx context.Context, roomID uuid.UUID) ([]booking.Occupancy, error) {
	return QueryOccupancy(ctx, r.db, roomID)
}

func (r *BookingRepository) FindStay(ctx context.Context, id uuid.UUID) (*hotel.StaySnapshot, error) {
	var (
		s      hotel.StaySnapshot
		status string
	)
	err := r.db.QueryRow(ctx, `
		SELECT b.id, b.user_id, rm.hotel_id, b.status, b.check_out
		FROM bookings b
		JOIN rooms rm ON rm.id = b.room_id
		WHERE b.id = $1`, id,
	).Scan(&s.BookingID, &s.UserID, &s.HotelID, &status, &s.CheckOut)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking stay", err)
	}
	s.Status = booking.Status(status)
	s.CheckOut = s.CheckOut.UTC()
	return &s, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID(), b.Status().String(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

// QueryOccupancy lists every booking interval on a room, cancelled ones included;
// the availability rule decides which of them hold the room.
func QueryOccupancy(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) ([]booking.Occupancy, error) {
	rows, err := dbtx.Query(ctx,
		`SELECT id, check_in, check_out, status FROM bookings WHERE room_id = $1 ORDER BY check_in`, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (booking.Occupancy, error) {
		var (
			id            uuid.UUID
			checkIn, cOut time.Time
			status        string
		)
		if err := row.Scan(&id, &checkIn, &cOut, &status); err != nil {
			return booking.Occupancy{}, err
		}
		stay, err := booking.NewStay(checkIn, cOut)
		if err != nil {
			return booking.Occupancy{}, err
		}
		return booking.Occupancy{BookingID: id, Stay: stay, Status: booking.Status(status)}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan room bookings", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID, roomID   uuid.UUID
		checkIn, checkOut    time.Time
		cents                int64
		status               string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &roomID, &checkIn, &checkOut, &cents, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	stay, err := booking.NewStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	price, err := money.FromCents(cents)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, userID, roomID, stay, price, booking.Status(status),
		createdAt.UTC(), updatedAt.UTC(),
	), nil
}
