package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, hotel_id, name, capacity, price_per_night_cents, amenities, created_at, updated_at`

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (`+roomColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rm.ID(), rm.HotelID(), rm.Name(), rm.Capacity(), rm.PricePerNight().Cents(),
		nonNil(rm.Amenities()), rm.CreatedAt(), rm.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	rm, err := scanRoom(r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rm, nil
}

func (r *RoomRepository) LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	rm, err := scanRoom(r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return rm, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms
		SET name = $2, capacity = $3, price_per_night_cents = $4, amenities = $5, updated_at = $6
		WHERE id = $1`,
		rm.ID(), rm.Name(), rm.Capacity(), rm.PricePerNight().Cents(), nonNil(rm.Amenities()), rm.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("room not found")
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("room not found")
	}
	return nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id, hotelID          uuid.UUID
		name                 string
		capacity             int
		cents                int64
		amenities            []string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &hotelID, &name, &capacity, &cents, &amenities, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	price, err := money.FromCents(cents)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoom(id, hotelID, name, capacity, price, amenities, createdAt.UTC(), updatedAt.UTC()), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
