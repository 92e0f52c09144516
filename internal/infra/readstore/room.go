package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomViewSelect = `
	SELECT rm.id, rm.hotel_id, h.name, rm.name, rm.capacity, rm.price_per_night_cents, rm.amenities, rm.created_at, rm.updated_at
	FROM rooms rm
	JOIN hotels h ON h.id = rm.hotel_id`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) List(ctx context.Context, hotelID *uuid.UUID) ([]*queries.RoomView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if hotelID != nil {
		rows, err = r.db.Query(ctx, roomViewSelect+` WHERE rm.hotel_id = $1 ORDER BY rm.created_at DESC, rm.id DESC`, *hotelID)
	} else {
		rows, err = r.db.Query(ctx, roomViewSelect+` ORDER BY rm.created_at DESC, rm.id DESC`)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result, err := pgx.CollectRows(rows, scanRoomView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rooms", err)
	}
	return result, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, roomViewSelect+` WHERE rm.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanRoomView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return v, nil
}

func scanRoomView(row pgx.CollectableRow) (*queries.RoomView, error) {
	var v queries.RoomView
	err := row.Scan(
		&v.ID, &v.HotelID, &v.HotelName, &v.Name, &v.Capacity, &v.PricePerNightCents,
		&v.Amenities, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if v.Amenities == nil {
		v.Amenities = []string{}
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return &v, nil
}
