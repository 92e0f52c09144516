package queries

import (
	"context"

	"hotel-booking/internal/infra"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	// List returns all rooms, or only the hotel's rooms when hotelID is set.
	List(ctx context.Context, hotelID *uuid.UUID) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomQueries interface {
	List(ctx context.Context, hotelID *uuid.UUID) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	rooms RoomReadStore
}

func NewRoomQueries(rooms RoomReadStore) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) List(ctx context.Context, hotelID *uuid.UUID) ([]*RoomView, error) {
	return q.rooms.List(ctx, hotelID)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	r, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return r, nil
}
