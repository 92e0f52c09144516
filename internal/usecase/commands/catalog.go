package commands

import (
	"context"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateHotelInput struct {
	Name        string
	Description string
	Address     string
	City        string
	Country     string
	Amenities   []string
}

type CreateRoomInput struct {
	HotelID       uuid.UUID
	Name          string
	Capacity      int
	PricePerNight float64
	Amenities     []string
}

// UpdateHotelInput leaves nil fields unchanged.
type UpdateHotelInput struct {
	Name        *string
	Description *string
	Address     *string
	City        *string
	Country     *string
	Amenities   *[]string
}

// UpdateRoomInput leaves nil fields unchanged.
type UpdateRoomInput struct {
	Name          *string
	Capacity      *int
	PricePerNight *float64
	Amenities     *[]string
}

type CatalogCommands interface {
	CreateHotel(ctx context.Context, in CreateHotelInput) (*hotel.Hotel, error)
	UpdateHotel(ctx context.Context, hotelID uuid.UUID, in UpdateHotelInput) (*hotel.Hotel, error)
	DeleteHotel(ctx context.Context, hotelID uuid.UUID) (uuid.UUID, error)
	CreateRoom(ctx context.Context, in CreateRoomInput) (*room.Room, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, in UpdateRoomInput) (*room.Room, error)
	DeleteRoom(ctx context.Context, roomID uuid.UUID) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cache shared.HotelCacheInvalidator
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock, cache shared.HotelCacheInvalidator) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk, cache: cache}
}

func (uc *catalogCommandsImpl) CreateHotel(ctx context.Context, in CreateHotelInput) (*hotel.Hotel, error) {
	h, err := hotel.NewHotel(hotel.Details{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		Country:     in.Country,
		Amenities:   in.Amenities,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidHotel)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Hotels().Create(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (uc *catalogCommandsImpl) UpdateHotel(ctx context.Context, hotelID uuid.UUID, in UpdateHotelInput) (*hotel.Hotel, error) {
	var h *hotel.Hotel
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Hotels().LockByID(ctx, hotelID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrHotelNotFound
			}
			return derr
		}

		d := current.Details()
		derr = current.UpdateDetails(hotel.Details{
			Name:        patch.Coalesce(in.Name, d.Name),
			Description: patch.Coalesce(in.Description, d.Description),
			Address:     patch.Coalesce(in.Address, d.Address),
			City:        patch.Coalesce(in.City, d.City),
			Country:     patch.Coalesce(in.Country, d.Country),
			Amenities:   patch.CoalesceSlice(in.Amenities, d.Amenities),
		}, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidHotel)
		}
		if derr = tx.Hotels().UpdateDetails(ctx, current); derr != nil {
			return derr
		}
		h = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, h.ID())
	return h, nil
}

func (uc *catalogCommandsImpl) DeleteHotel(ctx context.Context, hotelID uuid.UUID) (uuid.UUID, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Hotels().Delete(ctx, hotelID); derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindNotFound):
				return ErrHotelNotFound
			case infra.IsKind(derr, infra.KindForeignKeyViolated):
				return errs.Mark(derr, ErrHotelInUse)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	invalidate(ctx, uc.cache, hotelID)
	return hotelID, nil
}

func (uc *catalogCommandsImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (*room.Room, error) {
	price, err := money.FromAmount(in.PricePerNight)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}
	r, err := room.NewRoom(in.HotelID, in.Name, in.Capacity, price, in.Amenities, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, derr := tx.Hotels().Exists(ctx, in.HotelID)
		if derr != nil {
			return derr
		}
		if !exists {
			return ErrHotelNotFound
		}
		if derr = tx.Rooms().Create(ctx, r); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrHotelNotFound
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, r.HotelID())
	return r, nil
}

// UpdateRoom never touches existing bookings: their totals were fixed at creation.
func (uc *catalogCommandsImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, in UpdateRoomInput) (*room.Room, error) {
	var r *room.Room
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Rooms().LockByID(ctx, roomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}

		price := current.PricePerNight()
		if in.PricePerNight != nil {
			if price, derr = money.FromAmount(*in.PricePerNight); derr != nil {
				return errs.Mark(derr, ErrInvalidRoom)
			}
		}

		derr = current.Update(
			patch.Coalesce(in.Name, current.Name()),
			patch.Coalesce(in.Capacity, current.Capacity()),
			price,
			patch.CoalesceSlice(in.Amenities, current.Amenities()),
			uc.clock.Now(),
		)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidRoom)
		}
		if derr = tx.Rooms().Update(ctx, current); derr != nil {
			return derr
		}
		r = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, r.HotelID())
	return r, nil
}

// DeleteRoom refuses rooms that still have bookings on record.
func (uc *catalogCommandsImpl) DeleteRoom(ctx context.Context, roomID uuid.UUID) (uuid.UUID, error) {
	var hotelID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Rooms().LockByID(ctx, roomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}
		if derr = tx.Rooms().Delete(ctx, roomID); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrRoomInUse)
			}
			return derr
		}
		hotelID = current.HotelID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	invalidate(ctx, uc.cache, hotelID)
	return roomID, nil
}
