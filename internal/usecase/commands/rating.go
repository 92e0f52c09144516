package commands

import (
	"context"
	"errors"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RateHotelInput struct {
	HotelID   uuid.UUID
	BookingID uuid.UUID
	UserID    uuid.UUID
	Value     float64
}

type RateHotelResult struct {
	Hotel *hotel.Hotel
	Value float64
}

type RatingCommands interface {
	Rate(ctx context.Context, in RateHotelInput) (*RateHotelResult, error)
}

type ratingCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
	cache     shared.HotelCacheInvalidator
}

func NewRatingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	publisher shared.EventPublisher,
	cache shared.HotelCacheInvalidator,
) RatingCommands {
	return &ratingCommandsImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
		cache:     cache,
	}
}

// Rate appends one rating record and recomputes the hotel aggregate in the same
// transaction, holding the hotel row lock throughout.
func (uc *ratingCommandsImpl) Rate(ctx context.Context, in RateHotelInput) (*RateHotelResult, error) {
	value, err := hotel.NewRatingValue(in.Value)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRating)
	}

	var h *hotel.Hotel
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, derr := tx.Hotels().LockByID(ctx, in.HotelID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrHotelNotFound
			}
			return derr
		}

		stay, derr := tx.Bookings().FindStay(ctx, in.BookingID)
		if derr != nil {
			// an unknown booking is treated like someone else's
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(hotel.ErrBookingNotOwned, ErrRatingForbidden)
			}
			return derr
		}

		now := uc.clock.Now()
		if derr = hotel.CheckEligibility(*stay, locked.ID(), in.UserID, now); derr != nil {
			return errs.Mark(derr, ErrRatingForbidden)
		}

		record := hotel.NewRatingRecord(in.UserID, in.BookingID, value, now)
		if derr = locked.AddRating(record, now); derr != nil {
			if errors.Is(derr, hotel.ErrAlreadyRated) {
				return errs.Mark(derr, ErrAlreadyRated)
			}
			return derr
		}

		if derr = tx.Hotels().AddRating(ctx, locked.ID(), record); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrAlreadyRated)
			}
			return derr
		}
		if derr = tx.Hotels().SaveAggregate(ctx, locked); derr != nil {
			return derr
		}
		h = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.cache, h.ID())
	agg := h.Aggregate()
	publish(ctx, uc.publisher, shared.NewEvent(shared.EventHotelRated, uc.clock.Now(), map[string]any{
		"hotelId":      h.ID(),
		"bookingId":    in.BookingID,
		"userId":       in.UserID,
		"value":        value.Float64(),
		"rating":       agg.Rating,
		"ratingsCount": agg.Count,
	}))

	return &RateHotelResult{Hotel: h, Value: value.Float64()}, nil
}
