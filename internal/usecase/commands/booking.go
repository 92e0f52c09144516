package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	createBookingEndpoint = "POST /api/bookings"
	maxIdempotencyKeyLen  = 255
)

type CreateBookingInput struct {
	RoomID   uuid.UUID `json:"roomId"`
	CheckIn  string    `json:"checkIn"`
	CheckOut string    `json:"checkOut"`
}

type CreateBookingResult struct {
	Booking    *booking.Booking
	IsReplayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput, userID uuid.UUID, idempotencyKey *string) (*CreateBookingResult, error)
	Cancel(ctx context.Context, bookingID, userID uuid.UUID) (*booking.Booking, error)
	AdminSetStatus(ctx context.Context, bookingID uuid.UUID, status string) (*booking.Booking, error)
	AdminDelete(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	clock          clock.Clock
	pricing        booking.PriceCalculator
	publisher      shared.EventPublisher
	idempotencyTTL time.Duration
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	pricing booking.PriceCalculator,
	publisher shared.EventPublisher,
	idempotencyTTL time.Duration,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		clock:          clk,
		pricing:        pricing,
		publisher:      publisher,
		idempotencyTTL: idempotencyTTL,
	}
}

// Create checks availability and inserts the booking under a row lock on the
// room, so overlapping requests for one room are serialized.
func (uc *bookingCommandsImpl) Create(
	ctx context.Context,
	in CreateBookingInput,
	userID uuid.UUID,
	idempotencyKey *string,
) (*CreateBookingResult, error) {
	// date errors surface only once the room is known to exist
	stay, stayErr := booking.ParseStay(in.CheckIn, in.CheckOut)

	var key string
	if idempotencyKey != nil {
		key = strings.TrimSpace(*idempotencyKey)
		if key == "" || len(key) > maxIdempotencyKeyLen {
			return nil, ErrInvalidIdemKey
		}
	}
	requestHash := calculateRequestHash(in)

	services := &booking.Services{
		Clock:           uc.clock,
		PriceCalculator: uc.pricing,
	}

	var result *CreateBookingResult
	replay := func(ctx context.Context, tx shared.Tx) (bool, error) {
		if key == "" {
			return false, nil
		}
		replayed, err := uc.findReplay(ctx, tx, key, userID, requestHash)
		if err != nil || replayed == nil {
			return false, err
		}
		result = &CreateBookingResult{Booking: replayed, IsReplayed: true}
		return true, nil
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		if done, derr := replay(ctx, tx); done || derr != nil {
			return derr
		}

		rm, derr := tx.Rooms().LockByID(ctx, in.RoomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return derr
		}
		if stayErr != nil {
			return errs.Mark(stayErr, ErrInvalidDates)
		}

		// a request with the same key may have committed while we waited on the room lock
		if done, derr := replay(ctx, tx); done || derr != nil {
			return derr
		}

		existing, derr := tx.Bookings().ListOccupancyByRoom(ctx, rm.ID())
		if derr != nil {
			return derr
		}

		b, derr := booking.NewBooking(services, userID, rm.Spec(), stay, existing)
		if derr != nil {
			switch {
			case errors.Is(derr, booking.ErrRoomUnavailable):
				return errs.Mark(derr, ErrRoomUnavailable)
			case errors.Is(derr, money.ErrOverflow):
				return errs.Mark(derr, ErrInvalidDates)
			}
			return errs.Mark(derr, ErrInvalidRoom)
		}

		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrRoomUnavailable)
			}
			return derr
		}

		if key != "" {
			derr = tx.Idempotency().Save(ctx, shared.IdempotencyRecord{
				Key:         key,
				UserID:      userID,
				Endpoint:    createBookingEndpoint,
				RequestHash: requestHash,
				BookingID:   b.ID(),
				ExpiresAt:   uc.clock.Now().Add(uc.idempotencyTTL),
				CreatedAt:   uc.clock.Now(),
			})
			if derr != nil {
				if infra.IsKind(derr, infra.KindDuplicateKey) {
					return errs.Mark(derr, ErrIdempotencyKeyReused)
				}
				return derr
			}
		}

		result = &CreateBookingResult{Booking: b}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		b := result.Booking
		publish(ctx, uc.publisher, shared.NewEvent(shared.EventBookingCreated, uc.clock.Now(), map[string]any{
			"bookingId":  b.ID(),
			"userId":     b.UserID(),
			"roomId":     b.RoomID(),
			"checkIn":    b.Stay().CheckIn(),
			"checkOut":   b.Stay().CheckOut(),
			"totalPrice": b.TotalPrice().Amount(),
		}))
	}
	return result, nil
}

// findReplay returns the booking recorded under key, or nil when the key is
// unused or expired.
func (uc *bookingCommandsImpl) findReplay(
	ctx context.Context,
	tx shared.Tx,
	key string,
	userID uuid.UUID,
	requestHash string,
) (*booking.Booking, error) {
	rec, err := tx.Idempotency().Find(ctx, key, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if rec.IsExpired(uc.clock.Now()) {
		return nil, tx.Idempotency().Delete(ctx, key, userID)
	}
	if rec.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	b, err := tx.Bookings().FindByID(ctx, rec.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// The booking was deleted by an administrator; the key no longer replays.
			return nil, tx.Idempotency().Delete(ctx, key, userID)
		}
		return nil, err
	}
	return b, nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, userID uuid.UUID) (*booking.Booking, error) {
	var (
		b    *booking.Booking
		from booking.Status
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Bookings().LockByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		// Another guest's booking is reported as absent.
		if !found.IsOwnedBy(userID) {
			return ErrBookingNotFound
		}

		from = found.Status()
		found.Cancel(uc.clock.Now())
		if derr = tx.Bookings().UpdateStatus(ctx, found); derr != nil {
			return derr
		}
		b = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishStatusChanged(ctx, b, from)
	return b, nil
}

func (uc *bookingCommandsImpl) AdminSetStatus(ctx context.Context, bookingID uuid.UUID, status string) (*booking.Booking, error) {
	next, err := booking.ParseAdminStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	var (
		b    *booking.Booking
		from booking.Status
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Bookings().LockByID(ctx, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		from = found.Status()
		if derr = found.SetStatus(next, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrInvalidStatus)
		}
		// Reviving a cancelled booking can collide with a newer stay on the room.
		if derr = tx.Bookings().UpdateStatus(ctx, found); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrRoomUnavailable)
			}
			return derr
		}
		b = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishStatusChanged(ctx, b, from)
	return b, nil
}

func (uc *bookingCommandsImpl) AdminDelete(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Bookings().Delete(ctx, bookingID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	publish(ctx, uc.publisher, shared.NewEvent(shared.EventBookingDeleted, uc.clock.Now(), map[string]any{
		"bookingId": bookingID,
	}))
	return bookingID, nil
}

func (uc *bookingCommandsImpl) publishStatusChanged(ctx context.Context, b *booking.Booking, from booking.Status) {
	publish(ctx, uc.publisher, shared.NewEvent(shared.EventBookingStatusChanged, uc.clock.Now(), map[string]any{
		"bookingId": b.ID(),
		"userId":    b.UserID(),
		"from":      from.String(),
		"to":        b.Status().String(),
	}))
}

func calculateRequestHash(in CreateBookingInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
