package commands

import (
	"hotel-booking/internal/pkg/errs"
)

// Input errors.
var (
	ErrInvalidDates   = errs.New("invalid check-in/check-out dates")
	ErrInvalidStatus  = errs.New("status must be approved, cancelled or completed")
	ErrInvalidRating  = errs.New("rating must be a number between 1 and 5")
	ErrInvalidHotel   = errs.New("invalid hotel")
	ErrInvalidRoom    = errs.New("invalid room")
	ErrInvalidSignup  = errs.New("invalid registration")
	ErrInvalidIdemKey = errs.New("idempotency key must be 1-255 characters")
)

// Lookup errors.
var (
	ErrRoomNotFound    = errs.New("room not found")
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrBookingNotFound = errs.New("booking not found")
)

// State errors.
var (
	ErrRoomUnavailable      = errs.New("room is not available for the selected dates")
	ErrAlreadyRated         = errs.New("booking has already been rated")
	ErrIdempotencyKeyReused = errs.New("idempotency key reused with a different request")
	ErrEmailTaken           = errs.New("email already registered")
	ErrRoomInUse            = errs.New("room has bookings and cannot be deleted")
	ErrHotelInUse           = errs.New("hotel has booked rooms and cannot be deleted")
)

// Authorization errors.
var (
	ErrRatingForbidden    = errs.New("booking is not eligible for rating")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrInvalidAdminCode   = errs.New("invalid admin code")
)

// Availability errors.
var (
	ErrAdminSignupDisabled = errs.New("admin signup disabled")
)
