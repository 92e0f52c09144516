package api

import (
	"log/slog"
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
}

// errorTable is checked in order; the sentinel's own text becomes the message.
var errorTable = []errorMapping{
	{commands.ErrInvalidDates, http.StatusBadRequest},
	{commands.ErrInvalidStatus, http.StatusBadRequest},
	{commands.ErrInvalidRating, http.StatusBadRequest},
	{commands.ErrInvalidHotel, http.StatusBadRequest},
	{commands.ErrInvalidRoom, http.StatusBadRequest},
	{commands.ErrInvalidSignup, http.StatusBadRequest},
	{commands.ErrInvalidIdemKey, http.StatusBadRequest},
	{queries.ErrInvalidDates, http.StatusBadRequest},
	{queries.ErrInvalidStatus, http.StatusBadRequest},
	{queries.ErrInvalidCursor, http.StatusBadRequest},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized},
	{commands.ErrRatingForbidden, http.StatusForbidden},
	{commands.ErrInvalidAdminCode, http.StatusForbidden},

	{commands.ErrRoomNotFound, http.StatusNotFound},
	{commands.ErrHotelNotFound, http.StatusNotFound},
	{commands.ErrBookingNotFound, http.StatusNotFound},
	{queries.ErrBookingNotFound, http.StatusNotFound},
	{queries.ErrRoomNotFound, http.StatusNotFound},
	{queries.ErrHotelNotFound, http.StatusNotFound},
	{queries.ErrUserNotFound, http.StatusNotFound},

	{commands.ErrRoomUnavailable, http.StatusConflict},
	{commands.ErrAlreadyRated, http.StatusConflict},
	{commands.ErrIdempotencyKeyReused, http.StatusConflict},
	{commands.ErrEmailTaken, http.StatusConflict},
	{commands.ErrRoomInUse, http.StatusConflict},
	{commands.ErrHotelInUse, http.StatusConflict},

	{commands.ErrAdminSignupDisabled, http.StatusServiceUnavailable},
}

// abortWithUseCaseError maps a use case error to its status. Anything
// unrecognised is a 500 whose details stay in the log.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.target.Error(), nil)
			return
		}
	}

	slog.Error("unhandled use case error",
		"path", c.Request.URL.Path,
		"error", err.Error(),
		"stack", errs.StackLines(err, 8))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// abortBadRequest reports binding failures; validation errors list the failing fields.
func abortBadRequest(c *gin.Context, err error, msg string) {
	var detail any
	if fields := httperr.ValidationDetail(err); fields != nil {
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, detail)
}
