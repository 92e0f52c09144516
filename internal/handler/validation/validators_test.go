//go:build unit

package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusPayload struct {
	Status string `validate:"required,booking_status"`
}

type ratingPayload struct {
	Rating float64 `validate:"rating_value"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("booking_status", bookingStatus))
	require.NoError(t, v.RegisterValidation("rating_value", ratingValue))
	return v
}

func TestBookingStatus(t *testing.T) {
	v := newValidator(t)

	for _, ok := range []string{"approved", "cancelled", "completed"} {
		assert.NoError(t, v.Struct(statusPayload{Status: ok}), ok)
	}
	for _, bad := range []string{"archived", "pending", "confirmed", "APPROVED"} {
		assert.Error(t, v.Struct(statusPayload{Status: bad}), bad)
	}
}

func TestRatingValue(t *testing.T) {
	v := newValidator(t)

	for _, ok := range []float64{1, 3.5, 5} {
		assert.NoError(t, v.Struct(ratingPayload{Rating: ok}))
	}
	for _, bad := range []float64{0, 0.99, 5.01, -1} {
		assert.Error(t, v.Struct(ratingPayload{Rating: bad}))
	}
}
