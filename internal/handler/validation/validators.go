package validation

import (
	"reflect"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom binding tags on gin's validator engine.
// It is safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("booking_status", bookingStatus); err != nil {
		return err
	}
	return v.RegisterValidation("rating_value", ratingValue)
}

// jsonFieldName reports fields by their JSON key in validation errors.
func jsonFieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// bookingStatus accepts only the statuses an administrator may set.
func bookingStatus(fl validator.FieldLevel) bool {
	_, err := booking.ParseAdminStatus(fl.Field().String())
	return err == nil
}

func ratingValue(fl validator.FieldLevel) bool {
	_, err := hotel.NewRatingValue(fl.Field().Float())
	return err == nil
}
