package middleware

import (
	"tour-booking/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		_, err := booking.ParseStatus(fl.Field().String())
		return err == nil
	})
}
