package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"
)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validation.New(log),
		logger:   log,
	}
}

func (v *BookingValidator) Validate(b *model.Booking) error {
	return validation.Struct(v.validate, b)
}

func (v *BookingValidator) ValidateUpdate(u *model.BookingUpdate) error {
	return validation.Struct(v.validate, u)
}
