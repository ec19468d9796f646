package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/timeutil"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"
)

type ManualBookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewManualBookingValidator(log *logger.Logger) *ManualBookingValidator {
	return &ManualBookingValidator{
		validate: validation.New(log),
		logger:   log,
	}
}

// Validate checks mb and rewrites its start and end to "HH:MM".
func (v *ManualBookingValidator) Validate(mb *model.ManualBooking) error {
	if err := validation.Struct(v.validate, mb); err != nil {
		return err
	}

	start, _ := timeutil.NormalizeTimeString(mb.StartTime)
	end, _ := timeutil.NormalizeTimeString(mb.EndTime)
	if start >= end {
		return validation.ValidationErrors{{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		}}
	}

	mb.StartTime = start
	mb.EndTime = end
	return nil
}
