package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"
)

type ExceptionValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewExceptionValidator(log *logger.Logger) *ExceptionValidator {
	return &ExceptionValidator{
		validate: validation.New(log),
		logger:   log,
	}
}

// Validate checks exc and normalizes its ranges in place. A closed exception
// carries no ranges; the other types need at least one well-ordered range.
func (v *ExceptionValidator) Validate(exc *model.DateException) error {
	if err := validation.Struct(v.validate, exc); err != nil {
		return err
	}

	if exc.Type == model.ExceptionClosed {
		exc.TimeRanges = []model.TimeRange{}
		return nil
	}

	if len(exc.TimeRanges) == 0 {
		return validation.ValidationErrors{{
			Field:   "time_ranges",
			Message: "time_ranges must contain at least one range for " + string(exc.Type),
		}}
	}

	normalized, errs := validation.NormalizeRanges("time_ranges", exc.TimeRanges)
	if errs != nil {
		return errs
	}
	exc.TimeRanges = normalized
	return nil
}
