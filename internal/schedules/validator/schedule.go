package validator

import (
	"github.com/go-playground/validator/v10"

	scheduleserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"
)

type ScheduleValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewScheduleValidator(log *logger.Logger) *ScheduleValidator {
	return &ScheduleValidator{
		validate: validation.New(log),
		logger:   log,
	}
}

func (v *ScheduleValidator) ValidateDay(dayOfWeek int) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return scheduleserrors.ErrInvalidDay
	}
	return nil
}

// NormalizeRanges returns ranges in canonical form, or a ValidationErrors
// listing every range that failed.
func (v *ScheduleValidator) NormalizeRanges(ranges []model.TimeRange) ([]model.TimeRange, error) {
	normalized, errs := validation.NormalizeRanges("time_ranges", ranges)
	if errs != nil {
		return nil, errs
	}
	return normalized, nil
}

func (v *ScheduleValidator) Validate(sc *model.WeekdaySchedule) error {
	return validation.Struct(v.validate, sc)
}
