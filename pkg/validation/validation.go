// Package validation holds the go-playground validator setup shared by every
// domain validator, including the time_of_day and calendar_date tags.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/timeutil"

	"github.com/go-playground/validator/v10"
)

const (
	TagTimeOfDay    = "time_of_day"
	TagCalendarDate = "calendar_date"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Details flattens the errors into the map shape carried by AppError.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

// New returns a validator with the booking-domain tags registered.
func New(log *logger.Logger) *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation(TagTimeOfDay, validateTimeOfDay); err != nil {
		log.Fatal("Failed to register 'time_of_day' validator", "error", err)
	}
	if err := v.RegisterValidation(TagCalendarDate, validateCalendarDate); err != nil {
		log.Fatal("Failed to register 'calendar_date' validator", "error", err)
	}

	return v
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, ok := timeutil.NormalizeTimeString(fl.Field().String())
	return ok
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	return timeutil.IsDate(strings.TrimSpace(fl.Field().String()))
}

// Struct validates s and translates validator failures into ValidationErrors.
func Struct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return Translate(validationErrs)
		}
		return err
	}
	return nil
}

func Translate(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "required_unless":
			message = fmt.Sprintf("%s is required unless %s", err.Field(), err.Param())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "e164":
			message = fmt.Sprintf("%s must be in E.164 format (e.g., +14355550100)", err.Field())
		case TagTimeOfDay:
			message = fmt.Sprintf("%s must be a time in HH:MM or H:MM AM/PM format", err.Field())
		case TagCalendarDate:
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
