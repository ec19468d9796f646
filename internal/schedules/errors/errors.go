package errors

import "errors"

var (
	ErrNotFound = errors.New("weekday schedule not found")

	ErrInvalidDay = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
)
