package errors

import "errors"

var (
	ErrNotFound = errors.New("date exception not found")

	ErrInvalidID = errors.New("invalid date exception ID format")

	ErrDuplicateDate = errors.New("a date exception already exists for this date")
)
