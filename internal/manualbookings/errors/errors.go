package errors

import "errors"

var (
	ErrNotFound  = errors.New("manual booking not found")
	ErrInvalidID = errors.New("invalid manual booking ID")
)
