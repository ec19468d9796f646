package model

import "time"

type ExceptionType string

const (
	ExceptionClosed       ExceptionType = "closed"
	ExceptionCustomHours  ExceptionType = "custom-hours"
	ExceptionBlockedHours ExceptionType = "blocked-hours"
)

// DateException overrides the weekday schedule for a single calendar date.
type DateException struct {
	ID         string        `json:"id,omitempty" bson:"_id,omitempty"`
	Date       string        `json:"date" bson:"date" validate:"required,calendar_date"`
	IsEnabled  bool          `json:"is_enabled" bson:"is_enabled"`
	Type       ExceptionType `json:"type" bson:"type" validate:"required,oneof=closed custom-hours blocked-hours"`
	TimeRanges []TimeRange   `json:"time_ranges,omitempty" bson:"time_ranges" validate:"required_unless=Type closed,dive"`
	Reason     string        `json:"reason,omitempty" bson:"reason" validate:"omitempty,max=200"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}

type DateExceptionUpdate struct {
	IsEnabled  *bool         `json:"is_enabled,omitempty"`
	Type       ExceptionType `json:"type,omitempty"`
	TimeRanges *[]TimeRange  `json:"time_ranges,omitempty"`
	Reason     *string       `json:"reason,omitempty"`
}
