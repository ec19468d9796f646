package model

import "time"

// TimeRange is an allowed or blocked span of a day, both ends inclusive.
type TimeRange struct {
	Start string `json:"start" bson:"start" validate:"required,time_of_day"`
	End   string `json:"end" bson:"end" validate:"required,time_of_day"`
}

// WeekdaySchedule is the recurring schedule for one weekday (Sunday=0 .. Saturday=6).
type WeekdaySchedule struct {
	ID         string      `json:"id,omitempty" bson:"_id,omitempty"`
	DayOfWeek  int         `json:"day_of_week" bson:"day_of_week" validate:"min=0,max=6"`
	IsEnabled  bool        `json:"is_enabled" bson:"is_enabled"`
	TimeRanges []TimeRange `json:"time_ranges" bson:"time_ranges" validate:"dive"`
	UpdatedAt  time.Time   `json:"updated_at" bson:"updated_at"`
}

type ScheduleUpdate struct {
	TimeRanges *[]TimeRange `json:"time_ranges,omitempty"`
	IsEnabled  *bool        `json:"is_enabled,omitempty"`
}

// FullDay is the range used when a weekday is reset to 24/7.
func FullDay() TimeRange {
	return TimeRange{Start: "00:00", End: "23:59"}
}
