package service

import "github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"

// DaySchedule is the effective schedule of one calendar date after the date
// exception has been weighed against the weekday schedule. It is one of
// Closed, CustomHours, WeekdayDefault or BlockedHours.
type DaySchedule interface {
	daySchedule()
}

// Closed means no ticks are bookable. Exception is set when a date exception
// caused the closure.
type Closed struct {
	Reason    string
	Exception *model.DateException
}

// CustomHours replaces the weekday ranges for the date.
type CustomHours struct {
	Ranges    []model.TimeRange
	Exception *model.DateException
}

// WeekdayDefault uses the recurring weekday ranges unchanged.
type WeekdayDefault struct {
	Ranges    []model.TimeRange
	Exception *model.DateException
}

// BlockedHours keeps the weekday ranges and removes Blocked from them.
type BlockedHours struct {
	Ranges    []model.TimeRange
	Blocked   []model.TimeRange
	Exception *model.DateException
}

func (Closed) daySchedule()         {}
func (CustomHours) daySchedule()    {}
func (WeekdayDefault) daySchedule() {}
func (BlockedHours) daySchedule()   {}

// overrideFor returns the schedule dictated by exc alone. ok is false when
// the weekday schedule is still needed.
func overrideFor(exc *model.DateException) (DaySchedule, bool) {
	if exc == nil {
		return nil, false
	}
	if !exc.IsEnabled || exc.Type == model.ExceptionClosed {
		return Closed{Reason: model.ReasonExceptionClosed, Exception: exc}, true
	}
	if exc.Type == model.ExceptionCustomHours && len(exc.TimeRanges) > 0 {
		return CustomHours{Ranges: exc.TimeRanges, Exception: exc}, true
	}
	return nil, false
}

// weekdayFor builds the schedule from the weekday record, applying a
// blocked-hours exception on top when one is present.
func weekdayFor(weekday *model.WeekdaySchedule, exc *model.DateException) DaySchedule {
	if weekday == nil || !weekday.IsEnabled {
		return Closed{Reason: model.ReasonScheduleClosed, Exception: exc}
	}
	if exc != nil && exc.Type == model.ExceptionBlockedHours {
		return BlockedHours{Ranges: weekday.TimeRanges, Blocked: exc.TimeRanges, Exception: exc}
	}
	return WeekdayDefault{Ranges: weekday.TimeRanges, Exception: exc}
}

// ResolveDaySchedule combines a date exception and weekday schedule, either of
// which may be nil.
func ResolveDaySchedule(exc *model.DateException, weekday *model.WeekdaySchedule) DaySchedule {
	if ds, ok := overrideFor(exc); ok {
		return ds
	}
	return weekdayFor(weekday, exc)
}
