package service

import (
	"time"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/timeutil"
)

// window is an inclusive span of minutes since midnight.
type window struct {
	start int
	end   int
}

func (w window) contains(m int) bool {
	return w.start <= m && m <= w.end
}

func anyContains(windows []window, m int) bool {
	for _, w := range windows {
		if w.contains(m) {
			return true
		}
	}
	return false
}

func bookingWindow(pickup int, p Policy) window {
	return window{
		start: timeutil.ClampMinutes(pickup - int(p.BufferBefore/time.Minute)),
		end:   timeutil.ClampMinutes(pickup + int(p.BufferAfter/time.Minute)),
	}
}

// dayWindows is the outcome of evaluating a DaySchedule. closed is non-nil
// when nothing on the date can be booked.
type dayWindows struct {
	allowed []window
	blocked []window
	closed  *Closed
}

func (s *availabilityService) windowsFor(ds DaySchedule, date string) dayWindows {
	var allowed, blocked []window

	switch d := ds.(type) {
	case Closed:
		return dayWindows{closed: &d}
	case CustomHours:
		allowed = s.rangeWindows(d.Ranges, recordException, exceptionID(d.Exception), date)
	case WeekdayDefault:
		allowed = s.rangeWindows(d.Ranges, recordSchedule, "", date)
	case BlockedHours:
		allowed = s.rangeWindows(d.Ranges, recordSchedule, "", date)
		blocked = s.rangeWindows(d.Blocked, recordException, exceptionID(d.Exception), date)
	default:
		s.cfg.Log.Error("Unhandled day schedule variant", "date", date)
		return dayWindows{closed: &Closed{Reason: model.ReasonNoValidHours}}
	}

	if len(allowed) == 0 {
		return dayWindows{closed: &Closed{Reason: model.ReasonNoValidHours, Exception: exceptionOf(ds)}}
	}
	return dayWindows{allowed: allowed, blocked: blocked}
}

// rangeWindows converts stored ranges, dropping any whose ends fail to
// normalize or are out of order.
func (s *availabilityService) rangeWindows(ranges []model.TimeRange, record, id, date string) []window {
	windows := make([]window, 0, len(ranges))
	for _, r := range ranges {
		start, end, ok := timeutil.ParseRange(r.Start, r.End)
		if !ok {
			s.skip(record, id, "time_range", r.Start+"-"+r.End, date)
			continue
		}
		if start > end {
			s.skip(record, id, "time_range_order", r.Start+"-"+r.End, date)
			continue
		}
		windows = append(windows, window{start: start, end: end})
	}
	return windows
}

func (s *availabilityService) bookingWindows(bookings []*model.Booking, excludeID, date string) []window {
	windows := make([]window, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.OccupiesCapacity() {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		pickup, ok := timeutil.TimeToMinutes(b.PickupTime)
		if !ok {
			s.skip(recordBooking, b.ID, "pickup_time", b.PickupTime, date)
			continue
		}
		windows = append(windows, bookingWindow(pickup, s.policy))
	}
	return windows
}

func (s *availabilityService) manualWindows(manual []*model.ManualBooking, date string) []window {
	windows := make([]window, 0, len(manual))
	for _, mb := range manual {
		if mb == nil || !mb.IsActive {
			continue
		}
		start, end, ok := timeutil.ParseRange(mb.StartTime, mb.EndTime)
		if !ok {
			s.skip(recordManualBooking, mb.ID, "time_range", mb.StartTime+"-"+mb.EndTime, date)
			continue
		}
		if start > end {
			s.skip(recordManualBooking, mb.ID, "time_range_order", mb.StartTime+"-"+mb.EndTime, date)
			continue
		}
		windows = append(windows, window{start: start, end: end})
	}
	return windows
}

func exceptionOf(ds DaySchedule) *model.DateException {
	switch d := ds.(type) {
	case Closed:
		return d.Exception
	case CustomHours:
		return d.Exception
	case WeekdayDefault:
		return d.Exception
	case BlockedHours:
		return d.Exception
	}
	return nil
}

func exceptionID(exc *model.DateException) string {
	if exc == nil {
		return ""
	}
	return exc.ID
}
