// Package service computes which pickup times are bookable on a date.
//
// A date's effective hours come from its date exception when one overrides
// the weekday, otherwise from the weekday schedule. Candidate ticks on a fixed
// grid are kept when they fall inside an allowed range, outside every blocked
// window (bookings, manual blocks, blocked-hours exceptions) and, for today,
// after the minimum lead time. Dates are wall-clock dates in the configured
// business time zone.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	exceptionserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/errors"
	scheduleserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/metrics"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/timeutil"
)

const (
	MaxRangeDays = 31

	storeName = "availability store"

	recordSchedule      = "schedule"
	recordException     = "exception"
	recordBooking       = "booking"
	recordManualBooking = "manual_booking"

	opSlots = "slots"
	opCheck = "check"
)

type ScheduleReader interface {
	FindByDay(ctx context.Context, dayOfWeek int) (*model.WeekdaySchedule, error)
}

type ExceptionReader interface {
	FindByDate(ctx context.Context, date string) (*model.DateException, error)
}

type BookingReader interface {
	FindNonCancelled(ctx context.Context, date string, excludeID string) ([]*model.Booking, error)
}

type ManualBookingReader interface {
	FindActive(ctx context.Context, date string) ([]*model.ManualBooking, error)
}

type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, date string, excludeBookingID string) (*model.AvailabilityResult, error)
	IsTimeAvailable(ctx context.Context, date string, pickupTime string, excludeBookingID string) (bool, error)
	GetAvailableSlotsRange(ctx context.Context, from string, to string) ([]*model.AvailabilityResult, error)
}

type availabilityService struct {
	schedules  ScheduleReader
	exceptions ExceptionReader
	bookings   BookingReader
	manual     ManualBookingReader
	cfg        *config.Config
	policy     Policy
	loc        *time.Location
	now        func() time.Time
}

type Option func(*availabilityService)

// WithClock replaces time.Now. Tests use it to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *availabilityService) {
		s.now = now
	}
}

func WithPolicy(p Policy) Option {
	return func(s *availabilityService) {
		s.policy = p
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *availabilityService) {
		s.loc = loc
	}
}

func NewAvailabilityService(
	schedules ScheduleReader,
	exceptions ExceptionReader,
	bookings BookingReader,
	manual ManualBookingReader,
	cfg *config.Config,
	opts ...Option,
) AvailabilityService {
	s := &availabilityService{
		schedules:  schedules,
		exceptions: exceptions,
		bookings:   bookings,
		manual:     manual,
		cfg:        cfg,
		policy:     PolicyFromConfig(cfg),
		loc:        cfg.Location,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	return s
}

func (s *availabilityService) GetAvailableSlots(ctx context.Context, date string, excludeBookingID string) (*model.AvailabilityResult, error) {
	day, err := timeutil.ParseDate(date, s.loc)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	result, err := s.slotsForDay(ctx, day, excludeBookingID)
	if err != nil {
		metrics.IncAvailability(opSlots, "error")
		return nil, err
	}
	metrics.IncAvailability(opSlots, result.Reason)
	return result, nil
}

func (s *availabilityService) GetAvailableSlotsRange(ctx context.Context, from string, to string) ([]*model.AvailabilityResult, error) {
	start, err := timeutil.ParseDate(from, s.loc)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	end, err := timeutil.ParseDate(to, s.loc)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	if end.Before(start) {
		return nil, apperrors.InvalidInput("to must not be before from")
	}
	if start.AddDate(0, 0, MaxRangeDays-1).Before(end) {
		return nil, apperrors.InvalidInput("date range cannot exceed 31 days")
	}

	results := make([]*model.AvailabilityResult, 0, MaxRangeDays)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		result, err := s.slotsForDay(ctx, day, "")
		if err != nil {
			metrics.IncAvailability(opSlots, "error")
			return nil, err
		}
		metrics.IncAvailability(opSlots, result.Reason)
		results = append(results, result)
	}
	return results, nil
}

// IsTimeAvailable reports whether pickupTime on date can be booked. A time
// that does not normalize is simply unavailable.
func (s *availabilityService) IsTimeAvailable(ctx context.Context, date string, pickupTime string, excludeBookingID string) (bool, error) {
	day, err := timeutil.ParseDate(date, s.loc)
	if err != nil {
		return false, apperrors.InvalidInput(err.Error())
	}

	available, err := s.checkTime(ctx, day, pickupTime, excludeBookingID)
	switch {
	case err != nil:
		metrics.IncAvailability(opCheck, "error")
	case available:
		metrics.IncAvailability(opCheck, "available")
	default:
		metrics.IncAvailability(opCheck, "unavailable")
	}
	return available, err
}

func (s *availabilityService) checkTime(ctx context.Context, day time.Time, pickupTime string, excludeBookingID string) (bool, error) {
	dateStr := timeutil.FormatDate(day)

	m, ok := timeutil.TimeToMinutes(pickupTime)
	if !ok {
		s.cfg.Log.Debug("Availability check with unparseable time", "date", dateStr, "time", pickupTime)
		return false, nil
	}

	now := s.now().In(s.loc)
	if day.Before(startOfDay(now)) {
		return false, nil
	}

	ds, err := s.resolve(ctx, day, dateStr)
	if err != nil {
		return false, err
	}
	windows := s.windowsFor(ds, dateStr)
	if windows.closed != nil {
		return false, nil
	}
	if !anyContains(windows.allowed, m) || anyContains(windows.blocked, m) {
		return false, nil
	}
	if s.tooSoon(day, m, now) {
		return false, nil
	}

	occupied, err := s.occupiedWindows(ctx, dateStr, excludeBookingID)
	if err != nil {
		return false, err
	}
	return !anyContains(occupied, m), nil
}

func (s *availabilityService) slotsForDay(ctx context.Context, day time.Time, excludeBookingID string) (*model.AvailabilityResult, error) {
	dateStr := timeutil.FormatDate(day)
	result := &model.AvailabilityResult{
		Date:  dateStr,
		Slots: []string{},
	}

	now := s.now().In(s.loc)
	if day.Before(startOfDay(now)) {
		result.Reason = model.ReasonPastDate
		return result, nil
	}

	ds, err := s.resolve(ctx, day, dateStr)
	if err != nil {
		return nil, err
	}
	result.Exception = exceptionOf(ds)

	windows := s.windowsFor(ds, dateStr)
	if windows.closed != nil {
		result.Closed = true
		result.Reason = windows.closed.Reason
		return result, nil
	}

	occupied, err := s.occupiedWindows(ctx, dateStr, excludeBookingID)
	if err != nil {
		return nil, err
	}
	blocked := append(windows.blocked, occupied...)

	for _, m := range timeutil.Ticks(s.policy.SlotInterval) {
		if !anyContains(windows.allowed, m) || anyContains(blocked, m) || s.tooSoon(day, m, now) {
			continue
		}
		result.Slots = append(result.Slots, timeutil.MinutesToTime(m))
	}
	result.Reason = model.ReasonOpen
	return result, nil
}

// resolve loads the exception and, when it does not settle the day on its
// own, the weekday schedule.
func (s *availabilityService) resolve(ctx context.Context, day time.Time, dateStr string) (DaySchedule, error) {
	exc, err := s.exceptions.FindByDate(ctx, dateStr)
	switch {
	case errors.Is(err, exceptionserrors.ErrNotFound):
		exc = nil
	case err != nil:
		return nil, s.storeFailure("Failed to load date exception", err, "date", dateStr)
	}

	if ds, ok := overrideFor(exc); ok {
		return ds, nil
	}

	weekday, err := s.schedules.FindByDay(ctx, int(day.Weekday()))
	switch {
	case errors.Is(err, scheduleserrors.ErrNotFound):
		weekday = nil
	case err != nil:
		return nil, s.storeFailure("Failed to load weekday schedule", err, "date", dateStr, "day_of_week", int(day.Weekday()))
	}

	return weekdayFor(weekday, exc), nil
}

// occupiedWindows reads bookings and manual blocks for the date in parallel.
func (s *availabilityService) occupiedWindows(ctx context.Context, dateStr string, excludeBookingID string) ([]window, error) {
	var bookings []*model.Booking
	var manual []*model.ManualBooking
	var errBookings, errManual error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		bookings, errBookings = s.bookings.FindNonCancelled(ctx, dateStr, excludeBookingID)
	}()

	go func() {
		defer wg.Done()
		manual, errManual = s.manual.FindActive(ctx, dateStr)
	}()

	wg.Wait()
	if errBookings != nil {
		return nil, s.storeFailure("Failed to load bookings", errBookings, "date", dateStr)
	}
	if errManual != nil {
		return nil, s.storeFailure("Failed to load manual bookings", errManual, "date", dateStr)
	}

	occupied := s.bookingWindows(bookings, excludeBookingID, dateStr)
	return append(occupied, s.manualWindows(manual, dateStr)...), nil
}

// tooSoon applies the lead time cutoff, which only exists for today.
func (s *availabilityService) tooSoon(day time.Time, m int, now time.Time) bool {
	if !day.Equal(startOfDay(now)) {
		return false
	}
	return !timeutil.AtMinute(day, m).After(now.Add(s.policy.MinLeadTime))
}

func (s *availabilityService) storeFailure(msg string, err error, args ...any) error {
	s.cfg.Log.Error(msg, append(args, "error", err)...)
	return apperrors.Unavailable(storeName, err)
}

func (s *availabilityService) skip(record, id, field, value, date string) {
	metrics.IncSkippedRecord(record)
	s.cfg.Log.Warn("Skipping record with invalid time",
		"record", record,
		"id", id,
		"field", field,
		"value", value,
		"date", date,
	)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
