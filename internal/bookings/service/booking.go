package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	bookingserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/bookings/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/bookings/repository"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/bookings/validator"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/kafka"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/lock"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/metrics"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/sanitizer"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/timeutil"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"
)

const (
	actionCreate = "create"
	actionUpdate = "update"
	actionCancel = "cancel"

	resultSuccess  = "success"
	resultConflict = "conflict"
	resultRejected = "rejected"
	resultError    = "error"
)

// AvailabilityChecker is the part of the availability engine bookings need.
type AvailabilityChecker interface {
	IsTimeAvailable(ctx context.Context, date string, pickupTime string, excludeBookingID string) (bool, error)
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	ListByDate(ctx context.Context, date string, limit int, offset int64) ([]*model.Booking, int64, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Cancel(ctx context.Context, id string) (*model.Booking, error)
}

type bookingService struct {
	repo         repository.BookingRepository
	availability AvailabilityChecker
	locker       lock.Locker
	publisher    kafka.Publisher
	validator    *validator.BookingValidator
	cfg          *config.Config
}

// NewBookingService wires the booking flows. publisher may be nil when event
// publishing is disabled.
func NewBookingService(
	repo repository.BookingRepository,
	availability AvailabilityChecker,
	locker lock.Locker,
	publisher kafka.Publisher,
	validator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:         repo,
		availability: availability,
		locker:       locker,
		publisher:    publisher,
		validator:    validator,
		cfg:          cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.applyDefaults(booking)
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		metrics.IncBooking(actionCreate, resultRejected)
		return err
	}
	if !booking.OccupiesCapacity() || booking.Status == model.StatusCompleted {
		metrics.IncBooking(actionCreate, resultRejected)
		return apperrors.InvalidInput("New bookings must be pending or confirmed")
	}

	err := s.reserve(ctx, booking, "", func(ctx context.Context) error {
		return s.repo.Create(ctx, booking)
	})
	if err != nil {
		s.recordFailure(actionCreate, err)
		s.cfg.Log.Warn("Failed to create booking",
			"date", booking.Date,
			"pickup_time", booking.PickupTime,
			"error", err,
		)
		return err
	}

	metrics.IncBooking(actionCreate, resultSuccess)
	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"date", booking.Date,
		"pickup_time", booking.PickupTime,
		"status", booking.Status,
	)
	s.publish(ctx, EventBookingCreated, booking)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, id, "Failed to retrieve booking")
	}
	return booking, nil
}

func (s *bookingService) ListByDate(ctx context.Context, date string, limit int, offset int64) ([]*model.Booking, int64, error) {
	date = strings.TrimSpace(date)
	if !timeutil.IsDate(date) {
		return nil, 0, apperrors.InvalidInput("date must be in YYYY-MM-DD format")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByDate(ctx, date)
		if err != nil {
			s.cfg.Log.Error("Failed to count bookings", "date", date, "error", err)
			errCount = apperrors.Internal("Failed to count bookings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		bookings, err = s.repo.ListByDate(ctx, date, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to list bookings",
				"date", date,
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve bookings", err)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}
	return bookings, count, nil
}

// Update re-runs the availability check, excluding the booking itself, when
// the pickup slot changes or a cancelled booking would occupy capacity again.
func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if updates == nil {
		return nil, apperrors.InvalidInput("Update body cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, id, "Failed to check booking existence")
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		metrics.IncBooking(actionUpdate, resultRejected)
		return nil, s.validationError("Invalid update input", err)
	}

	merged := s.mergeBookingUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		metrics.IncBooking(actionUpdate, resultRejected)
		return nil, err
	}

	write := func(ctx context.Context) error {
		return s.repo.Update(ctx, id, merged)
	}
	if s.needsSlotCheck(existing, merged) {
		err = s.reserve(ctx, merged, id, write)
	} else {
		err = s.wrapWriteError(write(ctx), id)
	}
	if err != nil {
		s.recordFailure(actionUpdate, err)
		s.cfg.Log.Warn("Failed to update booking", "id", id, "error", err)
		return nil, err
	}

	metrics.IncBooking(actionUpdate, resultSuccess)
	s.cfg.Log.Info("Booking updated successfully",
		"id", id,
		"date", merged.Date,
		"pickup_time", merged.PickupTime,
		"status", merged.Status,
	)

	eventType := EventBookingUpdated
	if merged.Status == model.StatusCancelled && existing.Status != model.StatusCancelled {
		eventType = EventBookingCancelled
	}
	s.publish(ctx, eventType, merged)
	return merged, nil
}

// Cancel frees the booking's capacity. Cancelling twice is a no-op.
func (s *bookingService) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, id, "Failed to check booking existence")
	}
	if booking.Status == model.StatusCancelled {
		return booking, nil
	}
	if booking.Status == model.StatusCompleted {
		metrics.IncBooking(actionCancel, resultRejected)
		return nil, apperrors.Conflict("Completed bookings cannot be cancelled")
	}

	booking.Status = model.StatusCancelled
	if err := s.repo.Update(ctx, id, booking); err != nil {
		metrics.IncBooking(actionCancel, resultError)
		return nil, s.translate(err, id, "Failed to cancel booking")
	}

	metrics.IncBooking(actionCancel, resultSuccess)
	s.cfg.Log.Info("Booking cancelled", "id", id, "date", booking.Date, "pickup_time", booking.PickupTime)
	s.publish(ctx, EventBookingCancelled, booking)
	return booking, nil
}

// reserve checks the slot, then holds the advisory lock for (date, pickup
// time) while checking again and running write.
func (s *bookingService) reserve(ctx context.Context, b *model.Booking, excludeID string, write func(ctx context.Context) error) error {
	if err := s.ensureAvailable(ctx, b, excludeID); err != nil {
		return err
	}

	key := lock.BookingKey(b.Date, b.PickupTime)
	err := lock.WithLock(ctx, s.locker, key, s.cfg.BookingLockTTL, func(ctx context.Context) error {
		if err := s.ensureAvailable(ctx, b, excludeID); err != nil {
			return err
		}
		return s.wrapWriteError(write(ctx), excludeID)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, lock.ErrNotAcquired):
		return apperrors.Conflict("This time slot is currently being booked by another request. Please try again.")
	case apperrors.IsAppError(err):
		return err
	default:
		s.cfg.Log.Error("Failed to acquire booking lock", "key", key, "error", err)
		return apperrors.Unavailable("booking lock", err)
	}
}

func (s *bookingService) ensureAvailable(ctx context.Context, b *model.Booking, excludeID string) error {
	ok, err := s.availability.IsTimeAvailable(ctx, b.Date, b.PickupTime, excludeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Conflict(fmt.Sprintf("Pickup time %s on %s is not available", b.PickupTime, b.Date)).
			WithDetails(map[string]any{"date": b.Date, "pickup_time": b.PickupTime})
	}
	return nil
}

func (s *bookingService) wrapWriteError(err error, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bookingserrors.ErrSlotTaken) {
		return apperrors.Conflict("Another booking already holds this pickup time")
	}
	return s.translate(err, id, "Failed to save booking")
}

func (s *bookingService) needsSlotCheck(existing, merged *model.Booking) bool {
	if !merged.OccupiesCapacity() {
		return false
	}
	if !existing.OccupiesCapacity() {
		return true
	}
	return existing.Date != merged.Date || existing.PickupTime != merged.PickupTime
}

func (s *bookingService) recordFailure(action string, err error) {
	if apperrors.HasCode(err, apperrors.CodeConflict) {
		metrics.IncBooking(action, resultConflict)
		return
	}
	metrics.IncBooking(action, resultError)
}

func (s *bookingService) translate(err error, id string, msg string) error {
	switch {
	case errors.Is(err, bookingserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Booking", id)
	case errors.Is(err, bookingserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	s.cfg.Log.Error(msg, "id", id, "error", err)
	return apperrors.Internal(msg, err)
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.Date = strings.TrimSpace(b.Date)
	if normalized, ok := timeutil.NormalizeTimeString(b.PickupTime); ok {
		b.PickupTime = normalized
	}
	b.Status = strings.ToLower(strings.TrimSpace(b.Status))
	b.ServiceType = sanitizer.TrimAndNormalize(b.ServiceType)
	b.CustomerName = sanitizer.NormalizeName(b.CustomerName)
	b.CustomerEmail = sanitizer.NormalizeEmail(b.CustomerEmail)
	b.CustomerPhone = sanitizer.NormalizePhone(b.CustomerPhone)
	b.PickupLocation = sanitizer.NormalizeLocation(b.PickupLocation)
	b.DropoffLocation = sanitizer.NormalizeLocation(b.DropoffLocation)
	b.Notes = sanitizer.NormalizeNotes(b.Notes)
}

func (s *bookingService) applyDefaults(b *model.Booking) {
	if b.Status == "" {
		b.Status = model.StatusPending
	}
	if b.Passengers <= 0 {
		b.Passengers = 1
	}
}

func (s *bookingService) mergeBookingUpdates(existing *model.Booking, updates *model.BookingUpdate) *model.Booking {
	merged := *existing

	if updates.Date != "" {
		merged.Date = updates.Date
	}
	if updates.PickupTime != "" {
		merged.PickupTime = updates.PickupTime
	}
	if updates.Status != "" {
		merged.Status = updates.Status
	}
	if updates.CustomerName != "" {
		merged.CustomerName = updates.CustomerName
	}
	if updates.CustomerEmail != "" {
		merged.CustomerEmail = updates.CustomerEmail
	}
	if updates.CustomerPhone != nil {
		merged.CustomerPhone = *updates.CustomerPhone
	}
	if updates.PickupLocation != "" {
		merged.PickupLocation = updates.PickupLocation
	}
	if updates.DropoffLocation != nil {
		merged.DropoffLocation = *updates.DropoffLocation
	}
	if updates.Passengers != nil {
		merged.Passengers = *updates.Passengers
	}
	if updates.Notes != nil {
		merged.Notes = *updates.Notes
	}

	return &merged
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return s.validationError("Booking validation failed", err)
	}
	return nil
}

func (s *bookingService) validationError(msg string, err error) error {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation(msg, verrs.Details())
	}
	return apperrors.Validation(msg, map[string]any{"error": err.Error()})
}
