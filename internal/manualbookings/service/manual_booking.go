package service

import (
	"context"
	"errors"
	"strings"

	manualerrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/repository"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/validator"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/timeutil"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"
)

type ManualBookingService interface {
	Create(ctx context.Context, mb *model.ManualBooking) error
	GetByID(ctx context.Context, id string) (*model.ManualBooking, error)
	ListByDate(ctx context.Context, date string) ([]*model.ManualBooking, error)
	Deactivate(ctx context.Context, id string) (*model.ManualBooking, error)
	Delete(ctx context.Context, id string) error
}

type manualBookingService struct {
	repo      repository.ManualBookingRepository
	validator *validator.ManualBookingValidator
	cfg       *config.Config
}

func NewManualBookingService(
	repo repository.ManualBookingRepository,
	validator *validator.ManualBookingValidator,
	cfg *config.Config,
) ManualBookingService {
	return &manualBookingService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// Create stores a new block. Blocks are always created active.
func (s *manualBookingService) Create(ctx context.Context, mb *model.ManualBooking) error {
	mb.Date = strings.TrimSpace(mb.Date)
	mb.Reason = strings.TrimSpace(mb.Reason)
	mb.IsActive = true

	if err := s.validator.Validate(mb); err != nil {
		s.cfg.Log.Warn("Manual booking validation failed",
			"date", mb.Date,
			"start_time", mb.StartTime,
			"end_time", mb.EndTime,
			"error", err,
		)
		var verrs validation.ValidationErrors
		if errors.As(err, &verrs) {
			return apperrors.Validation("Manual booking validation failed", verrs.Details())
		}
		return apperrors.Validation("Manual booking validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, mb); err != nil {
		s.cfg.Log.Error("Failed to create manual booking", "date", mb.Date, "error", err)
		return apperrors.Internal("Failed to create manual booking", err)
	}

	s.cfg.Log.Info("Manual booking created successfully",
		"id", mb.ID,
		"date", mb.Date,
		"start_time", mb.StartTime,
		"end_time", mb.EndTime,
	)
	return nil
}

func (s *manualBookingService) GetByID(ctx context.Context, id string) (*model.ManualBooking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Manual booking ID cannot be empty")
	}

	mb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, id)
	}
	return mb, nil
}

func (s *manualBookingService) ListByDate(ctx context.Context, date string) ([]*model.ManualBooking, error) {
	date = strings.TrimSpace(date)
	if !timeutil.IsDate(date) {
		return nil, apperrors.InvalidInput("date must be in YYYY-MM-DD format")
	}

	blocks, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		s.cfg.Log.Error("Failed to list manual bookings", "date", date, "error", err)
		return nil, apperrors.Internal("Failed to retrieve manual bookings", err)
	}
	return blocks, nil
}

// Deactivate releases the block's capacity while keeping it on record.
func (s *manualBookingService) Deactivate(ctx context.Context, id string) (*model.ManualBooking, error) {
	mb, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !mb.IsActive {
		return mb, nil
	}

	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return nil, s.translate(err, id)
	}
	mb.IsActive = false

	s.cfg.Log.Info("Manual booking deactivated", "id", id, "date", mb.Date)
	return mb, nil
}

func (s *manualBookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Manual booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, id)
	}

	s.cfg.Log.Info("Manual booking deleted successfully", "id", id)
	return nil
}

func (s *manualBookingService) translate(err error, id string) error {
	switch {
	case errors.Is(err, manualerrors.ErrNotFound):
		return apperrors.NotFoundWithID("Manual booking", id)
	case errors.Is(err, manualerrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid manual booking ID format")
	}
	s.cfg.Log.Error("Manual booking store operation failed", "id", id, "error", err)
	return apperrors.Internal("Manual booking operation failed", err)
}
