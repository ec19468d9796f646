package service

import (
	"context"
	"errors"
	"strings"

	exceptionserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/repository"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/validator"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/timeutil"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"
)

const MaxListDays = 366

type ExceptionService interface {
	Create(ctx context.Context, exc *model.DateException) error
	GetByID(ctx context.Context, id string) (*model.DateException, error)
	GetByDate(ctx context.Context, date string) (*model.DateException, error)
	List(ctx context.Context, from string, to string) ([]*model.DateException, error)
	Update(ctx context.Context, id string, updates *model.DateExceptionUpdate) (*model.DateException, error)
	Delete(ctx context.Context, id string) error
}

type exceptionService struct {
	repo      repository.ExceptionRepository
	validator *validator.ExceptionValidator
	cfg       *config.Config
}

func NewExceptionService(
	repo repository.ExceptionRepository,
	validator *validator.ExceptionValidator,
	cfg *config.Config,
) ExceptionService {
	return &exceptionService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *exceptionService) Create(ctx context.Context, exc *model.DateException) error {
	s.sanitize(exc)
	if err := s.validate(exc); err != nil {
		s.cfg.Log.Warn("Date exception validation failed",
			"date", exc.Date,
			"type", exc.Type,
			"error", err,
		)
		return err
	}

	if err := s.repo.Create(ctx, exc); err != nil {
		if errors.Is(err, exceptionserrors.ErrDuplicateDate) {
			return apperrors.Conflict("A date exception already exists for " + exc.Date)
		}
		s.cfg.Log.Error("Failed to create date exception",
			"date", exc.Date,
			"error", err,
		)
		return apperrors.Internal("Failed to create date exception", err)
	}

	s.cfg.Log.Info("Date exception created successfully",
		"id", exc.ID,
		"date", exc.Date,
		"type", exc.Type,
		"is_enabled", exc.IsEnabled,
	)
	return nil
}

func (s *exceptionService) GetByID(ctx context.Context, id string) (*model.DateException, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Date exception ID cannot be empty")
	}

	exc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "id", id)
	}
	return exc, nil
}

func (s *exceptionService) GetByDate(ctx context.Context, date string) (*model.DateException, error) {
	date = strings.TrimSpace(date)
	if !timeutil.IsDate(date) {
		return nil, apperrors.InvalidInput("date must be in YYYY-MM-DD format")
	}

	exc, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, exceptionserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Date exception for " + date)
		}
		s.cfg.Log.Error("Failed to get date exception by date",
			"date", date,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve date exception", err)
	}
	return exc, nil
}

func (s *exceptionService) List(ctx context.Context, from string, to string) ([]*model.DateException, error) {
	start, err := timeutil.ParseDate(from, s.cfg.Location)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	end, err := timeutil.ParseDate(to, s.cfg.Location)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	if end.Before(start) {
		return nil, apperrors.InvalidInput("to must not be before from")
	}
	if start.AddDate(0, 0, MaxListDays).Before(end) {
		return nil, apperrors.InvalidInput("date range cannot exceed one year")
	}

	exceptions, err := s.repo.List(ctx, timeutil.FormatDate(start), timeutil.FormatDate(end))
	if err != nil {
		s.cfg.Log.Error("Failed to list date exceptions",
			"from", from,
			"to", to,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve date exceptions", err)
	}
	return exceptions, nil
}

// Update merges updates into the stored exception. The date itself is fixed;
// moving an exception means deleting it and creating another.
func (s *exceptionService) Update(ctx context.Context, id string, updates *model.DateExceptionUpdate) (*model.DateException, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Date exception ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "id", id)
	}

	merged := s.mergeExceptionUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		s.cfg.Log.Warn("Date exception validation failed",
			"id", id,
			"date", merged.Date,
			"error", err,
		)
		return nil, err
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		return nil, s.translate(err, "id", id)
	}

	s.cfg.Log.Info("Date exception updated successfully",
		"id", id,
		"date", merged.Date,
		"type", merged.Type,
	)
	return merged, nil
}

func (s *exceptionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Date exception ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, "id", id)
	}

	s.cfg.Log.Info("Date exception deleted successfully", "id", id)
	return nil
}

func (s *exceptionService) validate(exc *model.DateException) error {
	if err := s.validator.Validate(exc); err != nil {
		var verrs validation.ValidationErrors
		if errors.As(err, &verrs) {
			return apperrors.Validation("Date exception validation failed", verrs.Details())
		}
		return apperrors.Validation("Date exception validation failed", map[string]any{
			"error": err.Error(),
		})
	}
	return nil
}

func (s *exceptionService) translate(err error, key string, value string) error {
	switch {
	case errors.Is(err, exceptionserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Date exception", value)
	case errors.Is(err, exceptionserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid date exception ID format")
	}
	s.cfg.Log.Error("Date exception store operation failed",
		key, value,
		"error", err,
	)
	return apperrors.Internal("Date exception operation failed", err)
}

// sanitize trims input and applies the closed rule: a closed exception is
// always disabled.
func (s *exceptionService) sanitize(exc *model.DateException) {
	exc.Date = strings.TrimSpace(exc.Date)
	exc.Type = model.ExceptionType(strings.ToLower(strings.TrimSpace(string(exc.Type))))
	exc.Reason = strings.TrimSpace(exc.Reason)
	if exc.Type == model.ExceptionClosed {
		exc.IsEnabled = false
	}
}

func (s *exceptionService) mergeExceptionUpdates(existing *model.DateException, updates *model.DateExceptionUpdate) *model.DateException {
	merged := *existing
	if updates == nil {
		return &merged
	}
	if updates.IsEnabled != nil {
		merged.IsEnabled = *updates.IsEnabled
	}
	if updates.Type != "" {
		merged.Type = updates.Type
	}
	if updates.TimeRanges != nil {
		merged.TimeRanges = *updates.TimeRanges
	}
	if updates.Reason != nil {
		merged.Reason = *updates.Reason
	}
	return &merged
}
