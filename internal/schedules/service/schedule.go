package service

import (
	"context"
	"errors"

	scheduleserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/repository"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/validator"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

const DaysPerWeek = 7

type ScheduleService interface {
	GetAll(ctx context.Context) ([]*model.WeekdaySchedule, error)
	GetByDay(ctx context.Context, dayOfWeek int) (*model.WeekdaySchedule, error)
	UpdateSchedule(ctx context.Context, dayOfWeek int, updates *model.ScheduleUpdate) (*model.WeekdaySchedule, error)
	ResetSchedules(ctx context.Context) ([]*model.WeekdaySchedule, error)
}

type scheduleService struct {
	repo      repository.ScheduleRepository
	validator *validator.ScheduleValidator
	cfg       *config.Config
}

func NewScheduleService(
	repo repository.ScheduleRepository,
	validator *validator.ScheduleValidator,
	cfg *config.Config,
) ScheduleService {
	return &scheduleService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *scheduleService) GetAll(ctx context.Context) ([]*model.WeekdaySchedule, error) {
	schedules, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get all schedules", "error", err)
		return nil, apperrors.Internal("Failed to retrieve schedules", err)
	}
	return schedules, nil
}

func (s *scheduleService) GetByDay(ctx context.Context, dayOfWeek int) (*model.WeekdaySchedule, error) {
	if err := s.validator.ValidateDay(dayOfWeek); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	sc, err := s.repo.FindByDay(ctx, dayOfWeek)
	if err != nil {
		if errors.Is(err, scheduleserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Schedule for this weekday")
		}
		s.cfg.Log.Error("Failed to get schedule by day",
			"day_of_week", dayOfWeek,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve schedule", err)
	}
	return sc, nil
}

// UpdateSchedule validates every incoming range before anything is written.
// A weekday without a stored schedule is created, enabled unless the update
// says otherwise.
func (s *scheduleService) UpdateSchedule(ctx context.Context, dayOfWeek int, updates *model.ScheduleUpdate) (*model.WeekdaySchedule, error) {
	if err := s.validator.ValidateDay(dayOfWeek); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	if updates == nil || (updates.TimeRanges == nil && updates.IsEnabled == nil) {
		return nil, apperrors.InvalidInput("Update must include time_ranges or is_enabled")
	}

	var ranges []model.TimeRange
	if updates.TimeRanges != nil {
		normalized, err := s.validator.NormalizeRanges(*updates.TimeRanges)
		if err != nil {
			s.cfg.Log.Warn("Schedule update rejected",
				"day_of_week", dayOfWeek,
				"error", err,
			)
			var verrs validation.ValidationErrors
			errors.As(err, &verrs)
			return nil, apperrors.Validation("Invalid time ranges", verrs.Details())
		}
		ranges = normalized
	}

	existing, err := s.repo.FindByDay(ctx, dayOfWeek)
	switch {
	case errors.Is(err, scheduleserrors.ErrNotFound):
		existing = &model.WeekdaySchedule{DayOfWeek: dayOfWeek, IsEnabled: true, TimeRanges: []model.TimeRange{}}
	case err != nil:
		s.cfg.Log.Error("Failed to load schedule for update",
			"day_of_week", dayOfWeek,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to check schedule existence", err)
	}

	merged := s.mergeScheduleUpdates(existing, updates, ranges)
	if err := s.validator.Validate(merged); err != nil {
		return nil, apperrors.Validation("Schedule validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.repo.Upsert(ctx, merged); err != nil {
		s.cfg.Log.Error("Failed to upsert schedule",
			"day_of_week", dayOfWeek,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to update schedule", err)
	}

	s.cfg.Log.Info("Schedule updated successfully",
		"day_of_week", dayOfWeek,
		"is_enabled", merged.IsEnabled,
		"ranges", len(merged.TimeRanges),
	)
	return merged, nil
}

// ResetSchedules replaces all seven weekdays with enabled 24-hour schedules.
func (s *scheduleService) ResetSchedules(ctx context.Context) ([]*model.WeekdaySchedule, error) {
	schedules := DefaultSchedules()

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.DeleteAll(sessCtx); err != nil {
			return err
		}
		for _, sc := range schedules {
			if err := s.repo.Upsert(sessCtx, sc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to reset schedules", "error", err)
		return nil, apperrors.Internal("Failed to reset schedules", err)
	}

	s.cfg.Log.Info("Schedules reset to 24/7")
	return schedules, nil
}

// DefaultSchedules returns one enabled 00:00-23:59 schedule per weekday.
func DefaultSchedules() []*model.WeekdaySchedule {
	schedules := make([]*model.WeekdaySchedule, 0, DaysPerWeek)
	for day := 0; day < DaysPerWeek; day++ {
		schedules = append(schedules, &model.WeekdaySchedule{
			DayOfWeek:  day,
			IsEnabled:  true,
			TimeRanges: []model.TimeRange{model.FullDay()},
		})
	}
	return schedules
}

func (s *scheduleService) mergeScheduleUpdates(existing *model.WeekdaySchedule, updates *model.ScheduleUpdate, ranges []model.TimeRange) *model.WeekdaySchedule {
	merged := *existing
	if updates.TimeRanges != nil {
		merged.TimeRanges = ranges
	}
	if updates.IsEnabled != nil {
		merged.IsEnabled = *updates.IsEnabled
	}
	return &merged
}
