package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	exceptionserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/validator"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

// Mock repository for testing
type mockExceptionRepository struct {
	createFunc     func(ctx context.Context, exc *model.DateException) error
	findByIDFunc   func(ctx context.Context, id string) (*model.DateException, error)
	findByDateFunc func(ctx context.Context, date string) (*model.DateException, error)
	listFunc       func(ctx context.Context, from, to string) ([]*model.DateException, error)
	updateFunc     func(ctx context.Context, id string, exc *model.DateException) error
	deleteFunc     func(ctx context.Context, id string) error
}

func (m *mockExceptionRepository) Create(ctx context.Context, exc *model.DateException) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, exc)
	}
	exc.ID = "new-id"
	return nil
}

func (m *mockExceptionRepository) FindByID(ctx context.Context, id string) (*model.DateException, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("%w: %s", exceptionserrors.ErrNotFound, id)
}

func (m *mockExceptionRepository) FindByDate(ctx context.Context, date string) (*model.DateException, error) {
	if m.findByDateFunc != nil {
		return m.findByDateFunc(ctx, date)
	}
	return nil, fmt.Errorf("%w: %s", exceptionserrors.ErrNotFound, date)
}

func (m *mockExceptionRepository) List(ctx context.Context, from, to string) ([]*model.DateException, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, from, to)
	}
	return []*model.DateException{}, nil
}

func (m *mockExceptionRepository) Update(ctx context.Context, id string, exc *model.DateException) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, exc)
	}
	return nil
}

func (m *mockExceptionRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newTestService(repo *mockExceptionRepository) *exceptionService {
	log := logger.Discard()
	return &exceptionService{
		repo:      repo,
		validator: validator.NewExceptionValidator(log),
		cfg:       &config.Config{Log: log, Location: time.UTC},
	}
}

func TestCreate_ClosedForcesDisabled(t *testing.T) {
	var stored *model.DateException
	repo := &mockExceptionRepository{
		createFunc: func(ctx context.Context, exc *model.DateException) error {
			stored = exc
			return nil
		},
	}
	service := newTestService(repo)

	exc := &model.DateException{Date: " 2026-12-25 ", Type: "Closed", IsEnabled: true, Reason: " Christmas "}
	if err := service.Create(context.Background(), exc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored == nil {
		t.Fatal("exception was not stored")
	}
	if stored.IsEnabled {
		t.Error("closed exception must be stored disabled")
	}
	if stored.Date != "2026-12-25" || stored.Type != model.ExceptionClosed || stored.Reason != "Christmas" {
		t.Errorf("exception not sanitized: %+v", stored)
	}
}

func TestCreate_DuplicateDateIsConflict(t *testing.T) {
	repo := &mockExceptionRepository{
		createFunc: func(ctx context.Context, exc *model.DateException) error {
			return fmt.Errorf("%w: %s", exceptionserrors.ErrDuplicateDate, exc.Date)
		},
	}
	service := newTestService(repo)

	err := service.Create(context.Background(), &model.DateException{Date: "2026-12-25", Type: model.ExceptionClosed})
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestCreate_InvalidRangesRejected(t *testing.T) {
	called := false
	repo := &mockExceptionRepository{
		createFunc: func(ctx context.Context, exc *model.DateException) error {
			called = true
			return nil
		},
	}
	service := newTestService(repo)

	err := service.Create(context.Background(), &model.DateException{
		Date: "2026-12-24", Type: model.ExceptionCustomHours, IsEnabled: true,
		TimeRanges: []model.TimeRange{{Start: "13:00", End: "12:00"}},
	})
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if called {
		t.Error("repository must not be called for invalid input")
	}
}

func TestUpdate_MergesAndRevalidates(t *testing.T) {
	existing := &model.DateException{ID: "e1", Date: "2026-12-24", Type: model.ExceptionCustomHours, IsEnabled: true,
		TimeRanges: []model.TimeRange{{Start: "08:00", End: "12:00"}}}
	var written *model.DateException
	repo := &mockExceptionRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.DateException, error) {
			copied := *existing
			return &copied, nil
		},
		updateFunc: func(ctx context.Context, id string, exc *model.DateException) error {
			written = exc
			return nil
		},
	}
	service := newTestService(repo)

	newRanges := []model.TimeRange{{Start: "1:00 PM", End: "5:00 PM"}}
	got, err := service.Update(context.Background(), "e1", &model.DateExceptionUpdate{TimeRanges: &newRanges})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written == nil || got.TimeRanges[0].Start != "13:00" || got.TimeRanges[0].End != "17:00" {
		t.Errorf("ranges not normalized on update: %+v", got)
	}
	if got.Date != "2026-12-24" {
		t.Errorf("date must not change, got %s", got.Date)
	}

	_, err = service.Update(context.Background(), "e1", &model.DateExceptionUpdate{Type: model.ExceptionBlockedHours,
		TimeRanges: &[]model.TimeRange{}})
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Errorf("blocked-hours without ranges should fail validation, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	service := newTestService(&mockExceptionRepository{})

	_, err := service.Update(context.Background(), "missing", &model.DateExceptionUpdate{})
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := &mockExceptionRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			if id == "bad" {
				return fmt.Errorf("%w: %s", exceptionserrors.ErrInvalidID, id)
			}
			if id == "down" {
				return errors.New("connection reset")
			}
			return nil
		},
	}
	service := newTestService(repo)

	if err := service.Delete(context.Background(), "ok"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := service.Delete(context.Background(), "bad"); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
	if err := service.Delete(context.Background(), "down"); !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Errorf("expected internal, got %v", err)
	}
	if err := service.Delete(context.Background(), ""); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input for empty id, got %v", err)
	}
}

func TestList(t *testing.T) {
	var gotFrom, gotTo string
	repo := &mockExceptionRepository{
		listFunc: func(ctx context.Context, from, to string) ([]*model.DateException, error) {
			gotFrom, gotTo = from, to
			return []*model.DateException{{Date: from}}, nil
		},
	}
	service := newTestService(repo)

	list, err := service.List(context.Background(), "2026-12-01", "2026-12-31")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected result %v, %v", list, err)
	}
	if gotFrom != "2026-12-01" || gotTo != "2026-12-31" {
		t.Errorf("repository got %s..%s", gotFrom, gotTo)
	}

	tests := []struct{ from, to string }{
		{"2026-12-31", "2026-12-01"},
		{"2026-01-01", "2027-06-01"},
		{"december", "2026-12-31"},
	}
	for _, tt := range tests {
		if _, err := service.List(context.Background(), tt.from, tt.to); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
			t.Errorf("List(%s, %s): expected invalid input, got %v", tt.from, tt.to, err)
		}
	}
}

func TestGetByDate(t *testing.T) {
	service := newTestService(&mockExceptionRepository{})

	if _, err := service.GetByDate(context.Background(), "2026-12-25"); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := service.GetByDate(context.Background(), "tomorrow"); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}
