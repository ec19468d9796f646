package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	manualerrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/validator"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

type mockManualBookingRepository struct {
	createFunc    func(ctx context.Context, mb *model.ManualBooking) error
	findByIDFunc  func(ctx context.Context, id string) (*model.ManualBooking, error)
	setActiveFunc func(ctx context.Context, id string, active bool) error
	deleteFunc    func(ctx context.Context, id string) error
}

func (m *mockManualBookingRepository) Create(ctx context.Context, mb *model.ManualBooking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, mb)
	}
	mb.ID = "mb1"
	return nil
}

func (m *mockManualBookingRepository) FindByID(ctx context.Context, id string) (*model.ManualBooking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("%w: %s", manualerrors.ErrNotFound, id)
}

func (m *mockManualBookingRepository) FindActive(ctx context.Context, date string) ([]*model.ManualBooking, error) {
	return nil, nil
}

func (m *mockManualBookingRepository) ListByDate(ctx context.Context, date string) ([]*model.ManualBooking, error) {
	return []*model.ManualBooking{}, nil
}

func (m *mockManualBookingRepository) SetActive(ctx context.Context, id string, active bool) error {
	if m.setActiveFunc != nil {
		return m.setActiveFunc(ctx, id, active)
	}
	return nil
}

func (m *mockManualBookingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newTestService(repo *mockManualBookingRepository) ManualBookingService {
	log := logger.Discard()
	return NewManualBookingService(repo, validator.NewManualBookingValidator(log), &config.Config{Log: log})
}

func TestCreate(t *testing.T) {
	var stored *model.ManualBooking
	repo := &mockManualBookingRepository{
		createFunc: func(ctx context.Context, mb *model.ManualBooking) error {
			stored = mb
			mb.ID = "mb1"
			return nil
		},
	}

	mb := &model.ManualBooking{Date: " 2026-11-11 ", StartTime: "1:00 PM", EndTime: "15:00", Reason: " van service "}
	if err := newTestService(repo).Create(context.Background(), mb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored == nil {
		t.Fatal("expected block to be stored")
	}
	if stored.Date != "2026-11-11" || stored.StartTime != "13:00" || stored.EndTime != "15:00" {
		t.Errorf("expected normalized block, got %+v", stored)
	}
	if !stored.IsActive {
		t.Error("expected new block to be active")
	}
	if stored.Reason != "van service" {
		t.Errorf("expected trimmed reason, got %q", stored.Reason)
	}
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		mb   model.ManualBooking
	}{
		{"end before start", model.ManualBooking{Date: "2026-11-11", StartTime: "15:00", EndTime: "13:00"}},
		{"empty range", model.ManualBooking{Date: "2026-11-11", StartTime: "13:00", EndTime: "1:00 PM"}},
		{"bad time", model.ManualBooking{Date: "2026-11-11", StartTime: "noon", EndTime: "15:00"}},
		{"bad date", model.ManualBooking{Date: "tomorrow", StartTime: "13:00", EndTime: "15:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			repo := &mockManualBookingRepository{
				createFunc: func(ctx context.Context, mb *model.ManualBooking) error {
					called = true
					return nil
				},
			}

			err := newTestService(repo).Create(context.Background(), &tt.mb)
			if !apperrors.HasCode(err, apperrors.CodeValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
			if called {
				t.Error("expected nothing to be stored")
			}
		})
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	repo := &mockManualBookingRepository{
		createFunc: func(ctx context.Context, mb *model.ManualBooking) error {
			return errors.New("connection reset")
		},
	}

	err := newTestService(repo).Create(context.Background(), &model.ManualBooking{Date: "2026-11-11", StartTime: "13:00", EndTime: "15:00"})
	if !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestDeactivate(t *testing.T) {
	var gotActive *bool
	repo := &mockManualBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.ManualBooking, error) {
			return &model.ManualBooking{ID: id, Date: "2026-11-11", IsActive: true}, nil
		},
		setActiveFunc: func(ctx context.Context, id string, active bool) error {
			gotActive = &active
			return nil
		},
	}

	mb, err := newTestService(repo).Deactivate(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mb.IsActive {
		t.Error("expected block to be inactive")
	}
	if gotActive == nil || *gotActive {
		t.Error("expected SetActive(false)")
	}
}

func TestDeactivate_AlreadyInactive(t *testing.T) {
	repo := &mockManualBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.ManualBooking, error) {
			return &model.ManualBooking{ID: id, IsActive: false}, nil
		},
		setActiveFunc: func(ctx context.Context, id string, active bool) error {
			t.Error("SetActive should not be called")
			return nil
		},
	}

	if _, err := newTestService(repo).Deactivate(context.Background(), "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeactivate_NotFound(t *testing.T) {
	_, err := newTestService(&mockManualBookingRepository{}).Deactivate(context.Background(), "abc")
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := &mockManualBookingRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return fmt.Errorf("%w: %s", manualerrors.ErrInvalidID, id)
		},
	}
	err := newTestService(repo).Delete(context.Background(), "zzz")
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}

	if err := newTestService(&mockManualBookingRepository{}).Delete(context.Background(), ""); !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input for empty id, got %v", err)
	}
}

func TestListByDate_InvalidDate(t *testing.T) {
	_, err := newTestService(&mockManualBookingRepository{}).ListByDate(context.Background(), "11/11/2026")
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}
