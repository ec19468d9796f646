package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

// Mock service for testing
type mockScheduleService struct {
	updateFunc func(ctx context.Context, day int, updates *model.ScheduleUpdate) (*model.WeekdaySchedule, error)
}

func (m *mockScheduleService) GetAll(ctx context.Context) ([]*model.WeekdaySchedule, error) {
	return []*model.WeekdaySchedule{}, nil
}

func (m *mockScheduleService) GetByDay(ctx context.Context, day int) (*model.WeekdaySchedule, error) {
	return &model.WeekdaySchedule{DayOfWeek: day}, nil
}

func (m *mockScheduleService) UpdateSchedule(ctx context.Context, day int, updates *model.ScheduleUpdate) (*model.WeekdaySchedule, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, day, updates)
	}
	return &model.WeekdaySchedule{DayOfWeek: day}, nil
}

func (m *mockScheduleService) ResetSchedules(ctx context.Context) ([]*model.WeekdaySchedule, error) {
	return nil, nil
}

func TestUpdate(t *testing.T) {
	var receivedDay int
	var receivedRanges int
	svc := &mockScheduleService{
		updateFunc: func(ctx context.Context, day int, updates *model.ScheduleUpdate) (*model.WeekdaySchedule, error) {
			receivedDay = day
			if updates.TimeRanges != nil {
				receivedRanges = len(*updates.TimeRanges)
			}
			if day == 6 {
				return nil, apperrors.Validation("Invalid time ranges", nil)
			}
			return &model.WeekdaySchedule{DayOfWeek: day}, nil
		},
	}

	router := httprouter.New()
	NewScheduleHandler(svc, logger.Discard()).RegisterRoutes(router)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"valid", "/api/v1/schedules/day/3", `{"time_ranges":[{"start":"09:00","end":"17:00"}]}`, http.StatusOK},
		{"non numeric day", "/api/v1/schedules/day/wed", `{}`, http.StatusBadRequest},
		{"malformed body", "/api/v1/schedules/day/3", `{"time_ranges":`, http.StatusBadRequest},
		{"service validation", "/api/v1/schedules/day/6", `{"time_ranges":[{"start":"17:00","end":"09:00"}]}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}

	if receivedDay != 6 || receivedRanges != 1 {
		t.Errorf("service received day=%d ranges=%d", receivedDay, receivedRanges)
	}
}
