package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

type mockAvailabilityService struct {
	getAvailableSlotsFunc func(ctx context.Context, date string, excludeID string) (*model.AvailabilityResult, error)
	isTimeAvailableFunc   func(ctx context.Context, date, at, excludeID string) (bool, error)
	getRangeFunc          func(ctx context.Context, from, to string) ([]*model.AvailabilityResult, error)
}

func (m *mockAvailabilityService) GetAvailableSlots(ctx context.Context, date string, excludeID string) (*model.AvailabilityResult, error) {
	if m.getAvailableSlotsFunc != nil {
		return m.getAvailableSlotsFunc(ctx, date, excludeID)
	}
	return &model.AvailabilityResult{Date: date, Slots: []string{}}, nil
}

func (m *mockAvailabilityService) IsTimeAvailable(ctx context.Context, date, at, excludeID string) (bool, error) {
	if m.isTimeAvailableFunc != nil {
		return m.isTimeAvailableFunc(ctx, date, at, excludeID)
	}
	return false, nil
}

func (m *mockAvailabilityService) GetAvailableSlotsRange(ctx context.Context, from, to string) ([]*model.AvailabilityResult, error) {
	if m.getRangeFunc != nil {
		return m.getRangeFunc(ctx, from, to)
	}
	return nil, nil
}

func newTestRouter(svc *mockAvailabilityService) *httprouter.Router {
	router := httprouter.New()
	NewAvailabilityHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestGetSlots(t *testing.T) {
	var gotDate, gotExclude string
	svc := &mockAvailabilityService{
		getAvailableSlotsFunc: func(ctx context.Context, date, excludeID string) (*model.AvailabilityResult, error) {
			gotDate, gotExclude = date, excludeID
			return &model.AvailabilityResult{Date: date, Slots: []string{"09:00", "09:30"}, Reason: model.ReasonOpen}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=2026-11-11&exclude_booking_id=b1", nil)
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotDate != "2026-11-11" || gotExclude != "b1" {
		t.Errorf("service received date=%q exclude=%q", gotDate, gotExclude)
	}

	var body struct {
		Data model.AvailabilityResult `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Slots) != 2 || body.Data.Slots[0] != "09:00" {
		t.Errorf("unexpected slots %v", body.Data.Slots)
	}
}

func TestGetSlots_MissingDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots", nil)
	w := httptest.NewRecorder()
	newTestRouter(&mockAvailabilityService{}).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetSlots_StoreFailureIs503(t *testing.T) {
	svc := &mockAvailabilityService{
		getAvailableSlotsFunc: func(ctx context.Context, date, excludeID string) (*model.AvailabilityResult, error) {
			return nil, apperrors.Unavailable("availability store", errors.New("connection refused"))
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=2026-11-11", nil)
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		available  bool
		err        error
		wantStatus int
	}{
		{name: "available", query: "?date=2026-11-11&time=14:00", available: true, wantStatus: http.StatusOK},
		{name: "unavailable", query: "?date=2026-11-11&time=14:00", available: false, wantStatus: http.StatusOK},
		{name: "missing time", query: "?date=2026-11-11", wantStatus: http.StatusBadRequest},
		{name: "bad date", query: "?date=nope&time=14:00", err: apperrors.InvalidInput("invalid date"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAvailabilityService{
				isTimeAvailableFunc: func(ctx context.Context, date, at, excludeID string) (bool, error) {
					return tt.available, tt.err
				},
			}
			req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/check"+tt.query, nil)
			w := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body struct {
				Data CheckResponse `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data.Available != tt.available {
				t.Errorf("available = %v, want %v", body.Data.Available, tt.available)
			}
		})
	}
}

func TestGetRange(t *testing.T) {
	svc := &mockAvailabilityService{
		getRangeFunc: func(ctx context.Context, from, to string) ([]*model.AvailabilityResult, error) {
			return []*model.AvailabilityResult{{Date: from}, {Date: to}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/range?from=2026-11-11&to=2026-11-12", nil)
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/availability/range?from=2026-11-11", nil)
	w = httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing 'to' should be 400, got %d", w.Code)
	}
}
