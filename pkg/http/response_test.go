package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/TPetrica/elite-transportation-backend-sub000/pkg/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/validation"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NotFound("Booking"), http.StatusNotFound, apperrors.CodeNotFound},
		{"conflict", apperrors.Conflict("slot taken"), http.StatusConflict, apperrors.CodeConflict},
		{"unavailable", apperrors.Unavailable("availability store", errors.New("timeout")), http.StatusServiceUnavailable, apperrors.CodeUnavailable},
		{"validation errors", validation.ValidationErrors{{Field: "Date", Message: "Date is required"}}, http.StatusUnprocessableEntity, apperrors.CodeValidation},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			if err := WriteError(rec, tt.err); err != nil {
				t.Fatalf("WriteError returned %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
		})
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	_ = WriteError(rec, apperrors.Internal("mongo exploded at shard 3", errors.New("x")))

	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "Internal server error" {
		t.Errorf("internal message leaked: %q", resp.Error)
	}
}

func TestExtractLimitOffset(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?limit=500&offset=-4", nil)
	limit, offset, err := ExtractLimitOffset(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != MaxPaginationLimit || offset != 0 {
		t.Errorf("got limit=%d offset=%d", limit, offset)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/v1/bookings?limit=abc", nil)
	if _, _, err := ExtractLimitOffset(r); err == nil {
		t.Error("expected error for non-numeric limit")
	}
}
