package validator

import (
	"testing"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

func TestValidate(t *testing.T) {
	v := NewExceptionValidator(logger.Discard())

	tests := []struct {
		name       string
		exc        model.DateException
		wantError  bool
		wantRanges []model.TimeRange
	}{
		{
			name:       "closed without ranges",
			exc:        model.DateException{Date: "2026-12-25", Type: model.ExceptionClosed},
			wantRanges: []model.TimeRange{},
		},
		{
			name: "closed drops stray ranges",
			exc: model.DateException{Date: "2026-12-25", Type: model.ExceptionClosed,
				TimeRanges: []model.TimeRange{{Start: "09:00", End: "10:00"}}},
			wantRanges: []model.TimeRange{},
		},
		{
			name: "custom hours normalized",
			exc: model.DateException{Date: "2026-12-24", Type: model.ExceptionCustomHours, IsEnabled: true,
				TimeRanges: []model.TimeRange{{Start: "8:00 am", End: "2:00 PM"}}},
			wantRanges: []model.TimeRange{{Start: "08:00", End: "14:00"}},
		},
		{
			name:      "custom hours without ranges",
			exc:       model.DateException{Date: "2026-12-24", Type: model.ExceptionCustomHours, TimeRanges: []model.TimeRange{}},
			wantError: true,
		},
		{
			name: "blocked hours inverted range",
			exc: model.DateException{Date: "2026-12-24", Type: model.ExceptionBlockedHours,
				TimeRanges: []model.TimeRange{{Start: "14:00", End: "13:00"}}},
			wantError: true,
		},
		{
			name:      "bad date",
			exc:       model.DateException{Date: "24/12/2026", Type: model.ExceptionClosed},
			wantError: true,
		},
		{
			name:      "unknown type",
			exc:       model.DateException{Date: "2026-12-24", Type: "holiday"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exc := tt.exc
			err := v.Validate(&exc)
			if (err != nil) != tt.wantError {
				t.Fatalf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError {
				return
			}
			if len(exc.TimeRanges) != len(tt.wantRanges) {
				t.Fatalf("ranges = %+v, want %+v", exc.TimeRanges, tt.wantRanges)
			}
			for i := range exc.TimeRanges {
				if exc.TimeRanges[i] != tt.wantRanges[i] {
					t.Errorf("range %d = %+v, want %+v", i, exc.TimeRanges[i], tt.wantRanges[i])
				}
			}
		})
	}
}
