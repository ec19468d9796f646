package validation

import (
	"testing"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

func TestNormalizeRanges(t *testing.T) {
	got, errs := NormalizeRanges("time_ranges", []model.TimeRange{
		{Start: "8:00 am", End: "12:00 PM"},
		{Start: "13:00", End: "5:30 pm"},
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := []model.TimeRange{{Start: "08:00", End: "12:00"}, {Start: "13:00", End: "17:30"}}
	if len(got) != len(want) {
		t.Fatalf("expected %d ranges, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNormalizeRanges_ReportsEveryFailure(t *testing.T) {
	got, errs := NormalizeRanges("time_ranges", []model.TimeRange{
		{Start: "09:00", End: "17:00"},
		{Start: "noon", End: "17:00"},
		{Start: "09:00", End: "25:00"},
		{Start: "17:00", End: "09:00"},
		{Start: "10:00", End: "10:00"},
	})
	if got != nil {
		t.Errorf("expected nil ranges on failure, got %v", got)
	}

	details := errs.Details()
	for _, field := range []string{
		"time_ranges[1].start",
		"time_ranges[2].end",
		"time_ranges[3]",
		"time_ranges[4]",
	} {
		if _, ok := details[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, details)
		}
	}
	if len(errs) != 4 {
		t.Errorf("expected 4 errors, got %d", len(errs))
	}
}

func TestNormalizeRanges_Empty(t *testing.T) {
	got, errs := NormalizeRanges("time_ranges", nil)
	if errs != nil || got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v %v", got, errs)
	}
}
