package timeutil

import (
	"testing"
	"time"
)

func TestNormalizeTimeString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "24h unchanged", input: "09:30", want: "09:30", wantOK: true},
		{name: "24h midnight", input: "00:00", want: "00:00", wantOK: true},
		{name: "24h last minute", input: "23:59", want: "23:59", wantOK: true},
		{name: "surrounding spaces", input: "  14:00 ", want: "14:00", wantOK: true},
		{name: "12h pm", input: "2:30 PM", want: "14:30", wantOK: true},
		{name: "12h pm lowercase two digit", input: "11:05 pm", want: "23:05", wantOK: true},
		{name: "12h am", input: "9:00 AM", want: "09:00", wantOK: true},
		{name: "12 am is midnight", input: "12:15 AM", want: "00:15", wantOK: true},
		{name: "12 pm is noon", input: "12:00 PM", want: "12:00", wantOK: true},
		{name: "12h without space", input: "7:45pm", want: "19:45", wantOK: true},
		{name: "mixed case marker", input: "7:45 Pm", want: "19:45", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "noon", wantOK: false},
		{name: "dash separator", input: "09-00", wantOK: false},
		{name: "hour out of range", input: "24:00", wantOK: false},
		{name: "minute out of range", input: "09:60", wantOK: false},
		{name: "single digit hour without marker", input: "9:00", wantOK: false},
		{name: "12h hour out of range", input: "13:00 PM", wantOK: false},
		{name: "12h hour zero", input: "0:30 AM", wantOK: false},
		{name: "seconds not accepted", input: "09:00:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTimeString(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeTimeString(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("NormalizeTimeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTimeString_Idempotent(t *testing.T) {
	inputs := []string{"00:00", "9:15 am", "12:00 AM", "12:59 pm", "23:30", "6:05PM"}
	for _, in := range inputs {
		once, ok := NormalizeTimeString(in)
		if !ok {
			t.Fatalf("expected %q to normalize", in)
		}
		twice, ok := NormalizeTimeString(once)
		if !ok || twice != once {
			t.Errorf("normalizing %q twice gave %q, want %q", in, twice, once)
		}
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	for m := 0; m <= MaxMinute; m++ {
		got, ok := TimeToMinutes(MinutesToTime(m))
		if !ok || got != m {
			t.Fatalf("round trip for %d gave %d (ok=%v)", m, got, ok)
		}
	}
}

func TestMinutesToTime_Clamps(t *testing.T) {
	if got := MinutesToTime(-15); got != "00:00" {
		t.Errorf("MinutesToTime(-15) = %q, want 00:00", got)
	}
	if got := MinutesToTime(2000); got != "23:59" {
		t.Errorf("MinutesToTime(2000) = %q, want 23:59", got)
	}
}

func TestTimeToMinutes_TwelveHour(t *testing.T) {
	got, ok := TimeToMinutes("1:30 PM")
	if !ok || got != 13*60+30 {
		t.Errorf("TimeToMinutes(1:30 PM) = %d, %v", got, ok)
	}
	if _, ok := TimeToMinutes("bogus"); ok {
		t.Error("expected bogus to fail")
	}
}

func TestTicks(t *testing.T) {
	ticks := Ticks(30 * time.Minute)
	if len(ticks) != 48 {
		t.Fatalf("expected 48 ticks, got %d", len(ticks))
	}
	if ticks[0] != 0 || ticks[47] != 23*60+30 {
		t.Errorf("unexpected bounds %d..%d", ticks[0], ticks[47])
	}
}

func TestParseDate(t *testing.T) {
	loc := time.UTC
	d, err := ParseDate("2026-03-04", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Weekday() != time.Wednesday {
		t.Errorf("expected Wednesday, got %s", d.Weekday())
	}
	if _, err := ParseDate("03/04/2026", loc); err == nil {
		t.Error("expected error for wrong layout")
	}
	if !AtMinute(d, 90).Equal(time.Date(2026, 3, 4, 1, 30, 0, 0, loc)) {
		t.Error("AtMinute returned wrong instant")
	}
}
