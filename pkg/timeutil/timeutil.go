// Package timeutil converts between the textual time-of-day forms accepted by
// the booking system and minutes since midnight.
//
// Every time string read from a request or from storage goes through
// NormalizeTimeString before it is trusted. Two forms are accepted: strict
// 24-hour "HH:MM" and 12-hour "H:MM AM" / "HH:MM pm".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	MinutesPerDay = 24 * 60
	MaxMinute     = MinutesPerDay - 1

	TimeLayout = "15:04"
	DateLayout = "2006-01-02"
)

var (
	reTime24 = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)
	reTime12 = regexp.MustCompile(`^(?i)(\d{1,2}):([0-5][0-9])\s*(am|pm)$`)
)

// NormalizeTimeString returns s in canonical 24-hour "HH:MM" form.
// ok is false when s is neither a strict 24-hour time nor a 12-hour time with
// an AM/PM marker.
func NormalizeTimeString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if reTime24.MatchString(s) {
		return s, true
	}

	m := reTime12.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil || hours < 1 || hours > 12 {
		return "", false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return "", false
	}

	switch strings.ToLower(m[3]) {
	case "am":
		if hours == 12 {
			hours = 0
		}
	case "pm":
		if hours != 12 {
			hours += 12
		}
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), true
}

// TimeToMinutes returns the minutes since midnight for any time string
// NormalizeTimeString accepts.
func TimeToMinutes(s string) (int, bool) {
	normalized, ok := NormalizeTimeString(s)
	if !ok {
		return 0, false
	}
	hours, _ := strconv.Atoi(normalized[:2])
	minutes, _ := strconv.Atoi(normalized[3:])
	return hours*60 + minutes, true
}

// MinutesToTime formats m as "HH:MM". Values outside [0, 1439] are clamped.
func MinutesToTime(m int) string {
	m = ClampMinutes(m)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func ClampMinutes(m int) int {
	return min(max(m, 0), MaxMinute)
}

// Ticks returns every minute-of-day from 00:00 stepped by interval.
func Ticks(interval time.Duration) []int {
	step := int(interval / time.Minute)
	if step <= 0 {
		step = 30
	}
	ticks := make([]int, 0, MinutesPerDay/step)
	for m := 0; m < MinutesPerDay; m += step {
		ticks = append(ticks, m)
	}
	return ticks
}

// ParseRange normalizes both ends of a range into minutes since midnight.
func ParseRange(start, end string) (int, int, bool) {
	s, ok := TimeToMinutes(start)
	if !ok {
		return 0, 0, false
	}
	e, ok := TimeToMinutes(end)
	if !ok {
		return 0, 0, false
	}
	return s, e, true
}

// ParseDate parses a "YYYY-MM-DD" wall-clock date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AtMinute returns the instant m minutes after midnight of day's calendar date.
func AtMinute(day time.Time, m int) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, day.Location())
}
