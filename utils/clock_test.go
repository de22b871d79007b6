package utils

import (
	"errors"
	"testing"
	"time"
)

func TestLocalClockWinterOffset(t *testing.T) {
	// 2026-01-05 is a Monday; Chicago is on CST (UTC-6) in January.
	utc := time.Date(2026, time.January, 5, 14, 0, 0, 0, time.UTC)

	hhmm, weekday, err := LocalClock(utc, "America/Chicago")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hhmm != "08:00" {
		t.Errorf("expected 08:00, got %s", hhmm)
	}
	if weekday != "monday" {
		t.Errorf("expected monday, got %s", weekday)
	}
}

func TestLocalClockSummerOffset(t *testing.T) {
	// Same wall-clock time in July requires a different UTC instant (CDT, UTC-5).
	utc := time.Date(2026, time.July, 6, 13, 0, 0, 0, time.UTC)

	hhmm, weekday, err := LocalClock(utc, "America/Chicago")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hhmm != "08:00" {
		t.Errorf("expected 08:00, got %s", hhmm)
	}
	if weekday != "monday" {
		t.Errorf("expected monday, got %s", weekday)
	}
}

func TestLocalClockCrossesDateLine(t *testing.T) {
	// Late Monday UTC is already Tuesday morning in Tokyo.
	utc := time.Date(2026, time.January, 5, 23, 30, 0, 0, time.UTC)

	hhmm, weekday, err := LocalClock(utc, "Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hhmm != "08:30" {
		t.Errorf("expected 08:30, got %s", hhmm)
	}
	if weekday != "tuesday" {
		t.Errorf("expected tuesday, got %s", weekday)
	}
}

func TestLocalClockUnknownTimezone(t *testing.T) {
	utc := time.Now().UTC()

	for _, zone := range []string{"Mars/Olympus", "Not A Zone", ""} {
		_, _, err := LocalClock(utc, zone)
		if !errors.Is(err, ErrUnknownTimezone) {
			t.Errorf("zone %q: expected ErrUnknownTimezone, got %v", zone, err)
		}
	}
}
