package utils

import "testing"

func TestValidateTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "08:00", "12:30", "23:59"}
	for _, s := range valid {
		if !ValidateTimeOfDay(s) {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []string{"24:00", "8:00", "08:60", "0800", "08:00:00", "", "noon"}
	for _, s := range invalid {
		if ValidateTimeOfDay(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestValidateWeekday(t *testing.T) {
	if !ValidateWeekday("monday") || !ValidateWeekday("sunday") {
		t.Error("lowercase weekday names should be valid")
	}
	for _, s := range []string{"Monday", "mon", "", "funday"} {
		if ValidateWeekday(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	// A signup as "Alice@Example.com" has to find the same row at login time.
	cases := map[string]string{
		"Alice@Example.com":    "alice@example.com",
		"  bob@example.com \t": "bob@example.com",
		"carol@example.com":    "carol@example.com",
		" DAVE@EXAMPLE.COM ":   "dave@example.com",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("America/Chicago") || !ValidateTimezone("UTC") {
		t.Error("known IANA identifiers should be valid")
	}
	for _, s := range []string{"Mars/Olympus", ""} {
		if ValidateTimezone(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}
