// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"
)

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// ValidateTimeOfDay checks for a zero-padded 24h "HH:MM" string. The reminder
// engine matches schedules by string equality against the formatted local
// time, so anything looser than this would never fire.
func ValidateTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}

// ValidateWeekday checks for a lowercase full weekday name
func ValidateWeekday(s string) bool {
	return weekdayNames[s]
}

// NormalizeEmail folds an address to the canonical stored form. Registration
// and login must agree on this, or a mixed-case signup can never authenticate
// and the same address can register twice past the duplicate check.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateTimezone checks that an identifier resolves in the tz database
func ValidateTimezone(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.LoadLocation(s)
	return err == nil
}
