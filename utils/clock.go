// utils/clock.go
package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownTimezone is returned when an identifier is not in the tz database.
var ErrUnknownTimezone = errors.New("unknown timezone")

// LocalClock converts a UTC instant into the "HH:MM" wall-clock string and
// lowercase full weekday name for the given IANA timezone identifier.
// The offset is recomputed from the instant on every call, so DST transitions
// are honored without any cached offset going stale.
func LocalClock(utc time.Time, timezone string) (string, string, error) {
	if timezone == "" {
		return "", "", fmt.Errorf("%w: empty identifier", ErrUnknownTimezone)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}

	local := utc.In(loc)
	return local.Format("15:04"), strings.ToLower(local.Weekday().String()), nil
}
