package alarm

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time at minute resolution, e.g. 07:00.
type TimeOfDay struct {
	// Hour is the hour of the day in 24-hour form, 0..23.
	Hour int
	// Minute is the minute within the hour, 0..59.
	Minute int
}

var (
	// errInvalidTimeFormat is returned when a time string is not of the form HH:MM.
	errInvalidTimeFormat = errors.New("time must be in HH:MM format")
	// errUnknownWeekday is returned when a weekday name is not recognized.
	errUnknownWeekday = errors.New("unknown weekday")
)

// ParseTimeOfDay parses a string of the form "HH:MM" (24-hour clock).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int

	n, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &hour, &minute)
	if err != nil || n != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", errInvalidTimeFormat, s)
	}

	t := TimeOfDay{Hour: hour, Minute: minute}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}

	return t, nil
}

// Validate checks that the time fits on a 24-hour clock.
func (t TimeOfDay) Validate() error {
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("%w: %02d:%02d is out of range", errInvalidTimeFormat, t.Hour, t.Minute)
	}

	return nil
}

// String renders the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant at this time of day on the same calendar date as day,
// in day's location, truncated to the minute.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}

	return t.Minute < other.Minute
}

// ParseWeekday parses a weekday name, case-insensitively.
// Full names ("monday") and three-letter abbreviations ("mon") are accepted.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}

	return time.Sunday, fmt.Errorf("%w: %q", errUnknownWeekday, s)
}
