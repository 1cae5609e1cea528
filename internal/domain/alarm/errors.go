package alarm

import "errors"

var (
	// ErrDuplicateAlarm is returned when an alarm already exists at the same time and weekday.
	ErrDuplicateAlarm = errors.New("alarm already exists at this time and day")
	// ErrAlarmNotFound is returned when the requested alarm does not exist.
	ErrAlarmNotFound = errors.New("alarm not found")
	// ErrSnoozeLimitExceeded is returned when an alarm has already been snoozed the maximum number of times.
	ErrSnoozeLimitExceeded = errors.New("snooze limit exceeded")
	// ErrInvalidState is returned when a transition is requested that the alarm's current status forbids.
	ErrInvalidState = errors.New("invalid alarm state for operation")
)
