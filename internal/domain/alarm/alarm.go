package alarm

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the position of an alarm within its fire/snooze lifecycle.
type Status int

const (
	// StatusScheduled means the alarm is waiting for its base time and weekday.
	StatusScheduled Status = iota
	// StatusFired means the alarm has gone off and is waiting for the user
	// to snooze or dismiss it.
	StatusFired
	// StatusSnoozed means the alarm was snoozed and is waiting for its
	// deferred trigger time.
	StatusSnoozed
	// StatusExpired is terminal: the alarm no longer participates in matching.
	StatusExpired
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusFired:
		return "fired"
	case StatusSnoozed:
		return "snoozed"
	case StatusExpired:
		return "expired"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

const (
	// MaxSnoozes is the number of times a single alarm may be snoozed.
	MaxSnoozes = 3
	// SnoozeInterval is how far each snooze defers the next trigger.
	SnoozeInterval = 5 * time.Minute
)

// Key is the user-facing address of an alarm: its time of day plus weekday.
// The registry treats it as a secondary unique key next to the internal ID.
type Key struct {
	// Time is the alarm's base trigger time.
	Time TimeOfDay
	// Day is the weekday the alarm is active on.
	Day time.Weekday
}

// String renders the key the way users type it, e.g. "07:00 Monday".
func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.Time, k.Day)
}

// Alarm is one registered alarm: immutable identity plus mutable
// scheduling and snooze state.
type Alarm struct {
	// ID uniquely identifies the alarm for its lifetime. Never reused.
	ID uuid.UUID
	// Time is the base trigger time of day.
	Time TimeOfDay
	// Day is the weekday the alarm is active on.
	Day time.Weekday
	// Status is the current lifecycle status.
	Status Status
	// SnoozeCount is the number of snoozes already consumed, 0..MaxSnoozes.
	SnoozeCount int
	// FiredAt is when the alarm last fired. Zero until the first fire.
	FiredAt time.Time
	// NextTrigger is the snooze-deferred trigger instant. Zero unless snoozed.
	NextTrigger time.Time
}

// New creates a scheduled alarm with a fresh identity.
func New(t TimeOfDay, day time.Weekday) *Alarm {
	return &Alarm{
		ID:     uuid.New(),
		Time:   t,
		Day:    day,
		Status: StatusScheduled,
	}
}

// Key returns the alarm's user-facing (time, weekday) address.
func (a *Alarm) Key() Key {
	return Key{Time: a.Time, Day: a.Day}
}

// Active reports whether the alarm still participates in matching.
func (a *Alarm) Active() bool {
	return a.Status != StatusExpired
}

// Clone returns a copy of the alarm to avoid leaking internal references.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// Fire transitions a scheduled or snoozed alarm to the fired status,
// recording the fire instant as the base for a subsequent snooze.
func (a *Alarm) Fire(now time.Time) error {
	if a.Status != StatusScheduled && a.Status != StatusSnoozed {
		return fmt.Errorf("%w: cannot fire %s alarm", ErrInvalidState, a.Status)
	}

	a.Status = StatusFired
	a.FiredAt = now

	return nil
}

// Snooze transitions a fired alarm to the snoozed status and returns the
// deferred trigger time: the fire instant plus SnoozeInterval, never earlier
// than the snooze itself.
func (a *Alarm) Snooze(now time.Time) (time.Time, error) {
	// The limit check comes first so a late snooze attempt on an alarm that
	// already exhausted its snoozes reports the limit, not the status.
	if a.SnoozeCount >= MaxSnoozes {
		return time.Time{}, fmt.Errorf("%w: alarm was already snoozed %d times", ErrSnoozeLimitExceeded, a.SnoozeCount)
	}

	if a.Status != StatusFired {
		return time.Time{}, fmt.Errorf("%w: cannot snooze %s alarm", ErrInvalidState, a.Status)
	}

	next := a.FiredAt.Add(SnoozeInterval)
	if next.Before(now) {
		next = now
	}

	a.Status = StatusSnoozed
	a.SnoozeCount++
	a.NextTrigger = next

	return next, nil
}

// Expire moves the alarm to the terminal expired status.
func (a *Alarm) Expire() error {
	if a.Status == StatusExpired {
		return fmt.Errorf("%w: alarm is already expired", ErrInvalidState)
	}

	a.Status = StatusExpired
	a.NextTrigger = time.Time{}

	return nil
}
