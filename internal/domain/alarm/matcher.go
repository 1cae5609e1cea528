package alarm

import "time"

// Due reports whether the alarm should fire during the polling window
// (lastPoll, now]. It is pure: the caller owns all state changes.
//
// A scheduled alarm is due when its base time on the current day falls inside
// the window and the weekday matches; comparing against the window rather
// than the exact minute tolerates poll intervals coarser than a minute
// without ever matching the same instant twice. A snoozed alarm is due once
// now reaches its deferred trigger; snooze deadlines use "at or after"
// because a 5-minute deferral can be crossed between polls.
func Due(a *Alarm, lastPoll, now time.Time) bool {
	switch a.Status {
	case StatusScheduled:
		if now.Weekday() != a.Day {
			return false
		}

		target := a.Time.On(now)

		return target.After(lastPoll) && !target.After(now)
	case StatusSnoozed:
		return !now.Before(a.NextTrigger)
	default:
		// Fired alarms wait for the user; expired alarms never match.
		return false
	}
}
