package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// monday returns a Monday instant at the given clock time in UTC.
// 2024-01-01 is a Monday.
func monday(hour, minute, second int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, second, 0, time.UTC)
}

// TestDueScheduled covers the (lastPoll, now] window semantics for alarms
// waiting on their base time.
func TestDueScheduled(t *testing.T) {
	t.Parallel()

	a := New(TimeOfDay{Hour: 7}, time.Monday)

	// Exact poll on the target minute.
	require.True(t, Due(a, monday(6, 59, 55), monday(7, 0, 0)))

	// Target crossed between two coarse polls.
	require.True(t, Due(a, monday(6, 59, 30), monday(7, 0, 25)))

	// Not yet reached.
	require.False(t, Due(a, monday(6, 58, 0), monday(6, 59, 0)))

	// Already fired for this window on the previous poll: the target is no
	// longer inside (lastPoll, now], so the same instant never matches twice.
	require.False(t, Due(a, monday(7, 0, 0), monday(7, 0, 30)))

	// Wrong weekday.
	tuesday := monday(7, 0, 0).AddDate(0, 0, 1)
	require.False(t, Due(a, tuesday.Add(-time.Minute), tuesday))

	// An alarm registered after today's target must not fire retroactively.
	require.False(t, Due(a, monday(8, 0, 0), monday(8, 0, 30)))
}

// TestDueSnoozed verifies that snooze deadlines match at or after the
// deferred trigger, regardless of weekday.
func TestDueSnoozed(t *testing.T) {
	t.Parallel()

	a := New(TimeOfDay{Hour: 7}, time.Monday)
	require.NoError(t, a.Fire(monday(7, 0, 0)))

	next, err := a.Snooze(monday(7, 0, 10))
	require.NoError(t, err)

	// Before the deadline.
	require.False(t, Due(a, monday(7, 3, 0), monday(7, 4, 0)))

	// Exactly at the deadline.
	require.True(t, Due(a, next.Add(-30*time.Second), next))

	// Deadline crossed between polls.
	require.True(t, Due(a, next.Add(-time.Second), next.Add(20*time.Second)))
}

// TestDueInertStatuses verifies that fired and expired alarms never match.
func TestDueInertStatuses(t *testing.T) {
	t.Parallel()

	fired := New(TimeOfDay{Hour: 7}, time.Monday)
	require.NoError(t, fired.Fire(monday(7, 0, 0)))
	require.False(t, Due(fired, monday(6, 59, 0), monday(7, 0, 0)))

	expired := New(TimeOfDay{Hour: 7}, time.Monday)
	require.NoError(t, expired.Expire())
	require.False(t, Due(expired, monday(6, 59, 0), monday(7, 0, 0)))
}
