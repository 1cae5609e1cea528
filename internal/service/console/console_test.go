package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/argha-paul/alarm-clock/internal/domain/alarm"
	"github.com/argha-paul/alarm-clock/internal/repository/registry"
	"github.com/argha-paul/alarm-clock/internal/service/clock"
	"github.com/argha-paul/alarm-clock/internal/testfixtures"
)

// mondaySeven is 2024-01-01 07:00 UTC, a Monday.
var mondaySeven = time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC)

// newTestConsole builds a console over a fresh registry with a fake clock and
// a capture buffer for output.
func newTestConsole(t *testing.T) (*console, *registry.Registry, *testfixtures.Clock, *bytes.Buffer) {
	t.Helper()

	reg := registry.New()
	fakeClock := testfixtures.NewClock(mondaySeven)
	out := new(bytes.Buffer)

	c := &console{
		service: clock.NewService(reg, fakeClock.NowFunc()),
		out:     out,
		now:     fakeClock.NowFunc(),
	}

	return c, reg, fakeClock, out
}

// TestExecuteAddListDelete drives the primary user flow through raw command lines.
func TestExecuteAddListDelete(t *testing.T) {
	t.Parallel()

	c, _, _, out := newTestConsole(t)
	ctx := context.Background()

	require.False(t, c.execute(ctx, "add 07:00 monday"))
	require.Contains(t, out.String(), "Alarm set for 07:00 on Monday.")

	out.Reset()
	require.False(t, c.execute(ctx, "add 07:00 MON"))
	require.Contains(t, out.String(), "already exists")

	out.Reset()
	require.False(t, c.execute(ctx, "list"))
	require.Contains(t, out.String(), "07:00 Monday")
	require.Contains(t, out.String(), "scheduled")

	out.Reset()
	require.False(t, c.execute(ctx, "delete 07:00 monday"))
	require.Contains(t, out.String(), "Deleted alarm 07:00 Monday.")

	out.Reset()
	require.False(t, c.execute(ctx, "delete 07:00 monday"))
	require.Contains(t, out.String(), "No such alarm.")

	out.Reset()
	require.False(t, c.execute(ctx, "list"))
	require.Contains(t, out.String(), "No alarms set.")
}

// TestExecuteSnoozeAndDismiss exercises the ringing-alarm commands, including
// the rejection paths.
func TestExecuteSnoozeAndDismiss(t *testing.T) {
	t.Parallel()

	c, reg, _, out := newTestConsole(t)
	ctx := context.Background()

	require.False(t, c.execute(ctx, "add 07:00 monday"))

	out.Reset()
	require.False(t, c.execute(ctx, "snooze 07:00 monday"))
	require.Contains(t, out.String(), "not ringing")

	// Ring it the way the scheduler would.
	created, err := reg.Find(domain.TimeOfDay{Hour: 7}, time.Monday)
	require.NoError(t, err)
	_, err = reg.Update(created.ID, func(a *domain.Alarm) error {
		return a.Fire(mondaySeven)
	})
	require.NoError(t, err)

	out.Reset()
	require.False(t, c.execute(ctx, "snooze 07:00 monday"))
	require.Contains(t, out.String(), "Snoozed until 07:05.")

	out.Reset()
	require.False(t, c.execute(ctx, "dismiss 07:00 monday"))
	require.Contains(t, out.String(), "not ringing")

	// Ring again and dismiss for good.
	_, err = reg.Update(created.ID, func(a *domain.Alarm) error {
		return a.Fire(mondaySeven.Add(5 * time.Minute))
	})
	require.NoError(t, err)

	out.Reset()
	require.False(t, c.execute(ctx, "dismiss 07:00 monday"))
	require.Contains(t, out.String(), "dismissed")

	out.Reset()
	require.False(t, c.execute(ctx, "list"))
	require.Contains(t, out.String(), "expired")
	require.Contains(t, out.String(), "(snoozed 1/3)")
}

// TestExecuteParsingAndMisc covers malformed input, time, help, quit and
// unknown verbs.
func TestExecuteParsingAndMisc(t *testing.T) {
	t.Parallel()

	c, _, _, out := newTestConsole(t)
	ctx := context.Background()

	require.False(t, c.execute(ctx, ""))
	require.False(t, c.execute(ctx, "   "))

	require.False(t, c.execute(ctx, "add 25:00 monday"))
	require.Contains(t, out.String(), "HH:MM")

	out.Reset()
	require.False(t, c.execute(ctx, "add 07:00 funday"))
	require.Contains(t, out.String(), "unknown weekday")

	out.Reset()
	require.False(t, c.execute(ctx, "add 07:00"))
	require.Contains(t, out.String(), "expected a time and a weekday")

	out.Reset()
	require.False(t, c.execute(ctx, "time"))
	require.Contains(t, out.String(), "07:00:00 on Monday")

	out.Reset()
	require.False(t, c.execute(ctx, "help"))
	require.Contains(t, out.String(), "snooze <HH:MM> <weekday>")

	out.Reset()
	require.False(t, c.execute(ctx, "blorp"))
	require.Contains(t, out.String(), "Unknown command")

	require.True(t, c.execute(ctx, "quit"))
	require.True(t, c.execute(ctx, "exit"))
}

// TestRunQuitsOnCommand drives Run end to end over an in-memory pipe.
func TestRunQuitsOnCommand(t *testing.T) {
	t.Parallel()

	input := strings.NewReader("add 07:00 monday\nlist\nquit\n")
	out := new(bytes.Buffer)

	err := Run(context.Background(), &Options{
		ConfigPath: "does-not-exist.yaml",
		Input:      input,
		Output:     out,
	})
	require.NoError(t, err)

	require.Contains(t, out.String(), "Alarm clock started.")
	require.Contains(t, out.String(), "Alarm set for 07:00 on Monday.")
	require.Contains(t, out.String(), "Goodbye.")
}

// TestRunStopsOnEOF verifies the loop ends when input is exhausted.
func TestRunStopsOnEOF(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		ConfigPath: "does-not-exist.yaml",
		Input:      strings.NewReader("list\n"),
		Output:     new(bytes.Buffer),
	})
	require.NoError(t, err)
}
