package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	domain "github.com/argha-paul/alarm-clock/internal/domain/alarm"
	"github.com/argha-paul/alarm-clock/internal/service/clock"
)

// console evaluates one command line at a time against the lifecycle service
// and renders the outcome.
type console struct {
	// service handles the alarm lifecycle operations.
	service *clock.Service
	// out is where results and errors are rendered.
	out io.Writer
	// now is the time source for the `time` command, injectable for tests.
	now func() time.Time
}

const helpText = `Commands:
  add <HH:MM> <weekday>      register an alarm, e.g. add 07:00 monday
  delete <HH:MM> <weekday>   remove an alarm
  snooze <HH:MM> <weekday>   defer a ringing alarm by 5 minutes (max 3 times)
  dismiss <HH:MM> <weekday>  silence a ringing alarm for good
  list                       show all alarms
  time                       show the current time
  help                       show this help
  quit                       exit`

// execute runs a single command line. It reports whether the user asked to quit.
func (c *console) execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "add":
		c.add(ctx, args)
	case "delete", "del":
		c.delete(ctx, args)
	case "snooze":
		c.snooze(ctx, args)
	case "dismiss":
		c.dismiss(ctx, args)
	case "list", "ls":
		c.list(ctx)
	case "time":
		now := c.now()
		fmt.Fprintf(c.out, "It is %s on %s.\n", now.Format("15:04:05"), now.Weekday())
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type 'help' for commands.\n", verb)
	}

	return false
}

// parseKey parses the "<HH:MM> <weekday>" argument pair shared by every
// alarm-addressing command.
func parseKey(args []string) (domain.TimeOfDay, time.Weekday, error) {
	if len(args) != 2 {
		return domain.TimeOfDay{}, time.Sunday,
			errors.New("expected a time and a weekday, e.g. 07:00 monday")
	}

	tod, err := domain.ParseTimeOfDay(args[0])
	if err != nil {
		return domain.TimeOfDay{}, time.Sunday, err
	}

	day, err := domain.ParseWeekday(args[1])
	if err != nil {
		return domain.TimeOfDay{}, time.Sunday, err
	}

	return tod, day, nil
}

func (c *console) add(ctx context.Context, args []string) {
	tod, day, err := parseKey(args)
	if err != nil {
		c.renderError(err)
		return
	}

	record, err := c.service.Add(ctx, tod, day)
	if err != nil {
		c.renderError(err)
		return
	}

	fmt.Fprintf(c.out, "Alarm set for %s on %s.\n", record.Time, record.Day)
}

func (c *console) delete(ctx context.Context, args []string) {
	tod, day, err := parseKey(args)
	if err != nil {
		c.renderError(err)
		return
	}

	if err := c.service.Delete(ctx, tod, day); err != nil {
		c.renderError(err)
		return
	}

	fmt.Fprintf(c.out, "Deleted alarm %s %s.\n", tod, day)
}

func (c *console) snooze(ctx context.Context, args []string) {
	tod, day, err := parseKey(args)
	if err != nil {
		c.renderError(err)
		return
	}

	next, err := c.service.SnoozeByKey(ctx, tod, day)
	if err != nil {
		c.renderError(err)
		return
	}

	fmt.Fprintf(c.out, "Snoozed until %s.\n", next.Format("15:04"))
}

func (c *console) dismiss(ctx context.Context, args []string) {
	tod, day, err := parseKey(args)
	if err != nil {
		c.renderError(err)
		return
	}

	if err := c.service.DismissByKey(ctx, tod, day); err != nil {
		c.renderError(err)
		return
	}

	fmt.Fprintf(c.out, "Alarm %s %s dismissed.\n", tod, day)
}

func (c *console) list(ctx context.Context) {
	records := c.service.List(ctx)
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No alarms set.")
		return
	}

	for _, record := range records {
		line := fmt.Sprintf("%s %-9s  %s", record.Time, record.Day, record.Status)
		if record.SnoozeCount > 0 {
			line += fmt.Sprintf("  (snoozed %d/%d)", record.SnoozeCount, domain.MaxSnoozes)
		}

		fmt.Fprintln(c.out, line)
	}
}

// renderError maps core errors to user-facing messages.
func (c *console) renderError(err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateAlarm):
		fmt.Fprintln(c.out, "An alarm already exists at that time and day.")
	case errors.Is(err, domain.ErrAlarmNotFound):
		fmt.Fprintln(c.out, "No such alarm.")
	case errors.Is(err, domain.ErrSnoozeLimitExceeded):
		fmt.Fprintln(c.out, "Snooze limit reached; the alarm will not ring again.")
	case errors.Is(err, domain.ErrInvalidState):
		fmt.Fprintln(c.out, "That alarm is not ringing right now.")
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}
