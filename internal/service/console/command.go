package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/argha-paul/alarm-clock/internal/config"
	domain "github.com/argha-paul/alarm-clock/internal/domain/alarm"
	"github.com/argha-paul/alarm-clock/internal/logger"
	"github.com/argha-paul/alarm-clock/internal/repository/registry"
	"github.com/argha-paul/alarm-clock/internal/service/clock"
	"github.com/argha-paul/alarm-clock/internal/service/scheduler"
)

// Options controls the interactive alarm clock session.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// PollInterval overrides the configured scheduler poll period when positive.
	PollInterval time.Duration
	// Input is the command source. Defaults to stdin.
	Input io.Reader
	// Output is where results, errors and alarm notifications are rendered.
	// Defaults to stdout.
	Output io.Writer
}

// Run starts the alarm clock: the background scheduler plus the interactive
// read-eval loop. It returns when the user quits, input ends, or the context
// is canceled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-clock")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	pollInterval := cfg.PollInterval
	if opts.PollInterval > 0 {
		pollInterval = opts.PollInterval
	}

	input := opts.Input
	if input == nil {
		input = os.Stdin
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	reg := registry.New()
	c := &console{
		service: clock.NewService(reg, nil),
		out:     output,
		now:     time.Now,
	}

	sched := scheduler.New(reg, c.notify, &scheduler.Options{
		PollInterval: pollInterval,
	})

	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()

	schedulerDone := make(chan struct{})

	go func() {
		defer close(schedulerDone)

		_ = sched.Run(schedulerCtx)
	}()

	fmt.Fprintln(output, "Alarm clock started. Type 'help' for commands.")

	// Read lines on a separate goroutine so shutdown does not wait on stdin.
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(output, "> ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(output)
			logger.Info(ctx, "Shutting down")
			stopScheduler()
			<-schedulerDone

			return nil
		case line, ok := <-lines:
			if !ok {
				stopScheduler()
				<-schedulerDone

				return nil
			}

			if quit := c.execute(ctx, line); quit {
				fmt.Fprintln(output, "Goodbye.")
				stopScheduler()
				<-schedulerDone

				return nil
			}
		}
	}
}

// notify renders a fired alarm. It is the trigger callback handed to the
// scheduler.
func (c *console) notify(_ context.Context, a *domain.Alarm) error {
	_, err := fmt.Fprintf(c.out, "\n*** ALARM! It's %s on %s ***\n", a.Time, a.Day)

	return err
}
