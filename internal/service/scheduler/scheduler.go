package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/argha-paul/alarm-clock/internal/domain/alarm"
	"github.com/argha-paul/alarm-clock/internal/logger"
	"github.com/argha-paul/alarm-clock/internal/repository/registry"
)

// NotifyFunc is the trigger notification callback invoked synchronously for
// every alarm that fires. The console renderer is the usual implementation.
// Errors are logged and otherwise ignored.
type NotifyFunc func(ctx context.Context, a *domain.Alarm) error

// DefaultPollInterval defines the poll period used when none is configured.
const DefaultPollInterval = 5 * time.Second

// errStaleRecord indicates that a snapshotted alarm changed before it could
// be fired, so this tick skips it.
var errStaleRecord = errors.New("alarm changed since snapshot")

// Options controls the scheduler polling behavior.
type Options struct {
	// PollInterval defines the interval between alarm checks.
	PollInterval time.Duration
	// Now is the time source, injectable for tests.
	Now func() time.Time
}

// Scheduler runs the alarm checking loop against a registry.
type Scheduler struct {
	// registry is the shared source of alarm state.
	registry *registry.Registry
	// notify is invoked for every alarm that fires.
	notify NotifyFunc
	// interval is the poll period between ticks.
	interval time.Duration
	// now is the time source.
	now func() time.Time

	// mu guards lastPoll across ticks.
	mu sync.Mutex
	// lastPoll is the instant of the previous evaluation pass. Matching uses
	// the (lastPoll, now] window so a target minute crossed between two
	// coarse polls still fires, and never fires twice.
	lastPoll time.Time
}

// New creates a scheduler over the given registry and notification callback.
// Alarms whose target passed before the scheduler was created do not fire
// retroactively.
func New(reg *registry.Registry, notify NotifyFunc, opts *Options) *Scheduler {
	if opts == nil {
		opts = new(Options)
	}

	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Scheduler{
		registry: reg,
		notify:   notify,
		interval: interval,
		now:      now,
		lastPoll: now(),
	}
}

// Run executes the checking loop until the context is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "scheduler")

	logger.InfoKV(ctx, "Checking alarms", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs one evaluation pass: every alarm due within the window since
// the previous poll fires exactly once.
func (s *Scheduler) Tick(ctx context.Context) {
	s.mu.Lock()
	now := s.now()
	last := s.lastPoll
	s.lastPoll = now
	s.mu.Unlock()

	for _, record := range s.registry.List() {
		if !domain.Due(record, last, now) {
			continue
		}

		fired, err := s.registry.Update(record.ID, func(a *domain.Alarm) error {
			// Re-evaluate under the registry lock: the record may have been
			// snoozed, dismissed or replaced since the snapshot was taken.
			if !domain.Due(a, last, now) {
				return errStaleRecord
			}

			return a.Fire(now)
		})

		switch {
		case errors.Is(err, domain.ErrAlarmNotFound):
			// Deleted while this tick was running. An expected race, skip.
			continue
		case err != nil:
			logger.DebugKV(ctx, "Skipping alarm", "alarm_id", record.ID, "reason", err)
			continue
		}

		if notifyErr := s.notify(ctx, fired); notifyErr != nil {
			logger.ErrorKV(ctx, "Notification failed",
				"alarm_id", fired.ID, "alarm", fired.Key().String(), "error", notifyErr)
		}

		logger.InfoKV(ctx, "Alarm fired",
			"alarm_id", fired.ID, "alarm", fired.Key().String(), "snooze_count", fired.SnoozeCount)

		if fired.SnoozeCount >= domain.MaxSnoozes {
			s.expire(ctx, fired.ID)
		}
	}
}

// expire retires an alarm that fired with its whole snooze budget consumed.
func (s *Scheduler) expire(ctx context.Context, id uuid.UUID) {
	_, err := s.registry.Update(id, func(a *domain.Alarm) error {
		return a.Expire()
	})
	if err != nil && !errors.Is(err, domain.ErrAlarmNotFound) {
		logger.WarnKV(ctx, "Failed to retire alarm", "alarm_id", id, "error", err)
	}
}
