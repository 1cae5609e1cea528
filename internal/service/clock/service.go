package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/argha-paul/alarm-clock/internal/domain/alarm"
	"github.com/argha-paul/alarm-clock/internal/repository/registry"
)

// Service exposes the alarm lifecycle operations to the command surface.
//
// It never logs or prints: failures travel upward as sentinel errors from the
// domain package for the caller to render.
type Service struct {
	// registry is the single source of truth for all alarms.
	registry *registry.Registry
	// now is the time source, injectable for tests.
	now func() time.Time
}

// NewService creates a lifecycle service over the given registry.
// A nil now falls back to time.Now.
func NewService(reg *registry.Registry, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		registry: reg,
		now:      now,
	}
}

// Add registers a new alarm for the given time and weekday.
func (s *Service) Add(_ context.Context, t domain.TimeOfDay, day time.Weekday) (*domain.Alarm, error) {
	record, err := s.registry.Add(t, day)
	if err != nil {
		return nil, fmt.Errorf("add alarm: %w", err)
	}

	return record, nil
}

// Delete removes the alarm addressed by time and weekday.
func (s *Service) Delete(_ context.Context, t domain.TimeOfDay, day time.Weekday) error {
	if err := s.registry.Delete(t, day); err != nil {
		return fmt.Errorf("delete alarm: %w", err)
	}

	return nil
}

// DeleteByID removes the alarm with the given internal identifier.
func (s *Service) DeleteByID(_ context.Context, id uuid.UUID) error {
	if err := s.registry.DeleteByID(id); err != nil {
		return fmt.Errorf("delete alarm: %w", err)
	}

	return nil
}

// Find returns the alarm addressed by time and weekday.
func (s *Service) Find(_ context.Context, t domain.TimeOfDay, day time.Weekday) (*domain.Alarm, error) {
	return s.registry.Find(t, day)
}

// List returns a consistent snapshot of all alarms ordered by weekday then time.
func (s *Service) List(_ context.Context) []*domain.Alarm {
	return s.registry.List()
}

// Snooze defers the next trigger of a fired alarm by the snooze interval and
// returns the new trigger time.
//
// It fails with ErrAlarmNotFound for an unknown ID, ErrSnoozeLimitExceeded on
// the fourth attempt, and ErrInvalidState when the alarm has not gone off.
func (s *Service) Snooze(_ context.Context, id uuid.UUID) (time.Time, error) {
	var next time.Time

	_, err := s.registry.Update(id, func(a *domain.Alarm) error {
		var snoozeErr error
		next, snoozeErr = a.Snooze(s.now())

		return snoozeErr
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("snooze alarm: %w", err)
	}

	return next, nil
}

// SnoozeByKey snoozes the alarm addressed by time and weekday, the way users
// identify alarms on the command surface.
func (s *Service) SnoozeByKey(ctx context.Context, t domain.TimeOfDay, day time.Weekday) (time.Time, error) {
	record, err := s.registry.Find(t, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("snooze alarm: %w", err)
	}

	return s.Snooze(ctx, record.ID)
}

// Dismiss acknowledges a fired alarm without snoozing it, moving it to the
// terminal expired status. The record stays in the registry for display until
// the user deletes it or registers a new alarm in its slot.
func (s *Service) Dismiss(_ context.Context, id uuid.UUID) error {
	_, err := s.registry.Update(id, func(a *domain.Alarm) error {
		if a.Status != domain.StatusFired {
			return fmt.Errorf("%w: cannot dismiss %s alarm", domain.ErrInvalidState, a.Status)
		}

		return a.Expire()
	})
	if err != nil {
		return fmt.Errorf("dismiss alarm: %w", err)
	}

	return nil
}

// DismissByKey dismisses the alarm addressed by time and weekday.
func (s *Service) DismissByKey(ctx context.Context, t domain.TimeOfDay, day time.Weekday) error {
	record, err := s.registry.Find(t, day)
	if err != nil {
		return fmt.Errorf("dismiss alarm: %w", err)
	}

	return s.Dismiss(ctx, record.ID)
}
