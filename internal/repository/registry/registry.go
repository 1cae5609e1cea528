package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/argha-paul/alarm-clock/internal/domain/alarm"
)

// Registry owns the collection of alarm records.
//
// All operations are safe for concurrent use. Records handed out are clones;
// mutations go through Update so no caller ever observes a record mid-change.
type Registry struct {
	// mu protects both indices and every record behind them.
	mu sync.RWMutex
	// byID is the primary index from alarm ID to record.
	byID map[uuid.UUID]*domain.Alarm
	// byKey is the secondary unique index from (time, weekday) to ID.
	byKey map[domain.Key]uuid.UUID
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byID:  make(map[uuid.UUID]*domain.Alarm),
		byKey: make(map[domain.Key]uuid.UUID),
	}
}

// Add registers a new alarm at the given time and weekday and returns a clone
// of the created record.
//
// It fails with ErrDuplicateAlarm while a non-expired alarm occupies the same
// (time, weekday) slot. An expired record at that slot is replaced, since it
// no longer participates in matching and only lingers for display.
func (r *Registry) Add(t domain.TimeOfDay, day time.Weekday) (*domain.Alarm, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	record := domain.New(t, day)
	key := record.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingID, ok := r.byKey[key]; ok {
		existing := r.byID[existingID]
		if existing.Active() {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAlarm, key)
		}

		delete(r.byID, existingID)
	}

	r.byID[record.ID] = record
	r.byKey[key] = record.ID

	return record.Clone(), nil
}

// Delete removes the alarm addressed by time and weekday.
func (r *Registry) Delete(t domain.TimeOfDay, day time.Weekday) error {
	key := domain.Key{Time: t, Day: day}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, key)
	}

	delete(r.byID, id)
	delete(r.byKey, key)

	return nil
}

// DeleteByID removes the alarm with the given internal identifier.
func (r *Registry) DeleteByID(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, id)
	}

	delete(r.byID, id)
	delete(r.byKey, record.Key())

	return nil
}

// Get returns a clone of the alarm with the given identifier.
func (r *Registry) Get(id uuid.UUID) (*domain.Alarm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, id)
	}

	return record.Clone(), nil
}

// Find returns a clone of the alarm addressed by time and weekday.
func (r *Registry) Find(t domain.TimeOfDay, day time.Weekday) (*domain.Alarm, error) {
	key := domain.Key{Time: t, Day: day}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, key)
	}

	return r.byID[id].Clone(), nil
}

// List returns a consistent snapshot of all alarms as clones, ordered by
// weekday then time of day so display output is stable.
func (r *Registry) List() []*domain.Alarm {
	r.mu.RLock()

	records := make([]*domain.Alarm, 0, len(r.byID))
	for _, record := range r.byID {
		records = append(records, record.Clone())
	}

	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].Day != records[j].Day {
			return records[i].Day < records[j].Day
		}

		return records[i].Time.Before(records[j].Time)
	})

	return records
}

// Update applies mutate to the alarm with the given identifier while holding
// the registry lock, so every state transition is atomic with respect to
// concurrent readers and other mutations. When mutate returns an error the
// record is left unchanged. On success a clone of the updated record is
// returned.
func (r *Registry) Update(id uuid.UUID, mutate func(*domain.Alarm) error) (*domain.Alarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, id)
	}

	// Mutate a copy first so a failed transition cannot leave the stored
	// record half-updated.
	staged := record.Clone()
	if err := mutate(staged); err != nil {
		return nil, err
	}

	*record = *staged

	return record.Clone(), nil
}

// Len returns the number of registered alarms, expired ones included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}
