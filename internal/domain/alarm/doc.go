// Package alarm contains core domain types for the alarm clock business logic.
//
// It defines the Alarm record with its fire/snooze status machine, the
// TimeOfDay and weekday parsing helpers shared with the command surface,
// the pure Due matcher used by the scheduler, and the sentinel errors
// every layer above discriminates on.
package alarm
