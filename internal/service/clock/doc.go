// Package clock implements the alarm lifecycle service.
//
// It fronts the registry with the operations the command surface maps onto:
// add, delete, list, find, snooze and dismiss. The snooze state machine is
// enforced here via atomic registry updates, so user-driven transitions can
// race the background scheduler without corrupting a record.
package clock
