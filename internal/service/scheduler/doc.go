// Package scheduler implements the background alarm checking loop.
//
// On every tick it snapshots the registry, evaluates which alarms became due
// since the previous poll, fires each match through an atomic registry
// update, and invokes the trigger notification callback. A notification
// failure or an alarm deleted mid-tick never aborts the loop.
package scheduler
