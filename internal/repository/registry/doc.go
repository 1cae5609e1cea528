// Package registry implements the in-memory alarm registry.
//
// The Registry is the single source of truth for all alarms. It keeps a
// primary index from alarm ID to record and a secondary unique index from
// (time of day, weekday) to ID for user-facing addressing, and serializes
// all access internally so the background scheduler and the interactive
// command surface can share it safely.
package registry
