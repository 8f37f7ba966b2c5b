// Package state provides thread-safe state management for a facet session.
//
// # Overview
//
// The Store is the coordination point between everything that changes the
// session (the action dispatcher, the preview's own key handling, the
// exposure server) and everything that reads it (the preview renderer, the
// exposure /view endpoint, the snapshot exporter).
//
//	Writers:                        Readers:
//	┌──────────────────┐            ┌──────────────────┐
//	│ dispatch.Apply   │            │ ui.View          │
//	│ ui key handlers  │──────────→ │ exposure /view   │
//	│ store.Update(fn) │  (mutex)   │ store.Snapshot() │
//	└──────────────────┘            └──────────────────┘
//
// # Snapshot
//
// Snapshot carries the current page, theme kind and tone, render mode, the
// button lab settings, per-target spatial transforms, the single pending
// protected action and a bounded activity log. Snapshot() returns a copy;
// the transforms map and entry slice are cloned.
//
// # Update Semantics
//
// Update(fn) runs fn under the write lock, bumps Revision and clears the
// last error. Fail(err) records an error while keeping previous data, the
// same way a failed poll does not wipe what the UI already shows.
//
// The zero Store is ready to use and starts from Defaults().
package state
