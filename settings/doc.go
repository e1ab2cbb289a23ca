// Package settings persists the player's last-used difficulty.
//
// What:
//
//   - Store is the contract the session consumes: read the preferred
//     grid shape, write it back when the player changes difficulty.
//   - SQLite is the durable implementation, a single-row table in a
//     local database file.
//   - Memory is the throwaway implementation for tests and previews.
//
// Why:
//
//   - The store is injected into whatever constructs the session rather
//     than reached through a process-wide singleton, so two sessions
//     (or a test) can disagree about difficulty without fighting over
//     global state.
//
// Defaults:
//
//   - A store with no recorded difficulty answers 3×3.
//
// Errors:
//
//   - board.ErrInvalidGridSpec: an attempt to persist a non-positive
//     grid shape.
//   - Database-level failures are wrapped and returned as-is; callers
//     treat them as recoverable (fall back to the default spec).
package settings
