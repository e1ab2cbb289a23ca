// Package session wires the puzzle pipeline together: obtain bytes,
// optimize, partition, shuffle, then own the resulting board until the
// next image replaces it.
//
// What:
//
//   - Session runs Start as one sequential, cancelable operation:
//     settings → source → optimize → partition → board.
//   - A new Start supersedes any in-flight one rather than queueing
//     behind it. The superseded call's context is cancelled and its
//     result, should it still arrive, is discarded with ErrSuperseded.
//     Last request wins.
//   - Failure anywhere leaves the previous puzzle untouched; a
//     half-built puzzle is never observable.
//   - Swap and Snapshot expose the current board to the rendering
//     layer as plain values, no observer machinery.
//
// Why:
//
//   - The player mashing "new photo" while a slow decode is running
//     must get the photo they picked last, not a queue of stale
//     puzzles landing one by one.
//
// Errors:
//
//   - ErrSuperseded: this Start lost to a newer one.
//   - ErrNoPuzzle: Swap or Snapshot before the first successful Start.
//   - Everything the pipeline stages return (source.*, optimize.*,
//     partition.*, board.*) passes through unwrapped so callers can
//     errors.Is against the stage taxonomies.
//
// A Session is safe for concurrent use. Each Session owns its own
// board and image; nothing is shared across sessions.
package session
