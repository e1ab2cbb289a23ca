// Package board tracks the mutable state of a sliding-free swap puzzle:
// which piece sits in which board slot, how many moves were made, and
// whether the arrangement is solved.
//
// What:
//
//   - GridSpec describes the puzzle shape as (Rows, Columns) with
//     row-major piece indexing: index = row*Columns + col.
//   - Shuffle produces an unbiased random permutation of piece indices,
//     resampling whenever the identity permutation comes up (a freshly
//     shuffled puzzle must never start solved, unless it has ≤1 piece).
//   - Board owns the slot→piece permutation. Swap is the only mutation
//     path, which keeps the permutation closed under every operation.
//
// Why:
//
//   - Puzzle sessions: create a Board per image/difficulty combination,
//     feed player drag-drop as Swap calls, poll Solved.
//   - Persistence: FromPermutation restores a board from a saved slot
//     order and rejects anything that is not a permutation.
//
// Complexity:
//
//   - Shuffle: O(n) expected (identity rejection retries are O(1)
//     expected, probability 1/n! per draw).
//   - Swap, Solved, Moves: O(1) (solved state is maintained
//     incrementally, not rescanned).
//   - Slots, FromPermutation: O(n).
//
// Errors:
//
//   - ErrInvalidGridSpec: Rows or Columns below 1.
//   - ErrInvalidSlot: a swap index outside [0, PieceCount).
//   - ErrNotPermutation: restored slot order is not a permutation of
//     0..n-1.
//
// Determinism: every randomized entry point takes a *rand.Rand so tests
// and replays can seed it; pass nil to use a time-seeded source.
package board
