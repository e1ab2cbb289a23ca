// Package tessella turns any picture into a swap puzzle: decode it,
// bound it, slice it into a grid of pieces, scramble them, and track
// the board until every piece is home again.
//
// 🧩 What is tessella?
//
//	A small, composable pipeline of five packages:
//		• source/    — image bytes from a bundled catalog, a picked file, or a camera hook
//		• optimize/  — decode + EXIF orientation + long-edge cap (memory is the budget)
//		• partition/ — cut the bitmap into rows×columns pieces, row-major
//		• board/     — unbiased shuffle, swap-only mutation, O(1) solved detection
//		• settings/  — the player's difficulty, in SQLite or in memory
//
// ✨ Why tessella?
//
//   - Deterministic where it matters — every randomized entry point
//     takes an injectable *rand.Rand
//   - No partial state — a failed or superseded pipeline run leaves the
//     previous puzzle untouched
//   - No global anything — settings and randomness are injected, each
//     session owns its own board
//
// The session package ties the stages together with last-request-wins
// semantics: picking a new image cancels and discards any pick still
// in flight.
//
// Quick ASCII example, a 2×2 board mid-game:
//
//	solved order        current slots
//	  ┌───┬───┐          ┌───┬───┐
//	  │ 0 │ 1 │          │ 1 │ 0 │
//	  ├───┼───┤    vs    ├───┼───┤
//	  │ 2 │ 3 │          │ 3 │ 2 │
//	  └───┴───┘          └───┴───┘
//
// Swap(0,1), Swap(2,3) and the pieces are home.
//
// See cmd/tessella for a shell front end to the same pipeline.
//
//	go get github.com/veltrane/tessella
package tessella
