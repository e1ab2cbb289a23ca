package session

import (
	"errors"
	"math/rand"

	"github.com/veltrane/tessella/board"
	"github.com/veltrane/tessella/optimize"
	"github.com/veltrane/tessella/partition"
)

// Sentinel errors for session operations.
var (
	// ErrSuperseded indicates a Start whose result was discarded
	// because a newer Start arrived while it was in flight.
	ErrSuperseded = errors.New("session: start superseded by a newer request")
	// ErrNoPuzzle indicates board access before the first successful
	// Start.
	ErrNoPuzzle = errors.New("session: no active puzzle")
)

// Puzzle bundles everything one solvable image produced: the optimized
// artwork, its pieces in solved order, and the live board. The session
// replaces the whole Puzzle atomically; renderers index Pieces by the
// values in Board.Slots().
type Puzzle struct {
	Image  *optimize.Image
	Pieces []partition.Piece
	Board  *board.Board
}

// Snapshot is the plain-value view handed to the rendering layer after
// every change: the current slot→piece order plus derived state.
type Snapshot struct {
	Spec   board.GridSpec
	Slots  []int
	Solved bool
	Moves  int
}

// Options configures a Session.
//
// Fields:
//   - Optimizer — decode/resize policy; zero value is replaced by
//     optimize.Default().
//   - Rand      — randomness for shuffling and catalog picks; nil
//     means a time-seeded source.
type Options struct {
	Optimizer optimize.Optimizer
	Rand      *rand.Rand
}

// DefaultOptions returns Options with the default optimizer and a
// time-seeded shuffle source.
func DefaultOptions() Options {
	return Options{Optimizer: optimize.Default()}
}
