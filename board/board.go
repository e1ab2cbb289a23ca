package board

import (
	"math/rand"
)

// Board is the mutable state of one puzzle session. slotToPiece[s] is
// the piece currently occupying slot s; the slice is a permutation of
// 0..PieceCount-1 at all times because Swap is the only mutation path.
//
// A Board is single-owner state: the session that created it performs
// all swaps. It is not safe for concurrent use.
type Board struct {
	spec        GridSpec
	slotToPiece []int
	moveCount   int
	misplaced   int // slots s with slotToPiece[s] != s
}

// New creates a freshly shuffled board for spec. The shuffled order is
// never the identity unless spec has a single piece, so a new puzzle
// always starts unsolved when it can. rng may be nil (time-seeded).
// Returns ErrInvalidGridSpec for non-positive dimensions.
func New(spec GridSpec, rng *rand.Rand) (*Board, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return fromOrder(spec, Shuffle(spec.PieceCount(), rng)), nil
}

// FromPermutation restores a board from a saved slot order. perm must
// be a permutation of 0..spec.PieceCount()-1; anything else returns
// ErrNotPermutation. The input is copied, the board reports solved
// immediately when perm is the identity, and moveCount starts at zero.
func FromPermutation(spec GridSpec, perm []int) (*Board, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	n := spec.PieceCount()
	if len(perm) != n {
		return nil, ErrNotPermutation
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, ErrNotPermutation
		}
		seen[p] = true
	}
	order := make([]int, n)
	copy(order, perm)

	return fromOrder(spec, order), nil
}

// fromOrder wraps an already-validated slot order. Takes ownership of order.
func fromOrder(spec GridSpec, order []int) *Board {
	b := &Board{spec: spec, slotToPiece: order}
	for s, p := range order {
		if p != s {
			b.misplaced++
		}
	}

	return b
}

// Spec returns the grid shape this board was created for.
func (b *Board) Spec() GridSpec {
	return b.spec
}

// Swap exchanges the pieces in slots slotA and slotB, counts the move, and
// updates the solved state. Swapping a slot with itself is accepted as
// a counted no-op. Returns ErrInvalidSlot when either index falls
// outside [0, PieceCount). Complexity: O(1).
func (b *Board) Swap(slotA, slotB int) error {
	n := len(b.slotToPiece)
	if slotA < 0 || slotA >= n || slotB < 0 || slotB >= n {
		return ErrInvalidSlot
	}
	b.moveCount++
	if slotA == slotB {
		return nil
	}
	b.misplaced -= b.placedDelta(slotA) + b.placedDelta(slotB)
	b.slotToPiece[slotA], b.slotToPiece[slotB] = b.slotToPiece[slotB], b.slotToPiece[slotA]
	b.misplaced += b.placedDelta(slotA) + b.placedDelta(slotB)

	return nil
}

// placedDelta returns 1 when slot s currently holds a foreign piece.
func (b *Board) placedDelta(s int) int {
	if b.slotToPiece[s] != s {
		return 1
	}

	return 0
}

// Solved reports whether every slot holds its own piece. Solved boards
// keep reporting true after further queries; the caller is expected to
// stop feeding swaps once the puzzle completes. Complexity: O(1).
func (b *Board) Solved() bool {
	return b.misplaced == 0
}

// Moves returns the number of accepted swaps so far.
func (b *Board) Moves() int {
	return b.moveCount
}

// Piece returns the piece index occupying slot s.
// Returns ErrInvalidSlot for an out-of-range slot.
func (b *Board) Piece(s int) (int, error) {
	if s < 0 || s >= len(b.slotToPiece) {
		return 0, ErrInvalidSlot
	}

	return b.slotToPiece[s], nil
}

// Slots returns a copy of the slot→piece order, suitable for rendering
// or persistence. Mutating the copy has no effect on the board.
// Complexity: O(n).
func (b *Board) Slots() []int {
	out := make([]int, len(b.slotToPiece))
	copy(out, b.slotToPiece)

	return out
}
