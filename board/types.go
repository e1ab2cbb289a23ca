package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrInvalidGridSpec indicates Rows or Columns below 1.
	ErrInvalidGridSpec = errors.New("board: rows and columns must be at least 1")
	// ErrInvalidSlot indicates a slot index outside [0, PieceCount).
	ErrInvalidSlot = errors.New("board: slot index out of range")
	// ErrNotPermutation indicates a restored slot order that is not a
	// permutation of 0..n-1.
	ErrNotPermutation = errors.New("board: slot order is not a permutation")
)

// GridSpec describes the puzzle shape. Pieces are indexed row-major:
// index = row*Columns + col, so index 0 is the top-left piece and
// index Rows*Columns-1 the bottom-right one.
type GridSpec struct {
	Rows    int
	Columns int
}

// DefaultGridSpec returns the 3×3 grid used when no difficulty has been
// chosen yet.
func DefaultGridSpec() GridSpec {
	return GridSpec{Rows: 3, Columns: 3}
}

// Validate returns ErrInvalidGridSpec unless both dimensions are ≥1.
// A 1×1 grid is accepted; the resulting board reports solved immediately.
func (s GridSpec) Validate() error {
	if s.Rows < 1 || s.Columns < 1 {
		return ErrInvalidGridSpec
	}

	return nil
}

// PieceCount returns Rows*Columns.
func (s GridSpec) PieceCount() int {
	return s.Rows * s.Columns
}

// Index maps (row, col) to the row-major piece index. Complexity: O(1).
func (s GridSpec) Index(row, col int) int {
	return row*s.Columns + col
}

// Coordinate converts a row-major index back to (row, col). Complexity: O(1).
func (s GridSpec) Coordinate(idx int) (row, col int) {
	return idx / s.Columns, idx % s.Columns
}
