package partition

import (
	"errors"
	"image"
)

// Sentinel errors for partition operations.
var (
	// ErrNilImage indicates a nil source bitmap.
	ErrNilImage = errors.New("partition: source image must not be nil")
	// ErrEmptyImage indicates a source bitmap with zero width or height.
	ErrEmptyImage = errors.New("partition: source image must have positive dimensions")
)

// Piece is one extracted sub-image of the puzzle.
//
// Index is the piece's identity in the solved, row-major ordering and
// is distinct from whatever board slot it currently occupies. Bitmap
// is an exclusively owned copy of the extracted region. Rect records
// where in the source the piece was cut from, in the source's
// coordinate space.
type Piece struct {
	Index  int
	Bitmap *image.NRGBA
	Rect   image.Rectangle
}
