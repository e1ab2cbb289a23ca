package partition

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/veltrane/tessella/board"
)

// Partition cuts img into spec.Rows × spec.Columns pieces and returns
// them in row-major order. Piece widths are floor(W/Columns) except in
// the last column, which extends to the right edge; heights follow the
// same rule for the last row. The union of all piece rectangles covers
// the source exactly.
//
// Each returned piece carries its own pixel copy, so the caller may
// release img immediately afterwards.
//
// Returns board.ErrInvalidGridSpec, ErrNilImage or ErrEmptyImage; on
// any error no pieces are returned.
// Complexity: O(W×H) time and memory.
func Partition(img *image.NRGBA, spec board.GridSpec) ([]Piece, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrNilImage
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, ErrEmptyImage
	}

	baseW := w / spec.Columns
	baseH := h / spec.Rows
	pieces := make([]Piece, 0, spec.PieceCount())
	for row := 0; row < spec.Rows; row++ {
		y0 := bounds.Min.Y + row*baseH
		y1 := y0 + baseH
		if row == spec.Rows-1 {
			y1 = bounds.Max.Y
		}
		for col := 0; col < spec.Columns; col++ {
			x0 := bounds.Min.X + col*baseW
			x1 := x0 + baseW
			if col == spec.Columns-1 {
				x1 = bounds.Max.X
			}
			rect := image.Rect(x0, y0, x1, y1)
			pieces = append(pieces, Piece{
				Index:  spec.Index(row, col),
				Bitmap: imaging.Crop(img, rect),
				Rect:   rect,
			})
		}
	}

	return pieces, nil
}
