// Package partition slices a decoded bitmap into a grid of independent
// puzzle pieces.
//
// What:
//
//   - Partition cuts an image into Rows×Columns rectangular pieces,
//     emitted in row-major order (piece index = row*Columns + col).
//   - Piece bitmaps are deep copies: each piece owns its pixels and
//     stays valid after the source image is released.
//   - Interior pieces measure floor(W/Columns) × floor(H/Rows); the
//     last row and column absorb the division remainder, so the pieces
//     tile the source exactly with no gap and no overlap.
//
// Why:
//
//   - Puzzle generation: the ordered piece sequence feeds the board
//     shuffler and the rendering layer.
//   - The remainder lands entirely on the last row/column on purpose.
//     Centering it would look marginally nicer but change every piece
//     boundary; downstream consumers rely on the observed layout.
//
// Complexity:
//
//   - Partition: O(W×H) time and memory (every source pixel is copied
//     into exactly one piece).
//
// Errors:
//
//   - board.ErrInvalidGridSpec: Rows or Columns below 1.
//   - ErrNilImage: nil source bitmap.
//   - ErrEmptyImage: source with a zero-area pixel rectangle.
package partition
