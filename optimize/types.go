package optimize

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// Sentinel errors for optimizer operations.
var (
	// ErrEmptyInput indicates a zero-length input byte slice.
	ErrEmptyInput = errors.New("optimize: input bytes must not be empty")
	// ErrDecode indicates bytes that are not a supported image format.
	ErrDecode = errors.New("optimize: unsupported or corrupt image data")
	// ErrInvalidCap indicates a long-edge cap below 1.
	ErrInvalidCap = errors.New("optimize: MaxLongEdge must be at least 1")
)

// DefaultMaxLongEdge bounds the working bitmap's long edge. 2048 px
// slices into crisp pieces even on a 9×9 grid while keeping the decoded
// bitmap under ~13 MB.
const DefaultMaxLongEdge = 2048

// Image is the processed source artwork: an exclusively owned bitmap
// plus its post-optimization dimensions. Instances are immutable;
// picking a new source replaces the whole Image rather than mutating
// it in place.
type Image struct {
	Pixels      *image.NRGBA
	Width       int
	Height      int
	SourceLabel string
}

// Optimizer configures decoding and downscaling.
//
// Fields:
//   - MaxLongEdge — bitmaps whose long edge exceeds this are downscaled
//     (preserving aspect ratio) until the long edge equals it exactly.
//   - Filter      — resampling filter used when downscaling.
type Optimizer struct {
	MaxLongEdge int
	Filter      imaging.ResampleFilter
}

// Default returns an Optimizer with the 2048 px cap and Lanczos
// resampling, a good quality/speed trade-off for photographic input.
func Default() Optimizer {
	return Optimizer{
		MaxLongEdge: DefaultMaxLongEdge,
		Filter:      imaging.Lanczos,
	}
}
