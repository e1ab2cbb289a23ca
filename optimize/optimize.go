package optimize

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	// Extend the decoder registry beyond the stdlib formats; gallery
	// picks and downloaded art show up in all of these.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Optimize decodes raw into a working bitmap, corrects EXIF
// orientation, and downscales so the long edge is at most
// o.MaxLongEdge. Aspect ratio is preserved and the image is never
// upscaled: input already within the cap keeps its exact dimensions.
//
// label travels with the result as Image.SourceLabel; it is an opaque
// display string and is never parsed.
//
// Returns ErrInvalidCap, ErrEmptyInput, or ErrDecode (wrapping the
// decoder's own error).
func (o Optimizer) Optimize(raw []byte, label string) (*Image, error) {
	if o.MaxLongEdge < 1 {
		return nil, ErrInvalidCap
	}
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}

	// AutoOrientation applies the EXIF orientation tag during decode,
	// so a camera capture matches what the viewfinder showed.
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: decoded image has no pixels", ErrDecode)
	}

	if w > o.MaxLongEdge || h > o.MaxLongEdge {
		// Fit scales down until both edges are inside the box, which
		// puts the long edge at exactly the cap; it never scales up.
		nrgba = imaging.Fit(nrgba, o.MaxLongEdge, o.MaxLongEdge, o.Filter)
		w, h = nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	}

	return &Image{
		Pixels:      nrgba,
		Width:       w,
		Height:      h,
		SourceLabel: label,
	}, nil
}
