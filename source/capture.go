package source

import (
	"context"
	"fmt"
)

// CaptureFunc is the platform hook that drives the device camera and
// returns the captured bytes. Returning (nil, nil) means the user
// backed out of the capture screen. EXIF orientation is left in the
// bytes; the optimizer corrects it at decode time.
type CaptureFunc func(ctx context.Context) ([]byte, error)

// Capture returns a Source backed by a camera capture callback.
// Callback errors surface as ErrCaptureFailed; a cancelled context or
// a user back-out surfaces as ErrSourceUnavailable.
func Capture(label string, fn CaptureFunc) Source {
	return captureSource{label: label, fn: fn}
}

type captureSource struct {
	label string
	fn    CaptureFunc
}

func (s captureSource) Obtain(ctx context.Context) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if s.fn == nil {
		return nil, "", fmt.Errorf("%w: no capture hook installed", ErrSourceUnavailable)
	}
	raw, err := s.fn(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	if len(raw) == 0 {
		return nil, "", fmt.Errorf("%w: capture cancelled", ErrSourceUnavailable)
	}

	return raw, s.label, nil
}
