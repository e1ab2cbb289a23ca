package source

import (
	"context"
	"errors"
)

// Sentinel errors for image sources.
var (
	// ErrSourceUnavailable indicates permission denial, user
	// cancellation, or a missing underlying file.
	ErrSourceUnavailable = errors.New("source: image source unavailable")
	// ErrCaptureFailed indicates a camera pipeline error.
	ErrCaptureFailed = errors.New("source: camera capture failed")
	// ErrEmptyCatalog indicates a manifest with no asset entries.
	ErrEmptyCatalog = errors.New("source: asset catalog has no entries")
	// ErrBadManifest indicates an unparsable or incomplete manifest.
	ErrBadManifest = errors.New("source: invalid asset manifest")
)

// Source yields raw image bytes plus a human-readable label for
// attribution. Obtain blocks until bytes are available, the context is
// cancelled, or the source fails; implementations must not cache the
// result across calls.
type Source interface {
	Obtain(ctx context.Context) (raw []byte, label string, err error)
}

// Entry is one bundled artwork in the asset catalog. File is the path
// inside the catalog filesystem; DisplayName is shown to the player and
// travels with the image as its source label; Category groups entries
// for themed selection.
type Entry struct {
	File        string `yaml:"file"`
	DisplayName string `yaml:"name"`
	Category    string `yaml:"category"`
}
