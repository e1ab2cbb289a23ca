package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File returns a Source reading a user-picked file from disk, the
// gallery case. label may be empty, in which case the file's base name
// is used for attribution.
func File(path, label string) Source {
	if label == "" {
		label = filepath.Base(path)
	}

	return fileSource{path: path, label: label}
}

type fileSource struct {
	path  string
	label string
}

// Obtain reads the file's bytes. Missing files and permission errors
// both map to ErrSourceUnavailable; the distinction does not matter to
// the session, which keeps the previous puzzle either way.
func (s fileSource) Obtain(ctx context.Context) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if len(raw) == 0 {
		return nil, "", fmt.Errorf("%w: %s is empty", ErrSourceUnavailable, s.path)
	}

	return raw, s.label, nil
}
