package source_test

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrane/tessella/source"
)

const sampleManifest = `
assets:
  - file: art/meadow.png
    name: Meadow at Dawn
    category: nature
  - file: art/harbor.png
    name: Old Harbor
    category: places
  - file: art/comet.png
    name: Comet Trail
    category: nature
`

func sampleFS() fstest.MapFS {
	return fstest.MapFS{
		"catalog.yaml":   {Data: []byte(sampleManifest)},
		"art/meadow.png": {Data: []byte("meadow-bytes")},
		"art/harbor.png": {Data: []byte("harbor-bytes")},
		"art/comet.png":  {Data: []byte("comet-bytes")},
	}
}

//----------------------------------------------------------------------------//
// Catalog Tests
//----------------------------------------------------------------------------//

// TestLoadCatalog verifies manifest parsing, entry order and category
// filtering.
func TestLoadCatalog(t *testing.T) {
	cat, err := source.LoadCatalog(sampleFS(), "catalog.yaml")
	require.NoError(t, err)

	entries := cat.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Meadow at Dawn", entries[0].DisplayName)
	assert.Equal(t, "art/harbor.png", entries[1].File)

	nature := cat.ByCategory("nature")
	require.Len(t, nature, 2)
	assert.Equal(t, "Comet Trail", nature[1].DisplayName)
	assert.Empty(t, cat.ByCategory("abstract"))
}

// TestLoadCatalog_Errors verifies the manifest error taxonomy.
func TestLoadCatalog_Errors(t *testing.T) {
	_, err := source.LoadCatalog(sampleFS(), "missing.yaml")
	assert.ErrorIs(t, err, source.ErrBadManifest)

	_, err = source.LoadCatalog(fstest.MapFS{
		"catalog.yaml": {Data: []byte("assets: [unclosed")},
	}, "catalog.yaml")
	assert.ErrorIs(t, err, source.ErrBadManifest)

	_, err = source.LoadCatalog(fstest.MapFS{
		"catalog.yaml": {Data: []byte("assets: []")},
	}, "catalog.yaml")
	assert.ErrorIs(t, err, source.ErrEmptyCatalog)

	_, err = source.LoadCatalog(fstest.MapFS{
		"catalog.yaml": {Data: []byte("assets:\n  - name: No File\n")},
	}, "catalog.yaml")
	assert.ErrorIs(t, err, source.ErrBadManifest)
}

// TestCatalog_Obtain verifies an entry's bytes are served by filename
// with the display name as label.
func TestCatalog_Obtain(t *testing.T) {
	cat, err := source.LoadCatalog(sampleFS(), "catalog.yaml")
	require.NoError(t, err)

	src := cat.Open(cat.Entries()[1])
	raw, label, err := src.Obtain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("harbor-bytes"), raw)
	assert.Equal(t, "Old Harbor", label)
}

// TestCatalog_Random verifies the uniform pick always lands on a real
// entry and covers the whole catalog over enough draws.
func TestCatalog_Random(t *testing.T) {
	cat, err := source.LoadCatalog(sampleFS(), "catalog.yaml")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		raw, label, obtainErr := cat.Random(rng).Obtain(context.Background())
		require.NoError(t, obtainErr)
		require.NotEmpty(t, raw)
		seen[label] = true
	}
	assert.Len(t, seen, 3, "100 draws from 3 entries should cover all of them")
}

// TestCatalog_MissingAsset verifies a manifest entry whose file vanished
// maps to ErrSourceUnavailable.
func TestCatalog_MissingAsset(t *testing.T) {
	fsys := sampleFS()
	delete(fsys, "art/comet.png")
	cat, err := source.LoadCatalog(fsys, "catalog.yaml")
	require.NoError(t, err)

	_, _, err = cat.Open(cat.Entries()[2]).Obtain(context.Background())
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
}

//----------------------------------------------------------------------------//
// File Source Tests
//----------------------------------------------------------------------------//

// TestFile_Obtain verifies gallery-style reads and base-name labeling.
func TestFile_Obtain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vacation.png")
	require.NoError(t, os.WriteFile(path, []byte("vacation-bytes"), 0o644))

	raw, label, err := source.File(path, "").Obtain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("vacation-bytes"), raw)
	assert.Equal(t, "vacation.png", label, "empty label falls back to base name")

	_, label, err = source.File(path, "Summer 2024").Obtain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Summer 2024", label)
}

// TestFile_Unavailable verifies missing files and cancelled contexts
// map to ErrSourceUnavailable.
func TestFile_Unavailable(t *testing.T) {
	_, _, err := source.File("/no/such/file.png", "").Obtain(context.Background())
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = source.File("/irrelevant", "").Obtain(ctx)
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
}

//----------------------------------------------------------------------------//
// Capture Source Tests
//----------------------------------------------------------------------------//

// TestCapture_Obtain verifies the happy path hands back the callback's
// bytes with the configured label.
func TestCapture_Obtain(t *testing.T) {
	src := source.Capture("Camera", func(ctx context.Context) ([]byte, error) {
		return []byte("shot-bytes"), nil
	})

	raw, label, err := src.Obtain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("shot-bytes"), raw)
	assert.Equal(t, "Camera", label)
}

// TestCapture_ErrorTaxonomy verifies pipeline errors, user back-outs
// and missing hooks classify as specified.
func TestCapture_ErrorTaxonomy(t *testing.T) {
	_, _, err := source.Capture("Camera", func(ctx context.Context) ([]byte, error) {
		return nil, errors.New("sensor wedged")
	}).Obtain(context.Background())
	assert.ErrorIs(t, err, source.ErrCaptureFailed)

	_, _, err = source.Capture("Camera", func(ctx context.Context) ([]byte, error) {
		return nil, nil // user backed out
	}).Obtain(context.Background())
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)

	_, _, err = source.Capture("Camera", nil).Obtain(context.Background())
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = source.Capture("Camera", func(ctx context.Context) ([]byte, error) {
		return []byte("x"), nil
	}).Obtain(ctx)
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
}
