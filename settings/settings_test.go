package settings_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrane/tessella/board"
	"github.com/veltrane/tessella/settings"
)

//----------------------------------------------------------------------------//
// Memory Store Tests
//----------------------------------------------------------------------------//

// TestMemory_DefaultAndRoundTrip verifies the 3×3 default and the
// set/get round trip.
func TestMemory_DefaultAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	var store settings.Memory

	spec, err := store.GridSpec(ctx)
	require.NoError(t, err)
	assert.Equal(t, board.GridSpec{Rows: 3, Columns: 3}, spec)

	want := board.GridSpec{Rows: 5, Columns: 4}
	require.NoError(t, store.SetGridSpec(ctx, want))
	spec, err = store.GridSpec(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, spec)
}

// TestMemory_RejectsInvalid verifies invalid specs never get recorded.
func TestMemory_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	var store settings.Memory

	err := store.SetGridSpec(ctx, board.GridSpec{Rows: 0, Columns: 3})
	assert.ErrorIs(t, err, board.ErrInvalidGridSpec)

	spec, err := store.GridSpec(ctx)
	require.NoError(t, err)
	assert.Equal(t, board.DefaultGridSpec(), spec, "failed set must not leak")
}

//----------------------------------------------------------------------------//
// SQLite Store Tests
//----------------------------------------------------------------------------//

// TestSQLite_DefaultAndRoundTrip verifies the default on a fresh
// database and the upsert round trip.
func TestSQLite_DefaultAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := settings.OpenSQLite(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	defer store.Close()

	spec, err := store.GridSpec(ctx)
	require.NoError(t, err)
	assert.Equal(t, board.DefaultGridSpec(), spec, "fresh database answers the default")

	require.NoError(t, store.SetGridSpec(ctx, board.GridSpec{Rows: 4, Columns: 4}))
	require.NoError(t, store.SetGridSpec(ctx, board.GridSpec{Rows: 9, Columns: 9}))

	spec, err = store.GridSpec(ctx)
	require.NoError(t, err)
	assert.Equal(t, board.GridSpec{Rows: 9, Columns: 9}, spec, "second set overwrites the first")
}

// TestSQLite_PersistsAcrossReopen verifies durability: a new handle on
// the same file sees the previous difficulty.
func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.db")

	store, err := settings.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.SetGridSpec(ctx, board.GridSpec{Rows: 6, Columns: 7}))
	require.NoError(t, store.Close())

	reopened, err := settings.OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	spec, err := reopened.GridSpec(ctx)
	require.NoError(t, err)
	assert.Equal(t, board.GridSpec{Rows: 6, Columns: 7}, spec)
}

// TestSQLite_RejectsInvalid verifies validation happens before any
// write reaches the database.
func TestSQLite_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store, err := settings.OpenSQLite(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	defer store.Close()

	err = store.SetGridSpec(ctx, board.GridSpec{Rows: -2, Columns: 3})
	assert.ErrorIs(t, err, board.ErrInvalidGridSpec)

	spec, err := store.GridSpec(ctx)
	require.NoError(t, err)
	assert.Equal(t, board.DefaultGridSpec(), spec)
}

// TestSQLite_CreatesParentDir verifies nested database paths work on
// first launch.
func TestSQLite_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "nested", "settings.db")
	store, err := settings.OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SetGridSpec(context.Background(), board.GridSpec{Rows: 2, Columns: 2}))
}

// Interface conformance.
var (
	_ settings.Store = (*settings.Memory)(nil)
	_ settings.Store = (*settings.SQLite)(nil)
)
