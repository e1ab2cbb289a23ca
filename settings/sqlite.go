package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/veltrane/tessella/board"
)

// schema holds a single settings row; the CHECK pins its id so an
// upsert can never grow a second row.
const schema = `
CREATE TABLE IF NOT EXISTS settings (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	rows    INTEGER NOT NULL,
	columns INTEGER NOT NULL
);
`

// SQLite is the durable Store, one row in a local database file.
// Safe for concurrent use; database/sql serializes access.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the settings database at path.
// Parent directories are created as required.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("settings: create dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("settings: open database: %w", err)
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("settings: init schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// GridSpec returns the recorded difficulty, or board.DefaultGridSpec()
// when the settings row does not exist yet.
func (s *SQLite) GridSpec(ctx context.Context) (board.GridSpec, error) {
	var spec board.GridSpec
	row := s.db.QueryRowContext(ctx, `SELECT rows, columns FROM settings WHERE id = 1`)
	if err := row.Scan(&spec.Rows, &spec.Columns); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return board.DefaultGridSpec(), nil
		}

		return board.GridSpec{}, fmt.Errorf("settings: read grid spec: %w", err)
	}

	return spec, nil
}

// SetGridSpec validates and persists spec, creating the settings row on
// first use and updating it afterwards.
func (s *SQLite) SetGridSpec(ctx context.Context, spec board.GridSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (id, rows, columns) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET rows = excluded.rows, columns = excluded.columns`,
		spec.Rows, spec.Columns)
	if err != nil {
		return fmt.Errorf("settings: write grid spec: %w", err)
	}

	return nil
}
