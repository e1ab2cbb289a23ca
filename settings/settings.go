package settings

import (
	"context"
	"sync"

	"github.com/veltrane/tessella/board"
)

// Store reads and writes the preferred puzzle difficulty. GridSpec
// returns board.DefaultGridSpec() when nothing has been recorded yet.
type Store interface {
	GridSpec(ctx context.Context) (board.GridSpec, error)
	SetGridSpec(ctx context.Context, spec board.GridSpec) error
}

// Memory is an in-process Store for tests and previews. The zero value
// is ready to use and answers the default spec until the first set.
type Memory struct {
	mu   sync.Mutex
	spec *board.GridSpec
}

// GridSpec returns the recorded spec, or the 3×3 default when none is.
func (m *Memory) GridSpec(_ context.Context) (board.GridSpec, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.spec == nil {
		return board.DefaultGridSpec(), nil
	}

	return *m.spec, nil
}

// SetGridSpec records spec after validating it.
func (m *Memory) SetGridSpec(_ context.Context, spec board.GridSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := spec
	m.spec = &s

	return nil
}
