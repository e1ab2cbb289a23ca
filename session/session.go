package session

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/veltrane/tessella/board"
	"github.com/veltrane/tessella/optimize"
	"github.com/veltrane/tessella/partition"
	"github.com/veltrane/tessella/settings"
	"github.com/veltrane/tessella/source"
)

// Session owns one puzzle at a time and runs the image→board pipeline.
// Construct with New; the zero value is not usable.
type Session struct {
	opt   optimize.Optimizer
	store settings.Store

	mu         sync.Mutex // guards the fields below
	rng        *rand.Rand
	generation uint64
	cancel     context.CancelFunc
	puzzle     *Puzzle
}

// New creates a Session reading difficulty from store. store must not
// be nil; inject settings.Memory when persistence is unwanted.
func New(store settings.Store, opts Options) *Session {
	o := opts.Optimizer
	if o.MaxLongEdge == 0 {
		o = optimize.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		opt:   o,
		store: store,
		rng:   rng,
	}
}

// Start builds a new puzzle from src: read the preferred grid shape,
// obtain bytes, optimize, partition, shuffle. On success the new
// puzzle atomically replaces the previous one and is returned. On any
// failure the previous puzzle stays active.
//
// Concurrent Starts race deliberately: each new call cancels the
// in-flight one, and a superseded call returns ErrSuperseded even if
// its pipeline finished. Cancelling ctx abandons the attempt the same
// way without touching the active puzzle.
func (s *Session) Start(ctx context.Context, src source.Source) (*Puzzle, error) {
	runCtx, gen := s.begin(ctx)
	defer s.finish(gen)

	spec := s.gridSpec(runCtx)

	raw, label, err := src.Obtain(runCtx)
	if err != nil {
		return nil, s.classify(gen, err)
	}
	img, err := s.opt.Optimize(raw, label)
	if err != nil {
		return nil, s.classify(gen, err)
	}
	pieces, err := partition.Partition(img.Pixels, spec)
	if err != nil {
		return nil, s.classify(gen, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil, ErrSuperseded
	}
	bd, err := board.New(spec, s.rng)
	if err != nil {
		return nil, err
	}
	p := &Puzzle{Image: img, Pieces: pieces, Board: bd}
	s.puzzle = p

	return p, nil
}

// begin claims a new generation and cancels whatever Start was in
// flight before it.
func (s *Session) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.generation++
	s.cancel = cancel

	return runCtx, s.generation
}

// finish releases the run context if this generation is still current.
func (s *Session) finish(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.generation && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// classify turns a stage error into ErrSuperseded when a newer Start
// stole the session mid-flight; the stage error itself is reported
// only to the call that is still current.
func (s *Session) classify(gen uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrSuperseded
	}

	return err
}

// gridSpec reads the preferred difficulty, falling back to the default
// when the store cannot answer. A broken settings database should cost
// the player their difficulty preference, not their puzzle.
func (s *Session) gridSpec(ctx context.Context) board.GridSpec {
	spec, err := s.store.GridSpec(ctx)
	if err != nil || spec.Validate() != nil {
		return board.DefaultGridSpec()
	}

	return spec
}

// SetDifficulty validates and persists the grid shape. It takes effect
// on the next Start; the active puzzle keeps its current shape.
func (s *Session) SetDifficulty(ctx context.Context, spec board.GridSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	return s.store.SetGridSpec(ctx, spec)
}

// Swap forwards a player move to the active board and reports whether
// it completed the puzzle. Returns ErrNoPuzzle before the first Start
// and board.ErrInvalidSlot for out-of-range slots.
func (s *Session) Swap(slotA, slotB int) (solved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.puzzle == nil {
		return false, ErrNoPuzzle
	}
	if err = s.puzzle.Board.Swap(slotA, slotB); err != nil {
		return false, err
	}

	return s.puzzle.Board.Solved(), nil
}

// Snapshot returns the rendering view of the active board.
// Returns ErrNoPuzzle before the first successful Start.
func (s *Session) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.puzzle == nil {
		return Snapshot{}, ErrNoPuzzle
	}
	b := s.puzzle.Board

	return Snapshot{
		Spec:   b.Spec(),
		Slots:  b.Slots(),
		Solved: b.Solved(),
		Moves:  b.Moves(),
	}, nil
}

// Current returns the active puzzle, or false before the first
// successful Start. The rendering layer reads Pieces and Image from
// it; Board mutation still goes through Swap.
func (s *Session) Current() (*Puzzle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.puzzle, s.puzzle != nil
}
