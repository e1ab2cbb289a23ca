package session_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/veltrane/tessella/board"
	"github.com/veltrane/tessella/session"
	"github.com/veltrane/tessella/settings"
)

type memSource struct {
	data  []byte
	label string
}

func (s memSource) Obtain(context.Context) ([]byte, string, error) {
	return s.data, s.label, nil
}

// ExampleSession runs the whole pipeline on a tiny in-memory PNG at
// the degenerate 1×1 difficulty, where the board is born solved.
func ExampleSession() {
	var buf bytes.Buffer
	_ = png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 16, 16)))

	ctx := context.Background()
	store := &settings.Memory{}
	_ = store.SetGridSpec(ctx, board.GridSpec{Rows: 1, Columns: 1})

	s := session.New(store, session.DefaultOptions())
	p, err := s.Start(ctx, memSource{data: buf.Bytes(), label: "Demo"})
	if err != nil {
		fmt.Println("start failed:", err)
		return
	}

	snap, _ := s.Snapshot()
	fmt.Println("label:", p.Image.SourceLabel)
	fmt.Println("pieces:", len(p.Pieces), "solved:", snap.Solved, "moves:", snap.Moves)

	// Output:
	// label: Demo
	// pieces: 1 solved: true moves: 0
}
