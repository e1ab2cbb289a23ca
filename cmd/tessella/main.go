// Command tessella slices images into puzzle pieces from the shell:
// a development aid for inspecting what the pipeline hands the game UI.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/disintegration/imaging"

	"github.com/veltrane/tessella/board"
	"github.com/veltrane/tessella/optimize"
	"github.com/veltrane/tessella/partition"
	"github.com/veltrane/tessella/session"
	"github.com/veltrane/tessella/settings"
	"github.com/veltrane/tessella/source"
)

const desc = `Slices an image into a grid of puzzle pieces, optionally scrambling them back into a preview.`

var cli struct {
	Slice    sliceCmd    `cmd:"" help:"Cut an image into rows×cols piece files."`
	Scramble scrambleCmd `cmd:"" help:"Cut, shuffle and reassemble a scrambled preview image."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("tessella"),
		kong.Description(desc),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

type sliceCmd struct {
	Input   string `arg:"" help:"Input image (jpeg/png/gif/webp/bmp/tiff)."`
	Rows    int    `default:"3" help:"Grid rows."`
	Cols    int    `default:"3" help:"Grid columns."`
	Out     string `default:"pieces" help:"Output directory for piece files."`
	MaxEdge int    `default:"2048" help:"Long-edge cap applied before slicing."`
}

func (c *sliceCmd) Run() error {
	pieces, _, err := cut(c.Input, c.Rows, c.Cols, c.MaxEdge)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(c.Out, 0o755); err != nil {
		return err
	}
	for _, p := range pieces {
		name := filepath.Join(c.Out, fmt.Sprintf("piece_%02d.png", p.Index))
		if err = imaging.Save(p.Bitmap, name); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
	}
	log.Printf("wrote %d pieces to %s", len(pieces), c.Out)

	return nil
}

type scrambleCmd struct {
	Input   string `arg:"" help:"Input image."`
	Rows    int    `default:"3" help:"Grid rows."`
	Cols    int    `default:"3" help:"Grid columns."`
	Out     string `default:"scrambled.png" help:"Output preview file."`
	MaxEdge int    `default:"2048" help:"Long-edge cap applied before slicing."`
	Seed    int64  `default:"0" help:"Shuffle seed; 0 means time-seeded."`
}

func (c *scrambleCmd) Run() error {
	pieces, img, err := cut(c.Input, c.Rows, c.Cols, c.MaxEdge)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if c.Seed != 0 {
		rng = rand.New(rand.NewSource(c.Seed))
	}
	spec := board.GridSpec{Rows: c.Rows, Columns: c.Cols}
	bd, err := board.New(spec, rng)
	if err != nil {
		return err
	}

	// Paste each piece at its slot's anchor. Remainder pieces from the
	// last row/column keep their own size, so edges may crop or leave a
	// sliver; good enough for a scramble preview.
	canvas := imaging.New(img.Width, img.Height, color.Transparent)
	for slot, rect := range pieceRects(pieces) {
		pieceIdx, pieceErr := bd.Piece(slot)
		if pieceErr != nil {
			return pieceErr
		}
		canvas = imaging.Paste(canvas, pieces[pieceIdx].Bitmap, rect.Min)
	}
	if err = imaging.Save(canvas, c.Out); err != nil {
		return fmt.Errorf("save %s: %w", c.Out, err)
	}
	log.Printf("wrote scrambled %dx%d preview (%d pieces) to %s",
		img.Width, img.Height, spec.PieceCount(), c.Out)

	return nil
}

// pieceRects returns each slot's source rectangle, indexed by slot.
// Slots and solved piece indices share the same row-major geometry.
func pieceRects(pieces []partition.Piece) []image.Rectangle {
	rects := make([]image.Rectangle, len(pieces))
	for _, p := range pieces {
		rects[p.Index] = p.Rect
	}

	return rects
}

// cut runs the shared obtain→optimize→partition front half of both
// commands through the same session machinery the game uses.
func cut(input string, rows, cols, maxEdge int) ([]partition.Piece, *optimize.Image, error) {
	ctx := context.Background()
	store := &settings.Memory{}
	if err := store.SetGridSpec(ctx, board.GridSpec{Rows: rows, Columns: cols}); err != nil {
		return nil, nil, err
	}

	opts := session.DefaultOptions()
	if maxEdge > 0 {
		opts.Optimizer = optimize.Optimizer{MaxLongEdge: maxEdge, Filter: imaging.Lanczos}
	}
	s := session.New(store, opts)

	p, err := s.Start(ctx, source.File(input, ""))
	if err != nil {
		return nil, nil, err
	}

	return p.Pieces, p.Image, nil
}
