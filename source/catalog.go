package source

import (
	"context"
	"fmt"
	"io/fs"
	"math/rand"
	"time"

	"gopkg.in/yaml.v3"
)

// manifest is the on-disk shape of the catalog manifest.
type manifest struct {
	Assets []Entry `yaml:"assets"`
}

// Catalog is a fixed, enumerable list of bundled artworks backed by a
// filesystem (typically an embed.FS). It is immutable once loaded.
type Catalog struct {
	fsys    fs.FS
	entries []Entry
}

// LoadCatalog reads a YAML manifest from fsys and returns the catalog
// it describes. The manifest lists entries under an "assets" key; every
// entry must name a file. Returns ErrBadManifest for unreadable or
// incomplete manifests and ErrEmptyCatalog when no entries are listed.
func LoadCatalog(fsys fs.FS, manifestPath string) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}
	var m manifest
	if err = yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}
	if len(m.Assets) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, e := range m.Assets {
		if e.File == "" {
			return nil, fmt.Errorf("%w: entry %d has no file", ErrBadManifest, i)
		}
	}

	return &Catalog{fsys: fsys, entries: m.Assets}, nil
}

// Entries returns a copy of the catalog entries in manifest order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// ByCategory returns the entries whose Category equals cat, in
// manifest order. An unknown category yields an empty slice.
func (c *Catalog) ByCategory(cat string) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}

	return out
}

// Random picks one entry uniformly at random and returns a Source for
// it. rng may be nil (time-seeded).
func (c *Catalog) Random(rng *rand.Rand) Source {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c.Open(c.entries[rng.Intn(len(c.entries))])
}

// Open returns a Source reading the given entry's bytes by filename.
// The entry does not need to originate from this catalog as long as its
// File resolves inside the catalog filesystem.
func (c *Catalog) Open(e Entry) Source {
	return catalogSource{fsys: c.fsys, entry: e}
}

type catalogSource struct {
	fsys  fs.FS
	entry Entry
}

// Obtain reads the entry's file from the catalog filesystem. A missing
// or unreadable asset maps to ErrSourceUnavailable: bundled art can
// disappear when an expansion pack is uninstalled underneath us.
func (s catalogSource) Obtain(ctx context.Context) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	raw, err := fs.ReadFile(s.fsys, s.entry.File)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return raw, s.entry.DisplayName, nil
}
