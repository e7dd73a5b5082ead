// Package patterns provides named seed patterns for the board.
// Patterns are YAML files with rows of '#' (alive) and '.' (dead); the
// built-in set is embedded, additional files can be loaded from disk.
package patterns

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-life/internal/life"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// YAMLPattern represents the YAML structure for a pattern file.
type YAMLPattern struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind,omitempty"`
	Period int      `yaml:"period,omitempty"`
	Rows   []string `yaml:"rows"`
}

// Pattern is a parsed pattern ready to be placed on a board.
type Pattern struct {
	ID     string
	Name   string
	Kind   string
	Period int
	Width  int
	Height int
	Cells  []life.Point // Live cells relative to the pattern's top-left corner
}

// Parse decodes a YAML pattern.
func Parse(data []byte) (Pattern, error) {
	var yp YAMLPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pattern{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yp.ID == "" {
		return Pattern{}, fmt.Errorf("pattern has no id")
	}
	if len(yp.Rows) == 0 {
		return Pattern{}, fmt.Errorf("pattern %q has no rows", yp.ID)
	}

	p := Pattern{
		ID:     yp.ID,
		Name:   yp.Name,
		Kind:   yp.Kind,
		Period: yp.Period,
		Height: len(yp.Rows),
	}
	if p.Name == "" {
		p.Name = p.ID
	}

	for y, row := range yp.Rows {
		x := 0
		for _, ch := range row {
			switch ch {
			case '#', 'O', 'o', '*':
				p.Cells = append(p.Cells, life.Point{X: x, Y: y})
			case '.', ' ':
			default:
				return Pattern{}, fmt.Errorf("pattern %q: unexpected %q in row %d", yp.ID, ch, y)
			}
			x++
		}
		p.Width = max(p.Width, x)
	}

	return p, nil
}

// Fits reports whether the pattern fits the playable area of a w x h grid.
func (p Pattern) Fits(w, h int) bool {
	return p.Width <= w-2*life.Border && p.Height <= h-2*life.Border
}

// Centered returns the pattern's live cells translated so the pattern sits
// in the middle of the playable area of a w x h grid. Cells that fall
// outside the playable area are the caller's to drop.
func (p Pattern) Centered(w, h int) []life.Point {
	playW := w - 2*life.Border
	playH := h - 2*life.Border
	offX := life.Border + (playW-p.Width)/2
	offY := life.Border + (playH-p.Height)/2

	points := make([]life.Point, len(p.Cells))
	for i, c := range p.Cells {
		points[i] = life.Point{X: c.X + offX, Y: c.Y + offY}
	}
	return points
}

// Library is an ordered set of patterns addressed by ID.
type Library struct {
	byID map[string]Pattern
	ids  []string
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{byID: make(map[string]Pattern)}
}

// Builtin returns the embedded pattern library.
func Builtin() (*Library, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, err
	}
	lib := NewLibrary()
	if err := lib.LoadFS(sub); err != nil {
		return nil, fmt.Errorf("patterns: builtin: %w", err)
	}
	return lib, nil
}

// Add inserts or replaces a pattern.
func (l *Library) Add(p Pattern) {
	if _, exists := l.byID[p.ID]; !exists {
		l.ids = append(l.ids, p.ID)
		sort.Strings(l.ids)
	}
	l.byID[p.ID] = p
}

// LoadFS parses every .yaml/.yml file at the root of fsys.
func (l *Library) LoadFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(path.Ext(e.Name())) {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		p, err := Parse(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		l.Add(p)
	}
	return nil
}

// Get returns the pattern with the given ID.
func (l *Library) Get(id string) (Pattern, bool) {
	p, ok := l.byID[id]
	return p, ok
}

// IDs returns all pattern IDs in sorted order.
func (l *Library) IDs() []string {
	return append([]string(nil), l.ids...)
}

// All returns all patterns sorted by ID.
func (l *Library) All() []Pattern {
	out := make([]Pattern, len(l.ids))
	for i, id := range l.ids {
		out[i] = l.byID[id]
	}
	return out
}

// Next returns the pattern after id in sorted order, wrapping around.
// An unknown or empty id yields the first pattern.
func (l *Library) Next(id string) (Pattern, bool) {
	if len(l.ids) == 0 {
		return Pattern{}, false
	}
	i := sort.SearchStrings(l.ids, id)
	if i < len(l.ids) && l.ids[i] == id {
		i++
	} else {
		i = 0
	}
	return l.byID[l.ids[i%len(l.ids)]], true
}

// Resolve looks up a pattern by ID, or loads it from disk when ref looks
// like a file path.
func (l *Library) Resolve(ref string) (Pattern, error) {
	if isSupportedExtension(filepath.Ext(ref)) {
		data, err := os.ReadFile(ref)
		if err != nil {
			return Pattern{}, fmt.Errorf("patterns: reading %s: %w", ref, err)
		}
		p, err := Parse(data)
		if err != nil {
			return Pattern{}, fmt.Errorf("patterns: parsing %s: %w", ref, err)
		}
		return p, nil
	}
	if p, ok := l.Get(ref); ok {
		return p, nil
	}
	return Pattern{}, fmt.Errorf("patterns: unknown pattern %q", ref)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
