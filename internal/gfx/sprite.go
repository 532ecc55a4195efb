// Package gfx resolves visual assets and draws them into the terminal cell
// buffer. The game world is measured in logical pixels; a Canvas maps that
// space onto whatever terminal size is available.
package gfx

import (
	"github.com/vovakirdan/invaders/internal/core"
)

// Logical pixel size of one art glyph.
const (
	GlyphW = 12
	GlyphH = 24
)

// Sprite is a resolved visual asset. W and H are its logical size in
// pixels and never change after loading.
type Sprite struct {
	ID    string
	Color core.Color
	W, H  int
	art   [][]rune
}

func newSprite(id string, color core.Color, rows []string) *Sprite {
	cols := 0
	art := make([][]rune, len(rows))
	for i, row := range rows {
		art[i] = []rune(row)
		cols = max(cols, len(art[i]))
	}
	for i := range art {
		for len(art[i]) < cols {
			art[i] = append(art[i], ' ')
		}
	}
	return &Sprite{
		ID:    id,
		Color: color,
		W:     cols * GlyphW,
		H:     len(art) * GlyphH,
		art:   art,
	}
}

// Cols returns the art width in glyphs.
func (s *Sprite) Cols() int {
	if len(s.art) == 0 {
		return 0
	}
	return len(s.art[0])
}

// Rows returns the art height in glyphs.
func (s *Sprite) Rows() int {
	return len(s.art)
}

// At returns the glyph covering sprite-local pixel (px, py). Coordinates
// outside the sprite are clamped to the nearest edge glyph.
func (s *Sprite) At(px, py int) rune {
	if len(s.art) == 0 {
		return ' '
	}
	row := core.Clamp(py/GlyphH, 0, len(s.art)-1)
	col := core.Clamp(px/GlyphW, 0, len(s.art[row])-1)
	return s.art[row][col]
}
