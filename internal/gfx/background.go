package gfx

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/invaders/internal/core"
)

type star struct {
	x, y  float64
	glyph rune
	color core.Color
}

// Background is a starfield that scrolls upward one pixel per tick and
// wraps at the world height. It is shared by every screen mode.
type Background struct {
	width, height int
	offset        int
	stars         []star
}

// NewBackground scatters n stars over a width x height world.
func NewBackground(rng *rand.Rand, width, height, n int) *Background {
	b := &Background{width: width, height: height}
	for range n {
		s := star{
			x:     float64(rng.Intn(max(width, 1))),
			y:     float64(rng.Intn(max(height, 1))),
			glyph: '.',
			color: core.ColorGray,
		}
		switch rng.Intn(6) {
		case 0:
			s.glyph, s.color = '+', core.ColorWhite
		case 1:
			s.glyph = '·'
		}
		b.stars = append(b.stars, s)
	}
	return b
}

// Scroll advances the starfield by one tick.
func (b *Background) Scroll() {
	b.offset--
	if b.offset < -b.height {
		b.offset = 0
	}
}

// Offset returns the current scroll position, in [-height, 0].
func (b *Background) Offset() int {
	return b.offset
}

// Draw renders the stars beneath everything else.
func (b *Background) Draw(c *Canvas) {
	if b.height <= 0 {
		return
	}
	h := float64(b.height)
	for _, s := range b.stars {
		y := math.Mod(s.y+float64(b.offset), h)
		if y < 0 {
			y += h
		}
		sx, sy := c.vp.Cell(s.x, y)
		if c.inWorld(sx, sy) {
			c.screen.SetCell(sx, sy, s.glyph, s.color)
		}
	}
}
