package gfx

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/invaders/internal/core"
)

// Align selects how Text positions a string relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// glowRamp orders glyphs from faint to bright for additive particles.
var glowRamp = []rune("·∙•*✶✷✸✹")

// glowStep is the accumulated light needed to advance one ramp glyph.
const glowStep = 24

// Viewport maps world pixels onto terminal cells. Cells are assumed to be
// twice as tall as they are wide, so one row spans two columns of pixels.
type Viewport struct {
	OffX, OffY int     // Cell offset of the world's top-left corner
	Cols, Rows int     // Cells covered by the world
	PxPerCol   float64 // World pixels per cell column
	PxPerRow   float64 // World pixels per cell row
}

// NewViewport fits a worldW x worldH playfield into a screen, preserving
// aspect and centering it.
func NewViewport(screenW, screenH, worldW, worldH int) Viewport {
	screenW = max(screenW, 1)
	screenH = max(screenH, 1)

	pxPerRow := math.Max(float64(worldH)/float64(screenH), 2*float64(worldW)/float64(screenW))
	if pxPerRow <= 0 {
		pxPerRow = 1
	}
	pxPerCol := pxPerRow / 2

	cols := min(int(math.Ceil(float64(worldW)/pxPerCol)), screenW)
	rows := min(int(math.Ceil(float64(worldH)/pxPerRow)), screenH)
	return Viewport{
		OffX:     (screenW - cols) / 2,
		OffY:     (screenH - rows) / 2,
		Cols:     cols,
		Rows:     rows,
		PxPerCol: pxPerCol,
		PxPerRow: pxPerRow,
	}
}

// Cell returns the screen cell containing world point (x, y).
func (v Viewport) Cell(x, y float64) (int, int) {
	return v.OffX + int(math.Floor(x/v.PxPerCol)), v.OffY + int(math.Floor(y/v.PxPerRow))
}

// span returns the first and last local cell index covered by [pos, pos+size).
func span(pos float64, size int, pxPerCell float64) (int, int) {
	first := int(math.Floor(pos / pxPerCell))
	last := int(math.Floor((pos + float64(max(size, 1)) - 1) / pxPerCell))
	return first, max(first, last)
}

// Canvas draws sprites and text in world coordinates onto a Screen.
type Canvas struct {
	screen *core.Screen
	vp     Viewport
}

// NewCanvas creates a canvas for a worldW x worldH playfield.
func NewCanvas(screen *core.Screen, worldW, worldH int) *Canvas {
	return &Canvas{
		screen: screen,
		vp:     NewViewport(screen.Width(), screen.Height(), worldW, worldH),
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Viewport returns the world-to-cell mapping in use.
func (c *Canvas) Viewport() Viewport {
	return c.vp
}

func (c *Canvas) inWorld(col, row int) bool {
	return col >= c.vp.OffX && col < c.vp.OffX+c.vp.Cols &&
		row >= c.vp.OffY && row < c.vp.OffY+c.vp.Rows
}

// Blit draws a whole sprite with its top-left corner at (x, y).
func (c *Canvas) Blit(sp *Sprite, x, y float64) {
	c.BlitRect(sp, core.NewRect(0, 0, sp.W, sp.H), x, y)
}

// BlitRect draws the src region of a sprite, in sprite pixels, with its
// top-left corner at (x, y). Blank glyphs are transparent.
func (c *Canvas) BlitRect(sp *Sprite, src core.Rect, x, y float64) {
	if sp == nil || src.Empty() {
		return
	}
	c0, c1 := span(x, src.W, c.vp.PxPerCol)
	r0, r1 := span(y, src.H, c.vp.PxPerRow)

	for r := r0; r <= r1; r++ {
		// Sample the glyph under the cell center, clamped into the region.
		py := int((float64(r)+0.5)*c.vp.PxPerRow - y)
		py = core.Clamp(py, 0, src.H-1)
		for col := c0; col <= c1; col++ {
			px := int((float64(col)+0.5)*c.vp.PxPerCol - x)
			px = core.Clamp(px, 0, src.W-1)

			glyph := sp.At(src.X+px, src.Y+py)
			if glyph == ' ' {
				continue
			}
			sx, sy := c.vp.OffX+col, c.vp.OffY+r
			if c.inWorld(sx, sy) {
				c.screen.SetCell(sx, sy, glyph, sp.Color)
			}
		}
	}
}

// Glow adds light at world point (x, y). Overlapping calls accumulate, and
// the cell glyph brightens along the glow ramp.
func (c *Canvas) Glow(x, y float64, color core.Color, amount int) {
	if amount <= 0 {
		return
	}
	sx, sy := c.vp.Cell(x, y)
	if !c.inWorld(sx, sy) {
		return
	}
	prev := c.screen.GetCell(sx, sy).Glow
	level := min((prev+amount)/glowStep, len(glowRamp)-1)
	c.screen.AddGlow(sx, sy, amount, glowRamp[level], color)
}

// Text draws formatted text anchored at world point (x, y).
func (c *Canvas) Text(x, y int, align Align, color core.Color, format string, args ...any) {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	sx, sy := c.vp.Cell(float64(x), float64(y))
	n := utf8.RuneCountInString(text)
	switch align {
	case AlignCenter:
		sx -= n / 2
	case AlignRight:
		sx -= n
	}
	c.screen.DrawText(sx, sy, text, color)
}

// Frame outlines the world area when the terminal is larger than it.
func (c *Canvas) Frame(color core.Color) {
	left, right := c.vp.OffX-1, c.vp.OffX+c.vp.Cols
	for row := c.vp.OffY; row < c.vp.OffY+c.vp.Rows; row++ {
		if left >= 0 {
			c.screen.SetCell(left, row, '│', color)
		}
		if right < c.screen.Width() {
			c.screen.SetCell(right, row, '│', color)
		}
	}
}
