package stage

import (
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
)

// Draw renders the round. hiScore is the best score on the table, shown
// in the HUD.
func (s *Stage) Draw(c *gfx.Canvas, hiScore int) {
	if s.bg != nil {
		s.bg.Draw(c)
	}

	if p := s.player; p != nil {
		c.Blit(p.Sprite, p.X, p.Y)
	}

	for row := range Rows {
		for col := range Cols {
			if e := s.formation.Grid[row][col]; e != nil {
				c.Blit(e.Sprite, e.X, e.Y)
			}
		}
	}

	s.bullets.Each(func(b *Entity) {
		c.Blit(b.Sprite, b.X, b.Y)
	})

	// Sparks glow from the center of the explosion sprite.
	ox, oy := float64(s.sprites.explosion.W/2), float64(s.sprites.explosion.H/2)
	s.explosions.Each(func(ex *Explosion) {
		c.Glow(ex.X+ox, ex.Y+oy, ex.Color, ex.Alpha)
	})

	s.debris.Each(func(d *Debris) {
		c.BlitRect(d.Sprite, d.Src, d.X, d.Y)
	})

	s.drawHUD(c, hiScore)
}

func (s *Stage) drawHUD(c *gfx.Canvas, hiScore int) {
	mid := s.cfg.World.Width / 2

	c.Text(100, 10, gfx.AlignCenter, core.ColorWhite, "SCORE<1>")
	c.Text(100, 40, gfx.AlignCenter, core.ColorWhite, "%04d", s.score)

	color := core.ColorWhite
	if s.score >= hiScore {
		color = core.ColorBrightGreen
	}
	c.Text(mid, 10, gfx.AlignCenter, color, "HI-SCORE")
	c.Text(mid, 40, gfx.AlignCenter, color, "%04d", hiScore)
}
