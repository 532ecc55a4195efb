package stage

import (
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
)

// Debris is one falling quarter of a destroyed sprite.
type Debris struct {
	X, Y   float64
	DX, DY float64
	Sprite *gfx.Sprite
	Src    core.Rect // Region of the sprite, in sprite pixels
	Life   int
}

// addDebris breaks an entity into four quadrants flung from its center.
func (s *Stage) addDebris(e *Entity) {
	w, h := e.W/2, e.H/2
	life := s.cfg.Secs(s.cfg.Effects.DebrisLifeSecs)

	for _, y := range [2]int{0, h} {
		for _, x := range [2]int{0, w} {
			s.debris.Add(Debris{
				X:      e.X + float64(e.W/2),
				Y:      e.Y + float64(e.H/2),
				DX:     float64(s.rng.Intn(5) - s.rng.Intn(5)),
				DY:     -float64(5 + s.rng.Intn(12)),
				Sprite: e.Sprite,
				Src:    core.NewRect(x, y, w, h),
				Life:   life,
			})
		}
	}
}

func (s *Stage) doDebris() {
	gravity := s.cfg.Effects.DebrisGravity
	s.debris.Sweep(func(d *Debris) bool {
		d.X += d.DX
		d.Y += d.DY
		d.DY += gravity
		d.Life--
		return d.Life > 0
	})
}
