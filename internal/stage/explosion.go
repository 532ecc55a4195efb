package stage

import (
	"github.com/vovakirdan/invaders/internal/core"
)

// explosionTints are the burst colors, hot to white.
var explosionTints = [4]core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightWhite,
}

// Explosion is one additive spark of a burst.
type Explosion struct {
	X, Y   float64
	DX, DY float64
	Color  core.Color
	Alpha  int // Remaining brightness; the spark dies at zero

	fresh bool // Spawned this frame; ages from the next one
}

// addExplosions scatters n sparks around (x, y).
func (s *Stage) addExplosions(x, y float64, n int) {
	spread := max(s.cfg.Effects.ExplosionSpread, 1)
	for range n {
		ex := Explosion{
			X:     x + float64(s.rng.Intn(spread)-s.rng.Intn(spread)),
			Y:     y + float64(s.rng.Intn(spread)-s.rng.Intn(spread)),
			DX:    float64(s.rng.Intn(10)-s.rng.Intn(10)) / 10,
			DY:    float64(s.rng.Intn(10)-s.rng.Intn(10)) / 10,
			Color: explosionTints[s.rng.Intn(len(explosionTints))],
			fresh: true,
		}
		ex.Alpha = s.rng.Intn(s.fps) * s.cfg.Effects.ExplosionLifeSecs
		s.explosions.Add(ex)
	}
}

func (s *Stage) doExplosions() {
	s.explosions.Sweep(func(ex *Explosion) bool {
		if ex.fresh {
			ex.fresh = false
			return true
		}
		ex.X += ex.DX
		ex.Y += ex.DY
		ex.Alpha--
		return ex.Alpha > 0
	})
}
