package stage

import (
	"github.com/vovakirdan/invaders/internal/audio"
)

// bulletHitPlayer resolves enemy fire against the ship.
func (s *Stage) bulletHitPlayer(b *Entity) bool {
	p := s.player
	if p == nil || b.Side == SidePlayer || !b.Collides(p) {
		return false
	}

	b.Health = 0
	p.Health = 0
	s.addExplosions(p.X, p.Y, s.cfg.Effects.ExplosionCount)
	s.addDebris(p)
	s.cues.Play(audio.CuePlayerDie, audio.ChannelPlayer)
	s.releasePlayer()
	return true
}

// bulletHitEnemy resolves player fire against the grid. The first live
// enemy in row-major order takes the hit.
func (s *Stage) bulletHitEnemy(b *Entity) bool {
	if b.Side == SideEnemy {
		return false
	}

	for row := range Rows {
		for col := range Cols {
			e := s.formation.Grid[row][col]
			if e == nil || !e.Alive() || !b.Collides(e) {
				continue
			}

			b.Health = 0
			e.Health = 0
			s.addExplosions(e.X, e.Y, s.cfg.Effects.ExplosionCount)
			s.addDebris(e)
			s.cues.Play(audio.CueAlienDie, audio.ChannelAny)
			s.score += e.Points
			s.sweepFormation()
			return true
		}
	}
	return false
}
