package stage

func (s *Stage) firePlayerBullet() {
	p := s.player
	sp := s.sprites.playerBullet
	b := newEntity(sp,
		p.X+float64(p.W/2-sp.W/2),
		p.Y+float64(p.H/2-sp.H/2),
		SidePlayer)
	b.DY = -s.cfg.Player.BulletSpeed
	s.bullets.Add(b)
	p.Reload = s.cfg.Player.ReloadFrames
}

func (s *Stage) fireEnemyBullet(e *Entity) {
	sp := s.sprites.alienBullet
	b := newEntity(sp,
		e.X+float64(e.W/2-sp.W/2),
		e.Y+float64(e.H/2-sp.H/2),
		e.Side)
	b.DY = s.cfg.Formation.BulletSpeed
	s.bullets.Add(b)
	e.Reload = s.rng.Intn(s.fps) * s.cfg.Formation.ReloadSecs
}

// doBullets moves every bullet and drops those that hit something or left
// the world.
func (s *Stage) doBullets() {
	s.bullets.Sweep(func(b *Entity) bool {
		b.Move()
		if s.bulletHitPlayer(b) || s.bulletHitEnemy(b) || s.offscreen(b) {
			return false
		}
		return true
	})
}

func (s *Stage) offscreen(b *Entity) bool {
	return b.X < -float64(b.W) || b.Y < -float64(b.H) ||
		b.X > float64(s.cfg.World.Width) || b.Y > float64(s.cfg.World.Height)
}
