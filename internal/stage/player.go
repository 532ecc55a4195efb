package stage

import (
	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/core"
)

func (s *Stage) initPlayer() {
	pc := s.cfg.Player
	p := newEntity(s.sprites.player, pc.X, pc.Y, SidePlayer)
	s.player = &p
}

// doPlayer steers and fires the ship from the current input.
func (s *Stage) doPlayer(in core.InputFrame) {
	p := s.player
	if p == nil {
		return
	}
	pc := s.cfg.Player

	p.DX = 0
	if p.Reload > 0 {
		p.Reload--
	}
	if in.Has(core.ActionLeft) {
		p.DX = -pc.Speed
	}
	if in.Has(core.ActionRight) {
		p.DX = pc.Speed
	}
	if in.Has(core.ActionFire) && p.Reload <= 0 {
		s.cues.Play(audio.CuePlayerFire, audio.ChannelPlayer)
		s.firePlayerBullet()
	}

	p.Move()

	if p.Health == 0 {
		s.releasePlayer()
	}
}

// releasePlayer is the only way the player slot becomes empty.
func (s *Stage) releasePlayer() {
	s.player = nil
}

// clipPlayer keeps the ship inside the side margins.
func (s *Stage) clipPlayer() {
	p := s.player
	if p == nil {
		return
	}
	margin := float64(s.cfg.Player.Margin)
	right := float64(s.cfg.World.Width) - margin - float64(p.W)
	if p.X < margin {
		p.X = margin
	}
	if p.X > right {
		p.X = right
	}
}
