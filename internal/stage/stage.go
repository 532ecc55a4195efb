// Package stage is the fixed-timestep simulation of one round: the player
// ship, the enemy formation, projectiles and particles.
//
// Logic advances exactly one frame. All randomness comes from the
// injected source, so a seed and an input sequence fully determine a run.
package stage

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
)

// Phase is the round lifecycle.
type Phase int

const (
	PhaseActive Phase = iota // Playing
	PhaseEnding              // Player dead or grid cleared, counting down
	PhaseOver                // Score ready to submit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseEnding:
		return "ending"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Options wires a stage to its collaborators.
type Options struct {
	Config     config.InvadersConfig
	Catalog    *gfx.Catalog
	Cues       audio.Player    // nil plays nothing
	Rand       *rand.Rand      // nil uses a fixed seed
	Background *gfx.Background // Scrolled each frame; may be nil
}

type sprites struct {
	player       *gfx.Sprite
	playerBullet *gfx.Sprite
	alienBullet  *gfx.Sprite
	explosion    *gfx.Sprite
	rows         [Rows]*gfx.Sprite
}

func loadSprites(cat *gfx.Catalog, cfg config.InvadersConfig) (sprites, error) {
	var sp sprites
	var err error

	load := func(id string) *gfx.Sprite {
		if err != nil {
			return nil
		}
		var s *gfx.Sprite
		s, err = cat.Load(id)
		return s
	}

	sp.player = load(cfg.Player.Sprite)
	sp.playerBullet = load(cfg.Player.BulletSprite)
	sp.alienBullet = load(cfg.Formation.BulletSprite)
	sp.explosion = load(cfg.Effects.ExplosionSprite)
	for row := range Rows {
		sp.rows[row] = load(cfg.Formation.Rows[row].Sprite)
	}
	if err != nil {
		return sprites{}, fmt.Errorf("stage: %w", err)
	}
	return sp, nil
}

// Stage owns every entity of a round.
type Stage struct {
	cfg     config.InvadersConfig
	fps     int
	sprites sprites
	cues    audio.Player
	rng     *rand.Rand
	bg      *gfx.Background

	player     *Entity
	formation  Formation
	bullets    Pool[Entity]
	explosions Pool[Explosion]
	debris     Pool[Debris]

	score int
	grace int
	phase Phase
	tick  uint64
}

// New resolves the stage's sprites and starts a fresh round.
func New(opts Options) (*Stage, error) {
	if opts.Catalog == nil {
		return nil, errors.New("stage: no sprite catalog")
	}
	if len(opts.Config.Formation.Rows) != Rows {
		return nil, fmt.Errorf("stage: formation needs %d rows, got %d", Rows, len(opts.Config.Formation.Rows))
	}
	sp, err := loadSprites(opts.Catalog, opts.Config)
	if err != nil {
		return nil, err
	}

	s := &Stage{
		cfg:     opts.Config,
		fps:     max(opts.Config.World.FPS, 1),
		sprites: sp,
		cues:    opts.Cues,
		rng:     opts.Rand,
		bg:      opts.Background,
	}
	if s.cues == nil {
		s.cues = audio.Silent{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(0))
	}
	s.Reset()
	return s, nil
}

// Reset drops the current round and deals a new one.
func (s *Stage) Reset() {
	s.bullets.Clear()
	s.explosions.Clear()
	s.debris.Clear()

	s.initPlayer()
	s.initFormation()

	s.score = 0
	s.grace = s.cfg.Secs(s.cfg.Stage.GraceSecs)
	s.phase = PhaseActive
	s.tick = 0
}

// Logic advances the round by one frame. It does nothing once the round is
// over.
func (s *Stage) Logic(in core.InputFrame) {
	if s.phase == PhaseOver {
		return
	}
	s.tick++

	if s.bg != nil {
		s.bg.Scroll()
	}
	s.doPlayer(in)
	s.doFormation()
	s.doBullets()
	s.doExplosions()
	s.doDebris()
	s.clipFormation()
	s.clipPlayer()

	if s.player == nil || s.formation.Cleared {
		s.phase = PhaseEnding
		s.grace--
		if s.grace <= 0 {
			s.phase = PhaseOver
		}
	}
}

// Phase returns the lifecycle state.
func (s *Stage) Phase() Phase {
	return s.phase
}

// Score returns the points earned this round.
func (s *Stage) Score() int {
	return s.score
}

// Player returns the ship, or nil once it is destroyed.
func (s *Stage) Player() *Entity {
	return s.player
}

// Formation returns the enemy grid.
func (s *Stage) Formation() *Formation {
	return &s.formation
}

// Bullets returns the live projectiles.
func (s *Stage) Bullets() *Pool[Entity] {
	return &s.bullets
}

// Explosions returns the live sparks.
func (s *Stage) Explosions() *Pool[Explosion] {
	return &s.explosions
}

// Debris returns the live debris.
func (s *Stage) Debris() *Pool[Debris] {
	return &s.debris
}
