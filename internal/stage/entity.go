package stage

import (
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
)

// Side tells which team fired a bullet or owns an entity.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Entity is the shared shape of the player, enemies and bullets.
type Entity struct {
	X, Y   float64
	W, H   int // From the sprite at spawn
	DX, DY float64
	Health int
	Reload int // Frames until the entity may fire again
	Side   Side
	Points int
	Sprite *gfx.Sprite
}

func newEntity(sp *gfx.Sprite, x, y float64, side Side) Entity {
	return Entity{
		X:      x,
		Y:      y,
		W:      sp.W,
		H:      sp.H,
		Health: 1,
		Side:   side,
		Sprite: sp,
	}
}

// Alive reports whether the entity still has health.
func (e *Entity) Alive() bool {
	return e.Health > 0
}

// Move integrates one frame of velocity.
func (e *Entity) Move() {
	e.X += e.DX
	e.Y += e.DY
}

// Collides reports whether two entities overlap.
func (e *Entity) Collides(o *Entity) bool {
	return core.Collision(e.X, e.Y, e.W, e.H, o.X, o.Y, o.W, o.H)
}
