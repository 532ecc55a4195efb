// Package core provides the shared primitives of the game: collision
// geometry, the cell screen buffer, colors, and the per-frame input snapshot.
// It has no external dependencies so the simulation stays pure and testable.
package core

// Collision reports whether two axis-aligned boxes overlap.
// Boxes are given by top-left corner and size, world coordinates in pixels.
// Touching edges do not count as overlap.
func Collision(x1, y1 float64, w1, h1 int, x2, y2 float64, w2, h2 int) bool {
	return x1 < x2+float64(w2) &&
		x1+float64(w1) > x2 &&
		y1 < y2+float64(h2) &&
		y1+float64(h1) > y2
}

// Rect is an integer axis-aligned box, used for sprite source regions and
// cell-space layout.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return Collision(float64(r.X), float64(r.Y), r.W, r.H,
		float64(other.X), float64(other.Y), other.W, other.H)
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
