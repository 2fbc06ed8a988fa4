// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no third-party dependencies so game logic
// stays pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// AABB is an axis-aligned box described by its center and half extents.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// Min returns the lower-left corner.
func (b AABB) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the upper-right corner.
func (b AABB) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Overlap returns the penetration depth on each axis. Both values are
// positive only when the boxes intersect.
func (b AABB) Overlap(o AABB) (dx, dy float64) {
	dx = b.Half.X + o.Half.X - math.Abs(b.Center.X-o.Center.X)
	dy = b.Half.Y + o.Half.Y - math.Abs(b.Center.Y-o.Center.Y)
	return dx, dy
}

// Intersects returns true if the boxes overlap with positive area.
func (b AABB) Intersects(o AABB) bool {
	dx, dy := b.Overlap(o)
	return dx > 0 && dy > 0
}

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
