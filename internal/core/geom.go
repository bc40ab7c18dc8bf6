// Package core provides fundamental types and utilities shared by the game
// and the terminal platform. It has no Bubble Tea dependency so game logic
// stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
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

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box in world units.
// Y grows downward, so Top() < Bottom().
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// BoxFromCenter builds a box of size (w, h) centered on c.
func BoxFromCenter(c Vec2, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// BoxFromBottomLeft builds a box of size (w, h) whose bottom-left corner is p.
func BoxFromBottomLeft(p Vec2, w, h float64) Box {
	return Box{X: p.X, Y: p.Y - h, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
