// Package core provides the host-side primitives of the game: screen buffer,
// geometry, input frames and runtime configuration. It has no terminal
// dependencies so game code stays testable.
package core

import "cmp"

// Box is an axis-aligned box in world units, positioned by its center.
// World coordinates are floats because the simulation moves bricks and the
// car continuously.
type Box struct {
	CX, CY float64 // Center
	W, H   float64 // Width and height
}

// NewBox creates a box centered on (cx, cy).
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.H/2 }

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	if b.Left() >= other.Right() || other.Left() >= b.Right() {
		return false
	}
	if b.Top() >= other.Bottom() || other.Top() >= b.Bottom() {
		return false
	}
	return true
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return max(lo, min(hi, val))
}
