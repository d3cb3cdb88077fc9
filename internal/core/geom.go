// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
// Used for menus, overlays and anything drawn on the character grid.
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

// Vec2 is a point in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Box is an axis-aligned hitbox in world units.
// (X, Y) is the bottom-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Overlaps reports whether two boxes intersect.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && b.Right() > o.X && b.Y < o.Top() && b.Top() > o.Y
}

// Circle is a round hitbox in world units.
type Circle struct {
	Center Vec2
	Radius float64
}

// Overlaps reports whether two circles intersect.
// Tangent circles do not count as an overlap.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Dist(o.Center) < c.Radius+o.Radius
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
