// Package components defines the small value types shared by the game core.
package components

// Position represents a screen position. Sprites are anchored at their center.
type Position struct {
	X, Y float32
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy float32) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle used for hit regions.
type Rect struct {
	X, Y          float32 // Top-left corner
	Width, Height float32
}

// RectAround returns a w x h rectangle centered on c.
func RectAround(c Position, w, h float32) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Contains reports whether p lies inside r. Edges are inclusive on the
// top-left and exclusive on the bottom-right.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the center point of r.
func (r Rect) Center() Position {
	return Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
