// Package sprites implements the animated entities of the game: the per-stage
// pet sprite, the hatching egg, wandering flies and transition bursts.
// All of them are advanced with the game-clock timestamp of the current tick.
package sprites

import (
	"errors"

	"github.com/pthm-cable/komodo/components"
)

// ErrNoFrames is returned when a sprite is constructed without frames.
var ErrNoFrames = errors.New("sprite has no frames")

// Sprite is the capability set shared by every drawable entity.
type Sprite interface {
	Update(now int64)
	Image() components.Image
	Position() components.Position
	HitRegion() components.Rect
}

var (
	_ Sprite = (*Animated)(nil)
	_ Sprite = (*Egg)(nil)
	_ Sprite = (*Fly)(nil)
	_ Sprite = (*Burst)(nil)
)

// frameClock cycles an index through a frame sequence at a fixed interval.
type frameClock struct {
	index    int
	lastAt   int64
	interval int64
}

// step advances to the next frame (modulo n) once more than interval has
// elapsed since the last advance. Reports whether the index moved.
func (c *frameClock) step(now int64, n int) bool {
	if n == 0 || now-c.lastAt <= c.interval {
		return false
	}
	c.lastAt = now
	c.index = (c.index + 1) % n
	return true
}

func (c *frameClock) reset(now int64) {
	c.index = 0
	c.lastAt = now
}

// regionOf returns the hit region of img centered on pos.
func regionOf(img components.Image, pos components.Position) components.Rect {
	if img == nil {
		return components.Rect{X: pos.X, Y: pos.Y}
	}
	return components.RectAround(pos, img.Width(), img.Height())
}
