package sprites

import (
	"fmt"

	"github.com/pthm-cable/komodo/components"
)

// AnimTiming controls frame cycling of a stage sprite.
type AnimTiming struct {
	FrameInterval  int64
	EatingDuration int64
}

// Animated is a life-stage sprite: an idle loop plus an optional one-shot
// eating loop that reverts to idle after EatingDuration.
type Animated struct {
	normal components.Frames
	eating components.Frames
	anchor components.Position
	timing AnimTiming

	clock           frameClock
	isEating        bool
	eatingStartedAt int64
}

// NewAnimated creates a stage sprite centered on anchor. eating may be empty.
func NewAnimated(normal, eating components.Frames, anchor components.Position, timing AnimTiming, now int64) (*Animated, error) {
	if len(normal) == 0 {
		return nil, fmt.Errorf("animated sprite: %w", ErrNoFrames)
	}
	return &Animated{
		normal: normal,
		eating: eating,
		anchor: anchor,
		timing: timing,
		clock:  frameClock{lastAt: now, interval: timing.FrameInterval},
	}, nil
}

// Update advances the active loop.
func (a *Animated) Update(now int64) {
	if a.isEating {
		if now-a.eatingStartedAt >= a.timing.EatingDuration {
			a.isEating = false
			a.clock.index = 0
			return
		}
		a.clock.step(now, len(a.eating))
		return
	}
	a.clock.step(now, len(a.normal))
}

// StartEating switches to the eating loop from its first frame.
// Stages shipped without eating frames ignore the call.
func (a *Animated) StartEating(now int64) {
	if len(a.eating) == 0 {
		return
	}
	a.isEating = true
	a.eatingStartedAt = now
	a.clock.reset(now)
}

// Eating reports whether the eating loop is playing.
func (a *Animated) Eating() bool {
	return a.isEating
}

// Frame returns the index into the active loop.
func (a *Animated) Frame() int {
	return a.clock.index
}

// Image returns the frame to draw this tick.
func (a *Animated) Image() components.Image {
	frames := a.normal
	if a.isEating {
		frames = a.eating
	}
	return frames[a.clock.index%len(frames)]
}

// Position returns the sprite center.
func (a *Animated) Position() components.Position {
	return a.anchor
}

// HitRegion returns the drop target for feeding, sized by the first idle frame.
func (a *Animated) HitRegion() components.Rect {
	return regionOf(a.normal[0], a.anchor)
}
