package sprites

import (
	"fmt"

	"github.com/pthm-cable/komodo/components"
)

// Burst is a fire-and-forget transition effect that plays its frames once.
type Burst struct {
	frames components.Frames
	origin components.Position
	clock  frameClock
	done   bool
}

// NewBurst creates a burst centered on origin.
func NewBurst(frames components.Frames, origin components.Position, now, frameInterval int64) (*Burst, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("burst: %w", ErrNoFrames)
	}
	return &Burst{
		frames: frames,
		origin: origin,
		clock:  frameClock{lastAt: now, interval: frameInterval},
	}, nil
}

// Update advances one frame per interval and finishes after the last one.
func (b *Burst) Update(now int64) {
	if b.done || now-b.clock.lastAt <= b.clock.interval {
		return
	}
	b.clock.lastAt = now
	b.clock.index++
	if b.clock.index >= len(b.frames) {
		b.clock.index = len(b.frames) - 1
		b.done = true
	}
}

// Done reports whether every frame has been shown.
func (b *Burst) Done() bool {
	return b.done
}

// Frame returns the current frame index.
func (b *Burst) Frame() int {
	return b.clock.index
}

func (b *Burst) Image() components.Image {
	return b.frames[b.clock.index]
}

func (b *Burst) Position() components.Position {
	return b.origin
}

func (b *Burst) HitRegion() components.Rect {
	return regionOf(b.Image(), b.origin)
}
