package sprites

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/komodo/components"
)

// EggPhase is the hatch state of an egg.
type EggPhase uint8

const (
	EggPending   EggPhase = iota // Resting before the first crack
	EggAnimating                 // Revealing crack frames
	EggHatched                   // Terminal
)

func (p EggPhase) String() string {
	switch p {
	case EggPending:
		return "pending"
	case EggAnimating:
		return "animating"
	case EggHatched:
		return "hatched"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// EggTiming controls the hatch animation.
type EggTiming struct {
	StartDelay       int64
	FrameDelay       int64
	StartShake       int
	FrameShake       int
	ShakeDecayChance float64 // Per-update chance the shake loses one pixel
}

// Egg plays a one-shot hatch animation: a pause, then one frame per
// FrameDelay until the sequence runs out.
type Egg struct {
	frames components.Frames
	anchor components.Position
	timing EggTiming
	rng    *rand.Rand

	index       int
	createdAt   int64
	lastFrameAt int64
	phase       EggPhase
	justHatched bool

	shake            int
	jitterX, jitterY float32
}

// NewEgg creates an egg centered on anchor. It fails without frames.
func NewEgg(frames components.Frames, anchor components.Position, now int64, timing EggTiming, rng *rand.Rand) (*Egg, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("egg: %w", ErrNoFrames)
	}
	return &Egg{
		frames:      frames,
		anchor:      anchor,
		timing:      timing,
		rng:         rng,
		createdAt:   now,
		lastFrameAt: now,
	}, nil
}

// Update advances the hatch state machine and the shake jitter.
func (e *Egg) Update(now int64) {
	e.justHatched = false

	switch e.phase {
	case EggPending:
		if now-e.createdAt > e.timing.StartDelay {
			e.phase = EggAnimating
			e.shake = e.timing.StartShake
			e.lastFrameAt = now
		}
	case EggAnimating:
		if now-e.lastFrameAt > e.timing.FrameDelay {
			e.lastFrameAt = now
			e.index++
			e.shake = e.timing.FrameShake
			if e.index >= len(e.frames) {
				e.index = len(e.frames) - 1
				e.phase = EggHatched
				e.justHatched = true
			}
		}
	}

	e.updateShake()
}

// updateShake jitters the draw position around the anchor while shake lasts.
func (e *Egg) updateShake() {
	if e.shake <= 0 {
		e.jitterX, e.jitterY = 0, 0
		return
	}
	span := 2*e.shake + 1
	e.jitterX = float32(e.rng.Intn(span) - e.shake)
	e.jitterY = float32(e.rng.Intn(span) - e.shake)
	if e.rng.Float64() < e.timing.ShakeDecayChance {
		e.shake--
	}
}

// SetShake starts a shake of the given magnitude.
func (e *Egg) SetShake(n int) {
	e.shake = max(n, 0)
}

// Shake returns the remaining shake magnitude.
func (e *Egg) Shake() int {
	return e.shake
}

// Phase returns the hatch phase.
func (e *Egg) Phase() EggPhase {
	return e.phase
}

// Completed reports whether the hatch animation has finished.
func (e *Egg) Completed() bool {
	return e.phase == EggHatched
}

// JustHatched is true only for the update in which the egg completed.
func (e *Egg) JustHatched() bool {
	return e.justHatched
}

// Frame returns the current frame index.
func (e *Egg) Frame() int {
	return e.index
}

// Image returns the frame to draw this tick.
func (e *Egg) Image() components.Image {
	return e.frames[e.index]
}

// Position returns the draw position: the anchor plus shake jitter.
func (e *Egg) Position() components.Position {
	return e.anchor.Add(e.jitterX, e.jitterY)
}

// HitRegion returns the feeding target. It ignores jitter.
func (e *Egg) HitRegion() components.Rect {
	return regionOf(e.frames[0], e.anchor)
}
