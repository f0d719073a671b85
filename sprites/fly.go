package sprites

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pthm-cable/komodo/components"
)

// Bounds is the rectangle a free fly is confined to.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// FlyTiming controls fly animation and wandering.
type FlyTiming struct {
	FrameInterval int64
	TurnInterval  int64
	MaxTurn       float64 // Radians, heading changes by up to this either way
}

// Fly is a wandering food item that bounces off the band edges and can be
// picked up and dragged.
type Fly struct {
	frames components.Frames
	pos    components.Position
	timing FlyTiming
	bounds Bounds
	rng    *rand.Rand

	heading    float64
	speed      float32
	clock      frameClock
	lastTurnAt int64
	dragging   bool
}

// NewFly creates a fly at pos with a random heading.
func NewFly(frames components.Frames, pos components.Position, speed float32, now int64, timing FlyTiming, bounds Bounds, rng *rand.Rand) (*Fly, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("fly: %w", ErrNoFrames)
	}
	return &Fly{
		frames:     frames,
		pos:        pos,
		timing:     timing,
		bounds:     bounds,
		rng:        rng,
		heading:    rng.Float64() * 2 * math.Pi,
		speed:      speed,
		clock:      frameClock{lastAt: now, interval: timing.FrameInterval},
		lastTurnAt: now,
	}, nil
}

// Update cycles frames and, unless dragged, wanders one step.
func (f *Fly) Update(now int64) {
	f.clock.step(now, len(f.frames))
	if f.dragging {
		return
	}

	if now-f.lastTurnAt > f.timing.TurnInterval {
		f.lastTurnAt = now
		f.heading += (f.rng.Float64()*2 - 1) * f.timing.MaxTurn
	}

	f.pos.X += f.speed * float32(math.Cos(f.heading))
	f.pos.Y += f.speed * float32(math.Sin(f.heading))
	f.bounce()
}

// bounce clamps the fly into bounds and reflects the heading so the next
// step points back inside.
func (f *Fly) bounce() {
	b := f.bounds
	if f.pos.X < b.MinX {
		f.pos.X = b.MinX
		if math.Cos(f.heading) < 0 {
			f.heading = math.Pi - f.heading
		}
	} else if f.pos.X > b.MaxX {
		f.pos.X = b.MaxX
		if math.Cos(f.heading) > 0 {
			f.heading = math.Pi - f.heading
		}
	}
	if f.pos.Y < b.MinY {
		f.pos.Y = b.MinY
		if math.Sin(f.heading) < 0 {
			f.heading = -f.heading
		}
	} else if f.pos.Y > b.MaxY {
		f.pos.Y = b.MaxY
		if math.Sin(f.heading) > 0 {
			f.heading = -f.heading
		}
	}
	f.heading = normalizeAngle(f.heading)
}

// SetSpeed sets the step length in pixels per update.
func (f *Fly) SetSpeed(speed float32) {
	f.speed = speed
}

func (f *Fly) Speed() float32 {
	return f.speed
}

func (f *Fly) Heading() float64 {
	return f.heading
}

// StartDrag suspends wandering.
func (f *Fly) StartDrag() {
	f.dragging = true
}

// SetDragPosition moves a dragged fly exactly to pos.
func (f *Fly) SetDragPosition(pos components.Position) {
	f.pos = pos
}

// StopDrag releases the fly in a new random direction.
func (f *Fly) StopDrag() {
	f.dragging = false
	f.heading = f.rng.Float64() * 2 * math.Pi
}

func (f *Fly) Dragging() bool {
	return f.dragging
}

func (f *Fly) Image() components.Image {
	return f.frames[f.clock.index]
}

func (f *Fly) Position() components.Position {
	return f.pos
}

// HitRegion returns the pick-up area around the fly.
func (f *Fly) HitRegion() components.Rect {
	return regionOf(f.Image(), f.pos)
}

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
