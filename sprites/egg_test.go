package sprites

import (
	"errors"
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/pthm-cable/komodo/components"
)

var testEgg = EggTiming{StartDelay: 1500, FrameDelay: 1000, StartShake: 3, FrameShake: 5, ShakeDecayChance: 0.2}

func newTestEgg(t *testing.T, n int) *Egg {
	t.Helper()
	e, err := NewEgg(frames(n, 250), components.Position{X: 200, Y: 400}, 0, testEgg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestNewEgg_NoFrames(t *testing.T) {
	_, err := NewEgg(nil, components.Position{}, 0, testEgg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func TestEgg_Phases(t *testing.T) {
	e := newTestEgg(t, 3)

	e.Update(1500)
	if e.Phase() != EggPending {
		t.Fatalf("expected pending at the start delay, got %v", e.Phase())
	}

	e.Update(1501)
	if e.Phase() != EggAnimating {
		t.Fatalf("expected animating after the start delay, got %v", e.Phase())
	}
	if e.Shake() < 2 || e.Shake() > 3 {
		t.Errorf("expected start shake near 3, got %d", e.Shake())
	}

	e.Update(2502)
	if e.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", e.Frame())
	}
	e.Update(3503)
	if e.Frame() != 2 || e.Completed() {
		t.Errorf("expected last frame without completion, frame=%d completed=%v", e.Frame(), e.Completed())
	}

	e.Update(4504)
	if !e.Completed() || !e.JustHatched() {
		t.Fatalf("expected hatch edge, completed=%v justHatched=%v", e.Completed(), e.JustHatched())
	}
	if e.Frame() != 2 {
		t.Errorf("frame should clamp to the last index, got %d", e.Frame())
	}

	e.Update(4520)
	if e.JustHatched() {
		t.Error("justHatched must only last one update")
	}
	if !e.Completed() {
		t.Error("completed is permanent")
	}
}

func TestEgg_JustHatchedExactlyOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "frames")
		step := rapid.Int64Range(1, 400).Draw(rt, "step")
		e, err := NewEgg(frames(n, 10), components.Position{}, 0, testEgg, rand.New(rand.NewSource(7)))
		if err != nil {
			rt.Fatal(err)
		}

		edges := 0
		for now := int64(0); now < 20000; now += step {
			e.Update(now)
			if e.JustHatched() {
				edges++
				if !e.Completed() {
					rt.Fatal("justHatched without completion")
				}
			}
		}
		if edges != 1 {
			rt.Fatalf("expected exactly one hatch edge, got %d", edges)
		}
	})
}

func TestEgg_ShakeJitterStaysInRange(t *testing.T) {
	e := newTestEgg(t, 3)
	anchor := components.Position{X: 200, Y: 400}
	e.SetShake(5)

	for i := 0; i < 200; i++ {
		before := e.Shake()
		e.Update(int64(i))
		p := e.Position()
		dx, dy := p.X-anchor.X, p.Y-anchor.Y
		limit := float32(before)
		if dx < -limit || dx > limit || dy < -limit || dy > limit {
			t.Fatalf("jitter (%v, %v) outside shake %d", dx, dy, before)
		}
		if dx != float32(int(dx)) || dy != float32(int(dy)) {
			t.Fatalf("jitter should be whole pixels, got (%v, %v)", dx, dy)
		}
	}
	if e.Shake() != 0 {
		t.Errorf("shake should decay to zero, got %d", e.Shake())
	}
	if e.Position() != anchor {
		t.Errorf("egg should rest on its anchor once shake is spent, got %v", e.Position())
	}
}

func TestEgg_HitRegionIgnoresShake(t *testing.T) {
	e := newTestEgg(t, 3)
	want := e.HitRegion()
	e.SetShake(5)
	e.Update(10)
	if got := e.HitRegion(); got != want {
		t.Errorf("hit region moved with shake: %+v != %+v", got, want)
	}
}
