package sprites

import (
	"errors"
	"testing"

	"github.com/pthm-cable/komodo/components"
)

var testAnim = AnimTiming{FrameInterval: 100, EatingDuration: 500}

func TestNewAnimated_NoFrames(t *testing.T) {
	_, err := NewAnimated(nil, frames(2, 10), components.Position{}, testAnim, 0)
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func TestAnimated_CyclesNormalFrames(t *testing.T) {
	a, err := NewAnimated(frames(3, 10), nil, components.Position{}, testAnim, 0)
	if err != nil {
		t.Fatal(err)
	}

	a.Update(100) // exactly one interval does not advance
	if a.Frame() != 0 {
		t.Fatalf("expected frame 0 at 100ms, got %d", a.Frame())
	}

	want := []int{1, 2, 0, 1}
	now := int64(0)
	for i, w := range want {
		now += 101
		a.Update(now)
		if a.Frame() != w {
			t.Errorf("step %d: expected frame %d, got %d", i, w, a.Frame())
		}
	}
}

func TestAnimated_EatingReverts(t *testing.T) {
	a, err := NewAnimated(frames(4, 10), frames(2, 10), components.Position{}, testAnim, 0)
	if err != nil {
		t.Fatal(err)
	}
	a.Update(101)
	a.Update(202)

	a.StartEating(1000)
	if !a.Eating() || a.Frame() != 0 {
		t.Fatalf("expected eating from frame 0, got eating=%v frame=%d", a.Eating(), a.Frame())
	}

	a.Update(1101)
	if a.Frame() != 1 || frameID(a.Image()) != 1 {
		t.Errorf("expected eating frame 1, got %d", a.Frame())
	}
	a.Update(1499)
	if !a.Eating() {
		t.Error("eating should last until the duration elapses")
	}

	a.Update(1500)
	if a.Eating() {
		t.Error("eating should end once the duration has elapsed")
	}
	if a.Frame() != 0 {
		t.Errorf("expected idle frame 0 after eating, got %d", a.Frame())
	}
}

func TestAnimated_StartEatingWithoutFrames(t *testing.T) {
	a, err := NewAnimated(frames(2, 10), nil, components.Position{}, testAnim, 0)
	if err != nil {
		t.Fatal(err)
	}
	a.StartEating(50)
	if a.Eating() {
		t.Error("sprite without eating frames must ignore StartEating")
	}
}

func TestAnimated_HitRegion(t *testing.T) {
	a, err := NewAnimated(frames(2, 250), nil, components.Position{X: 200, Y: 400}, testAnim, 0)
	if err != nil {
		t.Fatal(err)
	}
	r := a.HitRegion()
	if r.X != 75 || r.Y != 275 || r.Width != 250 || r.Height != 250 {
		t.Errorf("unexpected hit region %+v", r)
	}
	if !r.Contains(components.Position{X: 200, Y: 400}) {
		t.Error("anchor should be inside the hit region")
	}
}
