package sprites

import (
	"errors"
	"testing"

	"github.com/pthm-cable/komodo/components"
)

func TestNewBurst_NoFrames(t *testing.T) {
	_, err := NewBurst(nil, components.Position{}, 0, 60)
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func TestBurst_PlaysOnce(t *testing.T) {
	b, err := NewBurst(frames(8, 10), components.Position{X: 5, Y: 5}, 0, 60)
	if err != nil {
		t.Fatal(err)
	}

	now := int64(0)
	for want := 1; want < 8; want++ {
		now += 61
		b.Update(now)
		if b.Frame() != want || b.Done() {
			t.Fatalf("expected frame %d not done, got frame %d done=%v", want, b.Frame(), b.Done())
		}
	}

	now += 61
	b.Update(now)
	if !b.Done() {
		t.Fatal("burst should finish after its last frame")
	}
	if b.Frame() != 7 {
		t.Errorf("expected frame to stay on the last index, got %d", b.Frame())
	}
	if b.Position() != (components.Position{X: 5, Y: 5}) {
		t.Errorf("burst should never move, got %v", b.Position())
	}
}
