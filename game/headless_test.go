package game

import (
	"testing"

	"github.com/pthm-cable/komodo/config"
	"github.com/pthm-cable/komodo/pet"
)

func TestSizedAssets(t *testing.T) {
	cfg := config.MustLoad("")
	a := NewSizedAssets(cfg)

	tests := []struct {
		id    string
		count int
		size  float32
	}{
		{FramesEgg, 3, 250},
		{FramesFly, 4, 64},
		{"teen_eating", 8, 250},
		{FramesBurst, 8, 10},
	}
	for _, tt := range tests {
		frames := a.LoadFrames(tt.id)
		if len(frames) != tt.count {
			t.Errorf("%s: expected %d frames, got %d", tt.id, tt.count, len(frames))
			continue
		}
		if frames[0].Width() != tt.size {
			t.Errorf("%s: expected width %f, got %f", tt.id, tt.size, frames[0].Width())
		}
	}

	if frames := a.LoadFrames("unknown"); len(frames) != 0 {
		t.Errorf("unknown ids should have no frames, got %d", len(frames))
	}

	table, err := pet.NewTable(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrameSet(a, &table); err != nil {
		t.Errorf("default assets should load headless: %v", err)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(100)
	if c.Now() != 100 {
		t.Fatalf("expected 100, got %d", c.Now())
	}
	if got := c.Advance(16); got != 116 || c.Now() != 116 {
		t.Errorf("expected 116 after advancing, got %d", got)
	}
}
