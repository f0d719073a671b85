package pet

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/pthm-cable/komodo/config"
)

func TestStageForBoundaries(t *testing.T) {
	tests := []struct {
		age  int
		want Stage
	}{
		{0, StageEgg},
		{1, StageBaby},
		{9, StageBaby},
		{10, StageTeen},
		{19, StageTeen},
		{20, StageOld},
		{500, StageOld},
	}

	for _, tt := range tests {
		if got := StageFor(tt.age); got != tt.want {
			t.Errorf("StageFor(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestStageForIsMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(0, 1000).Draw(rt, "a")
		b := rapid.IntRange(a, 1000).Draw(rt, "b")
		if StageFor(a) > StageFor(b) {
			rt.Fatalf("StageFor(%d)=%v is after StageFor(%d)=%v", a, StageFor(a), b, StageFor(b))
		}
	})
}

func TestTableFromDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	table, err := NewTable(cfg)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	tests := []struct {
		age      int
		speed    float32
		maxFlies int
	}{
		{0, 3, 3},
		{5, 3, 3},
		{9, 3, 3},
		{10, 4.5, 2},
		{19, 4.5, 2},
		{20, 6, 1},
		{99, 6, 1},
	}

	for _, tt := range tests {
		if got := table.FlySpeed(tt.age); got != tt.speed {
			t.Errorf("FlySpeed(%d) = %v, want %v", tt.age, got, tt.speed)
		}
		if got := table.MaxFlies(tt.age); got != tt.maxFlies {
			t.Errorf("MaxFlies(%d) = %d, want %d", tt.age, got, tt.maxFlies)
		}
	}

	if table[StageEgg].Frames != "" {
		t.Errorf("egg stage should have no idle frames, got %q", table[StageEgg].Frames)
	}
	if table[StageTeen].EatingFrames != "teen_eating" {
		t.Errorf("teen eating frames = %q, want teen_eating", table[StageTeen].EatingFrames)
	}
}

func TestNewTableMissingStage(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Stages = cfg.Stages[:1]

	if _, err := NewTable(cfg); err == nil {
		t.Error("expected error for missing stages")
	}
}

func TestFeedAndStarveClamp(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := State{Hunger: rapid.IntRange(0, 100).Draw(rt, "hunger")}
		before := s.Hunger

		s.Feed(20, 100)
		if s.Hunger != min(before+20, 100) {
			rt.Fatalf("Feed from %d gave %d", before, s.Hunger)
		}

		s.Hunger = before
		s.Starve(10)
		if s.Hunger != max(before-10, 0) {
			rt.Fatalf("Starve from %d gave %d", before, s.Hunger)
		}
	})
}

func TestStarved(t *testing.T) {
	s := State{Hunger: 10}
	if s.Starved() {
		t.Error("hunger 10 should not be starved")
	}
	s.Starve(10)
	if !s.Starved() {
		t.Error("hunger 0 should be starved")
	}
	if s.Starve(10) != 0 {
		t.Error("hunger should floor at 0")
	}
}
