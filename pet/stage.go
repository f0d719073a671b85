// Package pet holds the pet's state and the life-stage tables derived from age.
package pet

import (
	"fmt"

	"github.com/pthm-cable/komodo/config"
)

// Stage is a life stage. It is a pure function of age; see StageFor.
type Stage uint8

const (
	StageEgg Stage = iota
	StageBaby
	StageTeen
	StageOld
)

// Age thresholds in simulated years.
const (
	BabyAge = 1
	TeenAge = 10
	OldAge  = 20
)

// Stages lists every stage in age order.
var Stages = [...]Stage{StageEgg, StageBaby, StageTeen, StageOld}

// StageFor returns the life stage for an age.
func StageFor(age int) Stage {
	switch {
	case age < BabyAge:
		return StageEgg
	case age < TeenAge:
		return StageBaby
	case age < OldAge:
		return StageTeen
	default:
		return StageOld
	}
}

func (s Stage) String() string {
	switch s {
	case StageEgg:
		return "egg"
	case StageBaby:
		return "baby"
	case StageTeen:
		return "teen"
	case StageOld:
		return "old"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// StageTraits are the per-stage knobs the rest of the game reads.
type StageTraits struct {
	FlySpeed     float32 // Pixels per tick
	MaxFlies     int
	Frames       string // Asset id of the idle loop (empty for the egg)
	EatingFrames string
}

// Table maps stages to their traits.
type Table [len(Stages)]StageTraits

// NewTable builds the stage table from the config stages section.
func NewTable(cfg *config.Config) (Table, error) {
	var t Table
	for _, s := range Stages {
		sc, ok := cfg.Stage(s.String())
		if !ok {
			return t, fmt.Errorf("stage %q not configured", s)
		}
		t[s] = StageTraits{
			FlySpeed:     sc.FlySpeed,
			MaxFlies:     sc.MaxFlies,
			Frames:       sc.Frames,
			EatingFrames: sc.EatingFrames,
		}
	}
	return t, nil
}

// Traits returns the traits for the stage of the given age.
func (t *Table) Traits(age int) StageTraits {
	return t[StageFor(age)]
}

// FlySpeed returns fly speed for the pet's age.
func (t *Table) FlySpeed(age int) float32 {
	return t.Traits(age).FlySpeed
}

// MaxFlies returns the live fly cap for the pet's age.
func (t *Table) MaxFlies(age int) int {
	return t.Traits(age).MaxFlies
}
