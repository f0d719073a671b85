package game

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/pet"
	"github.com/pthm-cable/komodo/sprites"
)

// Frame ids requested from the asset provider besides the per-stage ones.
const (
	FramesEgg   = "egg"
	FramesFly   = "fly"
	FramesBurst = "burst"
)

// Assets supplies frame sequences by id. Implementations absorb load
// failures, typically by returning placeholder frames.
type Assets interface {
	LoadFrames(id string) components.Frames
}

// StageFrames are the two loops of one life stage.
type StageFrames struct {
	Normal components.Frames
	Eating components.Frames
}

// FrameSet holds every frame sequence a session needs.
type FrameSet struct {
	Egg    components.Frames
	Fly    components.Frames
	Burst  components.Frames
	Stages [len(pet.Stages)]StageFrames // Egg entry unused
}

// LoadFrameSet requests every sequence from assets and fails if a required
// one came back empty. Eating loops may be empty.
func LoadFrameSet(assets Assets, table *pet.Table) (*FrameSet, error) {
	fs := &FrameSet{
		Egg:   assets.LoadFrames(FramesEgg),
		Fly:   assets.LoadFrames(FramesFly),
		Burst: assets.LoadFrames(FramesBurst),
	}

	var errs []error
	required := []struct {
		id     string
		frames components.Frames
	}{
		{FramesEgg, fs.Egg},
		{FramesFly, fs.Fly},
		{FramesBurst, fs.Burst},
	}
	for _, r := range required {
		if len(r.frames) == 0 {
			errs = append(errs, fmt.Errorf("frames %q: %w", r.id, sprites.ErrNoFrames))
		}
	}

	for _, st := range pet.Stages[1:] {
		traits := table[st]
		sf := StageFrames{Normal: assets.LoadFrames(traits.Frames)}
		if traits.EatingFrames != "" {
			sf.Eating = assets.LoadFrames(traits.EatingFrames)
		}
		if len(sf.Normal) == 0 {
			errs = append(errs, fmt.Errorf("stage %s frames %q: %w", st, traits.Frames, sprites.ErrNoFrames))
		}
		fs.Stages[st] = sf
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("loading frames: %w", err)
	}
	return fs, nil
}
