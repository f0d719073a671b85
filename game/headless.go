package game

import (
	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/config"
)

// SizedFrame is a frame without pixels, used when no window exists.
type SizedFrame struct {
	W, H float32
}

func (f SizedFrame) Width() float32  { return f.W }
func (f SizedFrame) Height() float32 { return f.H }

// SizedAssets serves pixel-less frames with the sizes and counts from the
// assets table, so a session can run headless with the same hit regions.
type SizedAssets struct {
	cfg *config.Config
}

// NewSizedAssets creates a headless asset provider.
func NewSizedAssets(cfg *config.Config) *SizedAssets {
	return &SizedAssets{cfg: cfg}
}

// LoadFrames implements Assets.
func (a *SizedAssets) LoadFrames(id string) components.Frames {
	if id == FramesBurst {
		frames := make(components.Frames, len(a.cfg.Effect.Sizes))
		for i, d := range a.cfg.Effect.Sizes {
			frames[i] = SizedFrame{W: float32(d), H: float32(d)}
		}
		return frames
	}

	ac, ok := a.cfg.Assets[id]
	if !ok {
		return nil
	}
	w, h := a.cfg.Pet.SpriteSize, a.cfg.Pet.SpriteSize
	switch {
	case ac.Scale != [2]float32{}:
		w, h = ac.Scale[0], ac.Scale[1]
	case ac.Sheet != [2]float32{}:
		w, h = ac.Sheet[0], ac.Sheet[1]
	}
	frames := make(components.Frames, max(ac.Count, 1))
	for i := range frames {
		frames[i] = SizedFrame{W: w, H: h}
	}
	return frames
}
