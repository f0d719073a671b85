// Package game implements the pet session: the lifecycle state machine that
// ages and starves the pet, and the drag-and-drop feeding interaction.
// It has no rendering dependency; see renderer and ui for the raylib side.
package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/config"
	"github.com/pthm-cable/komodo/pet"
	"github.com/pthm-cable/komodo/sprites"
	"github.com/pthm-cable/komodo/systems"
)

// Mode is the session play state.
type Mode uint8

const (
	ModePlaying Mode = iota
	ModeEnded
)

func (m Mode) String() string {
	if m == ModeEnded {
		return "ended"
	}
	return "playing"
}

// Observer receives lifecycle events. Telemetry implements it.
type Observer interface {
	SessionStarted(now int64)
	Hatched(now int64)
	StageChanged(now int64, from, to pet.Stage, age int)
	HungerTicked(now int64, hunger int)
	Fed(now int64, hunger int)
	Died(now int64, age int)
}

// Options are the optional collaborators of a session.
type Options struct {
	Logger   *slog.Logger // Defaults to slog.Default()
	Observer Observer
}

// Session is one run of the pet from egg to death.
type Session struct {
	cfg      *config.Config
	table    pet.Table
	frames   *FrameSet
	rng      *rand.Rand
	logger   *slog.Logger
	observer Observer

	anchor components.Position
	state  pet.State
	mode   Mode
	now    int64

	egg     *sprites.Egg
	stages  [len(pet.Stages)]*sprites.Animated // Egg entry unused
	flies   *systems.FlySystem
	effects *systems.EffectSystem
	dragged ecs.Entity
}

// NewSession builds a session and resets it at now.
func NewSession(cfg *config.Config, frames *FrameSet, rng *rand.Rand, now int64, opts Options) (*Session, error) {
	table, err := pet.NewTable(cfg)
	if err != nil {
		return nil, fmt.Errorf("building stage table: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		table:    table,
		frames:   frames,
		rng:      rng,
		logger:   opts.Logger,
		observer: opts.Observer,
		anchor:   components.Position{X: cfg.Derived.AnchorX, Y: cfg.Derived.AnchorY},
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	d := cfg.Derived
	s.flies = systems.NewFlySystem(
		frames.Fly,
		sprites.FlyTiming{
			FrameInterval: cfg.Timing.FrameInterval,
			TurnInterval:  cfg.Fly.TurnInterval,
			MaxTurn:       cfg.Fly.MaxTurnDegrees * math.Pi / 180,
		},
		sprites.Bounds{MinX: 0, MaxX: d.ScreenW32, MinY: d.FlyTop, MaxY: d.FlyBottom},
		systems.SpawnBand{
			MinX: cfg.Fly.SpawnMarginX,
			MaxX: d.ScreenW32 - cfg.Fly.SpawnMarginX,
			MinY: d.FlyTop + cfg.Fly.SpawnMarginY,
			MaxY: d.FlyBottom - cfg.Fly.SpawnMarginY,
		},
		&s.table,
		rng,
	)
	s.effects = systems.NewEffectSystem(frames.Burst, cfg.Effect.FrameInterval)

	if err := s.Reset(now); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts a new pet at now. Every child collection is replaced.
func (s *Session) Reset(now int64) error {
	egg, err := sprites.NewEgg(s.frames.Egg, s.anchor, now, sprites.EggTiming{
		StartDelay:       s.cfg.Egg.StartDelay,
		FrameDelay:       s.cfg.Egg.FrameDelay,
		StartShake:       s.cfg.Egg.StartShake,
		FrameShake:       s.cfg.Egg.FrameShake,
		ShakeDecayChance: s.cfg.Egg.ShakeDecayChance,
	}, s.rng)
	if err != nil {
		return fmt.Errorf("creating egg: %w", err)
	}

	timing := sprites.AnimTiming{FrameInterval: s.cfg.Timing.FrameInterval, EatingDuration: s.cfg.Timing.EatingDuration}
	var stagesSprites [len(pet.Stages)]*sprites.Animated
	for _, st := range pet.Stages[1:] {
		sf := s.frames.Stages[st]
		a, err := sprites.NewAnimated(sf.Normal, sf.Eating, s.anchor, timing, now)
		if err != nil {
			return fmt.Errorf("creating %s sprite: %w", st, err)
		}
		stagesSprites[st] = a
	}

	s.egg = egg
	s.stages = stagesSprites
	s.state = pet.State{
		Age:              0,
		Hunger:           s.cfg.Pet.InitialHunger,
		LastAgeTickAt:    now + s.cfg.Timing.FirstAgeDelay,
		LastHungerTickAt: now,
	}
	s.mode = ModePlaying
	s.now = now
	s.dragged = ecs.Entity{}
	s.effects.Clear()
	if err := s.flies.Reset(0, now); err != nil {
		return fmt.Errorf("spawning flies: %w", err)
	}

	s.logger.Info("session_reset", "at", now, "flies", s.flies.Count())
	if s.observer != nil {
		s.observer.SessionStarted(now)
	}
	return nil
}

// SetObserver replaces the event observer. Nil disables notifications.
// The next Reset is the first event the new observer sees.
func (s *Session) SetObserver(o Observer) {
	s.observer = o
}

// Mode returns the play state.
func (s *Session) Mode() Mode {
	return s.mode
}

// IsActive reports whether the pet is still alive.
func (s *Session) IsActive() bool {
	return s.mode == ModePlaying
}

// Now returns the time of the last tick or reset.
func (s *Session) Now() int64 {
	return s.now
}

// State returns a copy of the pet state.
func (s *Session) State() pet.State {
	return s.state
}

func (s *Session) Age() int {
	return s.state.Age
}

func (s *Session) Hunger() int {
	return s.state.Hunger
}

func (s *Session) Stage() pet.Stage {
	return s.state.Stage()
}

// Egg returns the egg, or nil once the pet has hatched.
func (s *Session) Egg() *sprites.Egg {
	return s.egg
}

// Flies returns the fly system.
func (s *Session) Flies() *systems.FlySystem {
	return s.flies
}

// Effects returns the effect system.
func (s *Session) Effects() *systems.EffectSystem {
	return s.effects
}

// Dragged returns the fly being dragged, or nil.
func (s *Session) Dragged() *sprites.Fly {
	return s.flies.Get(s.dragged)
}

// Active returns the sprite that represents the pet: the egg before hatching,
// the stage sprite afterward.
func (s *Session) Active() sprites.Sprite {
	if s.state.Age < pet.BabyAge && s.egg != nil {
		return s.egg
	}
	return s.stages[s.activeStage()]
}

// Target returns the region a fly must be released on to feed the pet.
func (s *Session) Target() components.Rect {
	return s.Active().HitRegion()
}

// Anchor returns the pet center.
func (s *Session) Anchor() components.Position {
	return s.anchor
}

// activeStage is the stage whose sprite is shown. The egg stage falls back
// to the baby sprite when the egg is already gone.
func (s *Session) activeStage() pet.Stage {
	st := s.state.Stage()
	if st == pet.StageEgg {
		return pet.StageBaby
	}
	return st
}
