// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// StageNames lists the life stages in age order.
var StageNames = []string{"egg", "baby", "teen", "old"}

// Config holds every tuning constant of the game in one table.
type Config struct {
	Screen    ScreenConfig           `yaml:"screen"`
	Pet       PetConfig              `yaml:"pet"`
	Timing    TimingConfig           `yaml:"timing"`
	Egg       EggConfig              `yaml:"egg"`
	Fly       FlyConfig              `yaml:"fly"`
	Effect    EffectConfig           `yaml:"effect"`
	Stages    []StageConfig          `yaml:"stages"`
	Assets    map[string]AssetConfig `yaml:"assets"`
	Telemetry TelemetryConfig        `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width                 int     `yaml:"width"`
	Height                int     `yaml:"height"`
	TargetFPS             int     `yaml:"target_fps"`
	BackgroundScrollSpeed float32 `yaml:"background_scroll_speed"` // Pixels per frame
}

// PetConfig holds hunger economics and pet placement.
type PetConfig struct {
	InitialHunger int     `yaml:"initial_hunger"`
	MaxHunger     int     `yaml:"max_hunger"`
	FeedAmount    int     `yaml:"feed_amount"` // Hunger restored per fly eaten
	HungerDecay   int     `yaml:"hunger_decay"`
	SpriteSize    float32 `yaml:"sprite_size"`
	AnchorOffsetY float32 `yaml:"anchor_offset_y"`
}

// TimingConfig holds the lifecycle intervals.
type TimingConfig struct {
	FrameInterval  int64 `yaml:"frame_interval"`  // Sprite frame cycling
	EatingDuration int64 `yaml:"eating_duration"` // Length of the eating sub-animation
	AgeInterval    int64 `yaml:"age_interval"`    // One simulated year
	HungerInterval int64 `yaml:"hunger_interval"` // Same for every stage
	FirstAgeDelay  int64 `yaml:"first_age_delay"` // Grace window after reset
	HatchGrace     int64 `yaml:"hatch_grace"`     // Fallback hatch delay when the edge is missed
}

// EggConfig holds the hatch animation parameters.
type EggConfig struct {
	StartDelay       int64   `yaml:"start_delay"`
	FrameDelay       int64   `yaml:"frame_delay"`
	StartShake       int     `yaml:"start_shake"`
	FrameShake       int     `yaml:"frame_shake"`
	FeedShake        int     `yaml:"feed_shake"`
	ShakeDecayChance float64 `yaml:"shake_decay_chance"`
}

// FlyConfig holds fly wander and spawn parameters.
type FlyConfig struct {
	Size           float32 `yaml:"size"`
	TurnInterval   int64   `yaml:"turn_interval"`
	MaxTurnDegrees float64 `yaml:"max_turn_degrees"`
	TopMargin      float32 `yaml:"top_margin"`
	SpawnMarginX   float32 `yaml:"spawn_margin_x"`
	SpawnMarginY   float32 `yaml:"spawn_margin_y"`
}

// EffectConfig holds transition burst parameters.
type EffectConfig struct {
	FrameInterval int64 `yaml:"frame_interval"`
	Sizes         []int `yaml:"sizes"` // Burst diameter per frame
}

// StageConfig describes one life stage.
type StageConfig struct {
	Name         string  `yaml:"name"`
	FlySpeed     float32 `yaml:"fly_speed"` // Pixels per tick
	MaxFlies     int     `yaml:"max_flies"`
	Frames       string  `yaml:"frames,omitempty"`
	EatingFrames string  `yaml:"eating_frames,omitempty"`
}

// AssetConfig locates one frame sequence on disk.
// Path may contain a %d verb that is replaced with the 1-based frame number.
// Sheet, when set, slices a single horizontal sprite sheet into Count frames.
type AssetConfig struct {
	Path  string     `yaml:"path"`
	Count int        `yaml:"count"`
	Sheet [2]float32 `yaml:"sheet,omitempty"`
	Scale [2]float32 `yaml:"scale,omitempty"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	Window int64 `yaml:"window"` // Stats window length
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
	AnchorX   float32 // Pet/egg center
	AnchorY   float32
	FlyTop    float32 // Fly movement band
	FlyBottom float32
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Validate rejects tables the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	intervals := map[string]int64{
		"timing.frame_interval":  c.Timing.FrameInterval,
		"timing.eating_duration": c.Timing.EatingDuration,
		"timing.age_interval":    c.Timing.AgeInterval,
		"timing.hunger_interval": c.Timing.HungerInterval,
		"egg.frame_delay":        c.Egg.FrameDelay,
		"fly.turn_interval":      c.Fly.TurnInterval,
		"effect.frame_interval":  c.Effect.FrameInterval,
	}
	for name, v := range intervals {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	if len(c.Effect.Sizes) == 0 {
		errs = append(errs, errors.New("effect.sizes must list at least one frame"))
	}
	if c.Pet.MaxHunger <= 0 || c.Pet.InitialHunger > c.Pet.MaxHunger {
		errs = append(errs, fmt.Errorf("pet hunger range invalid: initial %d, max %d", c.Pet.InitialHunger, c.Pet.MaxHunger))
	}
	if bottom := float32(c.Screen.Height) * 3 / 4; float32(c.Screen.Height)/6+c.Fly.TopMargin >= bottom {
		errs = append(errs, errors.New("fly band is empty: top margin reaches the bottom boundary"))
	}
	if len(c.Stages) == 0 {
		errs = append(errs, errors.New("stages table is empty"))
	}
	for _, name := range StageNames {
		s, ok := c.Stage(name)
		if !ok {
			errs = append(errs, fmt.Errorf("stage %q missing", name))
			continue
		}
		if s.MaxFlies < 1 {
			errs = append(errs, fmt.Errorf("stage %q: max_flies must be at least 1", name))
		}
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.AnchorX = c.Derived.ScreenW32 / 2
	c.Derived.AnchorY = c.Derived.ScreenH32/2 + c.Pet.AnchorOffsetY
	c.Derived.FlyTop = c.Derived.ScreenH32/6 + c.Fly.TopMargin
	c.Derived.FlyBottom = c.Derived.ScreenH32 * 3 / 4
}

// Stage returns the stage entry with the given name.
func (c *Config) Stage(name string) (StageConfig, bool) {
	for _, s := range c.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return StageConfig{}, false
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
