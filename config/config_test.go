package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 400, cfg.Screen.Width)
	require.Equal(t, 600, cfg.Screen.Height)
	require.Equal(t, int64(1000), cfg.Timing.HungerInterval)
	require.Equal(t, int64(3000), cfg.Timing.AgeInterval)
	require.Equal(t, int64(5000), cfg.Timing.FirstAgeDelay)
	require.Equal(t, int64(500), cfg.Timing.EatingDuration)
	require.Equal(t, int64(1500), cfg.Egg.StartDelay)
	require.Equal(t, int64(500), cfg.Fly.TurnInterval)
	require.Equal(t, []int{10, 20, 30, 40, 50, 40, 30, 20}, cfg.Effect.Sizes)

	for _, name := range StageNames {
		_, ok := cfg.Stage(name)
		require.True(t, ok, "stage %q should be in the defaults", name)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, float32(200), cfg.Derived.AnchorX)
	require.Equal(t, float32(400), cfg.Derived.AnchorY)
	require.Equal(t, float32(130), cfg.Derived.FlyTop)
	require.Equal(t, float32(450), cfg.Derived.FlyBottom)
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timing:\n  age_interval: 100\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, int64(100), cfg.Timing.AgeInterval)
	require.Equal(t, int64(1000), cfg.Timing.HungerInterval, "untouched fields keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsBadTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frame interval", func(c *Config) { c.Timing.FrameInterval = 0 }},
		{"negative hunger interval", func(c *Config) { c.Timing.HungerInterval = -1 }},
		{"initial above max hunger", func(c *Config) { c.Pet.InitialHunger = c.Pet.MaxHunger + 1 }},
		{"empty fly band", func(c *Config) { c.Fly.TopMargin = 1000 }},
		{"missing stage", func(c *Config) { c.Stages = c.Stages[:2] }},
		{"stage without flies", func(c *Config) { c.Stages[3].MaxFlies = 0 }},
		{"no effect frames", func(c *Config) { c.Effect.Sizes = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Stages, reloaded.Stages)
	require.Equal(t, cfg.Assets["fly"], reloaded.Assets["fly"])
}
