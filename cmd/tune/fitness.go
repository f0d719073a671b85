package main

import (
	"log/slog"
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/komodo/config"
	"github.com/pthm-cable/komodo/game"
	"github.com/pthm-cable/komodo/pet"
	"github.com/pthm-cable/komodo/telemetry"
)

// Player models the autoplayer used to score a parameter set.
type Player struct {
	Threshold int   // Feed at or below this hunger
	Interval  int64 // How often the player looks at the pet
}

// FitnessEvaluator runs headless autoplayed sessions and scores how close
// the pet's lifetime lands to a target age.
type FitnessEvaluator struct {
	params     *ParamVector
	baseConfig *config.Config
	player     Player
	seeds      []int64
	targetAge  float64
	maxTicks   int

	mu       sync.Mutex
	lastMean float64 // mean final age from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, baseCfg *config.Config, player Player, seeds []int64, targetAge float64, maxTicks int) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		baseConfig: baseCfg,
		player:     player,
		seeds:      seeds,
		targetAge:  targetAge,
		maxTicks:   maxTicks,
	}
}

// LastMeanAge returns the mean final age from the most recent evaluation.
func (fe *FitnessEvaluator) LastMeanAge() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMean
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Seeds run in parallel; each gets its own session and collector.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	ages := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			ages[idx] = float64(fe.runSession(cfg, s))
		}(i, seed)
	}
	wg.Wait()

	var sum, sqErr float64
	for _, age := range ages {
		sum += age
		d := age - fe.targetAge
		sqErr += d * d
	}
	n := float64(len(ages))

	fe.mu.Lock()
	fe.lastMean = sum / n
	fe.mu.Unlock()

	return sqErr / n
}

// runSession plays one session to death or maxTicks and returns the final age.
// A config the simulation rejects scores as an immediate death.
func (fe *FitnessEvaluator) runSession(cfg *config.Config, seed int64) int {
	table, err := pet.NewTable(cfg)
	if err != nil {
		return 0
	}
	frames, err := game.LoadFrameSet(game.NewSizedAssets(cfg), &table)
	if err != nil {
		return 0
	}

	collector := telemetry.NewCollector(cfg.Telemetry.Window)
	clock := game.NewManualClock(0)
	s, err := game.NewSession(cfg, frames, rand.New(rand.NewSource(seed)), clock.Now(), game.Options{
		Logger:   slog.New(slog.DiscardHandler),
		Observer: collector,
	})
	if err != nil {
		return 0
	}

	auto := &game.Autoplayer{Threshold: fe.player.Threshold, Interval: fe.player.Interval}
	step := int64(1000 / cfg.Screen.TargetFPS)
	for tick := 0; tick < fe.maxTicks && s.IsActive(); tick++ {
		s.Tick(clock.Advance(step))
		auto.Step(s)
	}
	collector.Finish(clock.Now(), s.Age())

	sessions := collector.TakeSessions()
	if len(sessions) == 0 {
		return s.Age()
	}
	return sessions[len(sessions)-1].FinalAge
}

// copyConfig returns a deep copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Stages = append([]config.StageConfig(nil), fe.baseConfig.Stages...)
	cfg.Effect.Sizes = append([]int(nil), fe.baseConfig.Effect.Sizes...)
	cfg.Assets = make(map[string]config.AssetConfig, len(fe.baseConfig.Assets))
	for k, v := range fe.baseConfig.Assets {
		cfg.Assets[k] = v
	}
	return &cfg
}

// rmse converts a mean squared error to the same units as the age.
func rmse(mse float64) float64 {
	return math.Sqrt(mse)
}
