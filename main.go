package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/komodo/config"
	"github.com/pthm-cable/komodo/game"
	"github.com/pthm-cable/komodo/pet"
	"github.com/pthm-cable/komodo/renderer"
	"github.com/pthm-cable/komodo/telemetry"
	"github.com/pthm-cable/komodo/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	assetsDir := flag.String("assets", ".", "Directory containing the graphics folder")
	headless := flag.Bool("headless", false, "Run without graphics")
	autofeed := flag.Bool("autofeed", false, "Feed the pet automatically when hungry")
	feedAt := flag.Int("feed-at", 50, "Hunger at or below which autofeed drags a fly")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	table, err := pet.NewTable(cfg)
	if err != nil {
		slog.Error("invalid stage table", "error", err)
		os.Exit(1)
	}

	r := &runner{
		cfg:       cfg,
		collector: telemetry.NewCollector(cfg.Telemetry.Window),
		output:    output,
		logger:    logger,
	}
	if *autofeed {
		r.auto = game.NewAutoplayer(*feedAt)
	}

	if *headless {
		slog.Info("starting headless session",
			"seed", rngSeed,
			"autofeed", *autofeed,
			"max_ticks", *maxTicks,
		)
		clock := game.NewManualClock(0)
		if err := r.start(game.NewSizedAssets(cfg), &table, rngSeed, clock.Now(), r.collector); err != nil {
			slog.Error("failed to start session", "error", err)
			os.Exit(1)
		}
		step := int64(1000 / cfg.Screen.TargetFPS)
		for tick := 1; *maxTicks == 0 || tick <= *maxTicks; tick++ {
			now := clock.Advance(step)
			r.session.Tick(now)
			r.afterTick(now)
			if !r.session.IsActive() {
				if err := r.session.Reset(now); err != nil {
					slog.Error("failed to reset session", "error", err)
					os.Exit(1)
				}
			}
		}
		slog.Info("max ticks reached", "tick", *maxTicks)
		r.finish(clock.Now())
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Reptile Pet Simulator")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	assets := renderer.NewAssets(*assetsDir, cfg, logger)
	defer assets.Unload()

	// The menu session is never played; telemetry attaches on Play.
	clock := renderer.Clock{}
	if err := r.start(assets, &table, rngSeed, clock.Now(), nil); err != nil {
		slog.Error("failed to start session", "error", err)
		os.Exit(1)
	}
	app := ui.NewApp(cfg, r.session, assets, clock, r.collector, logger)

	for tick := 0; !rl.WindowShouldClose() && !app.ShouldQuit(); tick++ {
		app.Frame()
		if app.Screen() != ui.ScreenMenu {
			r.afterTick(clock.Now())
		}
		if *maxTicks > 0 && tick >= *maxTicks {
			break
		}
	}
	r.finish(clock.Now())
}

// runner wires a session to telemetry and the optional autoplayer.
type runner struct {
	cfg       *config.Config
	session   *game.Session
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	auto      *game.Autoplayer
	logger    *slog.Logger
}

func (r *runner) start(assets game.Assets, table *pet.Table, seed int64, now int64, observer game.Observer) error {
	frames, err := game.LoadFrameSet(assets, table)
	if err != nil {
		return err
	}
	r.session, err = game.NewSession(r.cfg, frames, rand.New(rand.NewSource(seed)), now, game.Options{
		Logger:   r.logger,
		Observer: observer,
	})
	return err
}

// afterTick runs the autoplayer and flushes telemetry windows and sessions.
func (r *runner) afterTick(now int64) {
	if r.auto != nil {
		r.auto.Step(r.session)
	}

	if r.collector.ShouldFlush(now) {
		stats := r.collector.Flush(now, r.session.Age(), r.session.Flies().Count())
		r.logger.Info("stats", "window", stats)
		if err := r.output.WriteWindow(stats); err != nil {
			r.logger.Warn("failed to write window", "error", err)
		}
	}
	r.writeSessions()
}

func (r *runner) finish(now int64) {
	r.collector.Finish(now, r.session.Age())
	r.writeSessions()
}

func (r *runner) writeSessions() {
	sessions := r.collector.TakeSessions()
	for _, s := range sessions {
		r.logger.Info("session_summary", "session", s)
	}
	if err := r.output.WriteSessions(sessions); err != nil {
		r.logger.Warn("failed to write sessions", "error", err)
	}
}
