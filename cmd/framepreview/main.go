// Frame preview tool - cycles any asset from the config at an adjustable rate.
//
// Usage: go run ./cmd/framepreview -assets .
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/config"
	"github.com/pthm-cable/komodo/game"
	"github.com/pthm-cable/komodo/renderer"
	"github.com/pthm-cable/komodo/sprites"
)

const (
	windowWidth  = 720
	windowHeight = 480
	previewSize  = 400
	panelX       = previewSize + 30
	panelWidth   = windowWidth - panelX - 20
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	assetsDir := flag.String("assets", ".", "Directory containing the graphics folder")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ids := assetIDs(cfg)

	rl.InitWindow(windowWidth, windowHeight, "Frame Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	assets := renderer.NewAssets(*assetsDir, cfg, logger)
	defer assets.Unload()

	clock := renderer.Clock{}
	center := components.Position{X: 10 + previewSize/2, Y: 10 + previewSize/2}
	interval := float32(cfg.Timing.FrameInterval)
	selected := 0

	sprite, frames := load(assets, ids[selected], center, int64(interval), clock.Now())

	for !rl.WindowShouldClose() {
		now := clock.Now()
		if sprite != nil {
			sprite.Update(now)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
		if sprite != nil {
			renderer.DrawList([]game.DrawRequest{{Image: sprite.Image(), Center: sprite.Position()}})
			rl.DrawText(fmt.Sprintf("Frame %d/%d", sprite.Frame()+1, len(frames)), 15, previewSize+20, 16, rl.DarkGray)
		} else {
			rl.DrawText("no frames", 15, previewSize+20, 16, rl.Maroon)
		}

		panelY := float32(10)
		rl.DrawText("Asset", panelX, int32(panelY), 20, rl.DarkGray)
		panelY += 30
		rl.DrawText(ids[selected], panelX, int32(panelY), 18, rl.Gray)
		panelY += 30

		changed := false
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth/2 - 5, Height: 30}, "Prev") {
			selected = (selected + len(ids) - 1) % len(ids)
			changed = true
		}
		if gui.Button(rl.Rectangle{X: panelX + panelWidth/2 + 5, Y: panelY, Width: panelWidth/2 - 5, Height: 30}, "Next") {
			selected = (selected + 1) % len(ids)
			changed = true
		}
		panelY += 50

		rl.DrawText("Frame interval (ms)", panelX, int32(panelY), 14, rl.Gray)
		panelY += 18
		newInterval := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 50, Height: 20},
			"", "",
			interval, 20, 1000,
		)
		rl.DrawText(fmt.Sprintf("%.0f", interval), int32(panelX+panelWidth-45), int32(panelY+2), 16, rl.DarkGray)
		if int64(newInterval) != int64(interval) {
			interval = newInterval
			changed = true
		}

		if changed {
			sprite, frames = load(assets, ids[selected], center, int64(interval), now)
		}

		rl.EndDrawing()
	}
}

// assetIDs returns every previewable frame id in a stable order.
func assetIDs(cfg *config.Config) []string {
	ids := make([]string, 0, len(cfg.Assets)+1)
	for id := range cfg.Assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return append(ids, game.FramesBurst)
}

func load(assets *renderer.Assets, id string, center components.Position, interval, now int64) (*sprites.Animated, components.Frames) {
	frames := assets.LoadFrames(id)
	sprite, err := sprites.NewAnimated(frames, nil, center, sprites.AnimTiming{FrameInterval: interval}, now)
	if err != nil {
		return nil, frames
	}
	return sprite, frames
}
