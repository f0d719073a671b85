// Package ui drives the raylib window: the menu, playing and game over
// screens, and the translation of mouse state into session pointer events.
package ui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/config"
	"github.com/pthm-cable/komodo/game"
	"github.com/pthm-cable/komodo/inspector"
	"github.com/pthm-cable/komodo/renderer"
)

// Screen is the top-level UI state.
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// App owns the screens and forwards input to the session.
type App struct {
	session    *game.Session
	clock      game.Clock
	background *renderer.Background
	hud        *HUD
	menu       *Menu
	gameOver   *GameOver
	inspector  *inspector.Inspector
	observer   game.Observer
	logger     *slog.Logger

	screenW, screenH int32
	screen           Screen
	quit             bool
}

// NewApp builds the screens. The raylib window must already be open.
// observer, when non-nil, is attached to the session on the first Play.
func NewApp(cfg *config.Config, session *game.Session, assets *renderer.Assets, clock game.Clock, observer game.Observer, logger *slog.Logger) *App {
	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	return &App{
		session:    session,
		clock:      clock,
		background: renderer.NewBackground(assets.Texture("background"), cfg.Derived.ScreenW32, cfg.Screen.BackgroundScrollSpeed),
		hud:        NewHUD(w, h),
		menu:       NewMenu(assets.Texture("logo"), w, h),
		gameOver:   NewGameOver(w, h),
		inspector:  inspector.NewInspector(w, h),
		observer:   observer,
		logger:     logger,
		screenW:    w,
		screenH:    h,
	}
}

// Frame runs one frame: input, update and draw.
func (a *App) Frame() {
	now := a.clock.Now()
	a.background.Update()

	if a.screen != ScreenMenu {
		if a.screen == ScreenPlaying {
			a.inspector.HandleInput(a.session)
			a.handlePointer()
		}
		a.session.Tick(now)
		if a.screen == ScreenPlaying && !a.session.IsActive() {
			a.screen = ScreenGameOver
		}
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	a.background.Draw()
	renderer.DrawList(a.session.DrawList())

	var action MenuAction
	switch a.screen {
	case ScreenMenu:
		action = a.menu.Draw()
	case ScreenPlaying:
		a.hud.Draw(HUDData{
			Age:          a.session.Age(),
			Hunger:       a.session.Hunger(),
			ScreenWidth:  a.screenW,
			ScreenHeight: a.screenH,
		})
		a.inspector.Draw(a.session)
	case ScreenGameOver:
		action = a.gameOver.Draw(a.session.Age())
	}
	rl.EndDrawing()

	a.apply(action, now)
}

// handlePointer translates raylib mouse state into session pointer events.
func (a *App) handlePointer() {
	m := rl.GetMousePosition()
	pos := components.Position{X: m.X, Y: m.Y}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.session.PointerDown(pos)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		a.session.PointerMove(pos)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.session.PointerUp(pos)
	}
}

func (a *App) apply(action MenuAction, now int64) {
	switch action {
	case ActionPlay:
		if a.observer != nil {
			a.session.SetObserver(a.observer)
			a.observer = nil
		}
		if err := a.session.Reset(now); err != nil {
			a.logger.Error("session_reset_failed", "error", err)
			a.quit = true
			return
		}
		a.screen = ScreenPlaying
	case ActionQuit:
		a.quit = true
	}
}

// ShouldQuit reports whether the player asked to leave.
func (a *App) ShouldQuit() bool {
	return a.quit
}

// Screen returns the current screen.
func (a *App) Screen() Screen {
	return a.screen
}
