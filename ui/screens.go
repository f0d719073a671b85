package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	title       = "Reptile Pet Simulator"
	description = "Take care of your reptile pet and watch it grow!"

	buttonW = 200
	buttonH = 50
)

// MenuAction is what the player picked on a screen this frame.
type MenuAction uint8

const (
	ActionNone MenuAction = iota
	ActionPlay
	ActionQuit
)

// Menu is the title screen.
type Menu struct {
	logo        rl.Texture2D
	screenW     int32
	screenH     int32
	play, close rl.Rectangle
}

// NewMenu lays out the title screen.
func NewMenu(logo rl.Texture2D, screenW, screenH int32) *Menu {
	x := float32(screenW/2 - buttonW/2)
	return &Menu{
		logo:    logo,
		screenW: screenW,
		screenH: screenH,
		play:    rl.NewRectangle(x, float32(screenH/2+100), buttonW, buttonH),
		close:   rl.NewRectangle(x, float32(screenH/2+170), buttonW, buttonH),
	}
}

// Draw renders the menu over the current frame and returns the chosen action.
func (m *Menu) Draw() MenuAction {
	rl.DrawRectangle(0, 0, m.screenW, m.screenH, rl.NewColor(0, 0, 0, 128))

	size := int32(40)
	if rl.MeasureText(title, size) > m.screenW-20 {
		size = 32
	}
	drawCentered(title, m.screenW/2, m.screenH/8-size/2, size, rl.White)

	if m.logo.ID != 0 {
		x := m.screenW/2 - m.logo.Width/2
		y := m.screenH/4 + 30 - m.logo.Height/2
		rl.DrawTexture(m.logo, x, y, rl.White)
	}
	drawCentered(description, m.screenW/2, m.screenH/2-35, 16, rl.White)

	switch {
	case gui.Button(m.play, "Play"):
		return ActionPlay
	case gui.Button(m.close, "Quit"):
		return ActionQuit
	}
	return ActionNone
}

// GameOver is the screen shown after the pet died.
type GameOver struct {
	screenW     int32
	screenH     int32
	retry, exit rl.Rectangle
}

// NewGameOver lays out the game over screen.
func NewGameOver(screenW, screenH int32) *GameOver {
	x := float32(screenW/2 - buttonW/2)
	return &GameOver{
		screenW: screenW,
		screenH: screenH,
		retry:   rl.NewRectangle(x, float32(screenH/2), buttonW, buttonH),
		exit:    rl.NewRectangle(x, float32(screenH/2+70), buttonW, buttonH),
	}
}

// Draw renders the final age and returns ActionPlay for Retry, ActionQuit for Exit.
func (g *GameOver) Draw(age int) MenuAction {
	drawCentered("Game Over", g.screenW/2, g.screenH/4-20, 40, rl.Red)
	drawCentered(fmt.Sprintf("Your pet lived to %d years old", age), g.screenW/2, g.screenH/3-10, 20, rl.White)

	switch {
	case gui.Button(g.retry, "Retry"):
		return ActionPlay
	case gui.Button(g.exit, "Exit"):
		return ActionQuit
	}
	return ActionNone
}
