package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Status box layout along the top of the playing screen.
const (
	boxSize  = 50
	boxCount = 4
)

var boxColors = [boxCount]rl.Color{rl.Red, rl.Blue, rl.Green, rl.Purple}

// HUDData holds all the data needed to render the playing HUD.
type HUDData struct {
	Age          int
	Hunger       int
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the playing heads-up display.
type HUD struct {
	boxes [boxCount]rl.Rectangle
}

// NewHUD creates a HUD laid out for the screen size.
func NewHUD(screenW, screenH int32) *HUD {
	h := &HUD{}
	spacing := screenW / (boxCount + 1)
	y := screenH/8 - boxSize/2
	for i := range h.boxes {
		x := spacing*int32(i+1) - boxSize/2
		h.boxes[i] = rl.NewRectangle(float32(x), float32(y), boxSize, boxSize)
	}
	return h
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(fmt.Sprintf("Pet age: %d years", data.Age), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Pet hunger: %d%%", data.Hunger), 10, 40, 20, rl.White)

	for i, r := range h.boxes {
		rl.DrawRectangleRec(r, boxColors[i])
		rl.DrawRectangleLinesEx(r, 2, rl.White)
	}
}

// drawCentered draws text horizontally centered on cx.
func drawCentered(text string, cx, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
}
