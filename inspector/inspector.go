// Package inspector draws a debug panel over the game: the pet's state
// and, when one is selected, a single fly.
package inspector

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/game"
)

// Panel dimensions
const (
	PanelWidth   = 240
	PanelPadding = 10
	HeaderHeight = 30
	sectionGap   = 28
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 230}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Inspector toggles the panel and tracks the selected fly.
type Inspector struct {
	visible     bool
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates a hidden inspector anchored to the right edge.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	return &Inspector{
		panelX: screenWidth - PanelWidth - 10,
		panelY: screenHeight / 5,
	}
}

// HandleInput toggles the panel with I and selects flies with right click.
// Left click stays with the session for dragging.
func (ins *Inspector) HandleInput(s *game.Session) {
	if rl.IsKeyPressed(rl.KeyI) {
		ins.Toggle()
	}
	if !ins.visible {
		return
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		m := rl.GetMousePosition()
		ins.Select(s, components.Position{X: m.X, Y: m.Y})
	}
}

// Toggle shows or hides the panel.
func (ins *Inspector) Toggle() {
	ins.visible = !ins.visible
	if !ins.visible {
		ins.Deselect()
	}
}

// Visible reports whether the panel is shown.
func (ins *Inspector) Visible() bool {
	return ins.visible
}

// Select picks the fly under pos, or clears the selection on a miss.
func (ins *Inspector) Select(s *game.Session, pos components.Position) bool {
	e, ok := s.Flies().HitTest(pos)
	if !ok {
		ins.Deselect()
		return false
	}
	ins.selected = e
	ins.hasSelected = true
	return true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.selected = ecs.Entity{}
	ins.hasSelected = false
}

// Selected returns the selected fly entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Fields returns the panel rows: pet fields, then fly fields when a live
// fly is selected. A selection whose fly was eaten or trimmed is dropped.
func (ins *Inspector) Fields(s *game.Session) (pet, fly []Field) {
	pet = ExtractFields(SnapshotPet(s))
	if !ins.hasSelected {
		return pet, nil
	}
	f := s.Flies().Get(ins.selected)
	if f == nil {
		ins.Deselect()
		return pet, nil
	}
	return pet, ExtractFields(SnapshotFly(f))
}

// Draw renders the panel and the selection highlight.
func (ins *Inspector) Draw(s *game.Session) {
	if !ins.visible {
		return
	}
	petFields, flyFields := ins.Fields(s)

	height := int32(HeaderHeight + PanelPadding + sectionGap)
	for _, f := range petFields {
		height += FieldHeight(f)
	}
	if flyFields != nil {
		height += sectionGap
		for _, f := range flyFields {
			height += FieldHeight(f)
		}
	}
	height += PanelPadding

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	ins.drawSectionHeader(x, y, "PET")
	y += sectionGap
	for _, f := range petFields {
		y += DrawField(x, y, f)
	}

	if flyFields == nil {
		return
	}
	ins.drawSectionHeader(x, y, "FLY")
	y += sectionGap
	for _, f := range flyFields {
		y += DrawField(x, y, f)
	}

	if fly := s.Flies().Get(ins.selected); fly != nil {
		drawHighlight(fly.HitRegion(), fly.Heading())
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// drawHighlight outlines the selected fly and points along its heading.
func drawHighlight(r components.Rect, heading float64) {
	rl.DrawRectangleLinesEx(rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}, 2, rl.Yellow)

	c := r.Center()
	length := max(r.Width, r.Height)
	end := rl.Vector2{
		X: c.X + length*float32(math.Cos(heading)),
		Y: c.Y + length*float32(math.Sin(heading)),
	}
	rl.DrawLineEx(rl.Vector2{X: c.X, Y: c.Y}, end, 2, rl.Yellow)
}
