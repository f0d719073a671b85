package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// Background scrolls a screen-sized texture to the left and wraps it.
type Background struct {
	texture rl.Texture2D
	width   float32
	speed   float32
	offset  float32
}

// NewBackground creates a background scrolling speed pixels per frame.
func NewBackground(texture rl.Texture2D, screenW, speed float32) *Background {
	return &Background{texture: texture, width: screenW, speed: speed}
}

// Update advances the scroll by one frame.
func (b *Background) Update() {
	b.offset -= b.speed
	if b.offset <= -b.width {
		b.offset = 0
	}
}

// Draw renders two copies side by side so the seam never shows.
func (b *Background) Draw() {
	rl.DrawTextureV(b.texture, rl.NewVector2(b.offset, 0), rl.White)
	rl.DrawTextureV(b.texture, rl.NewVector2(b.offset+b.width, 0), rl.White)
}
