// Package renderer is the raylib side of the game: it loads frames as
// textures, supplies the clock and draws session draw lists.
package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// Frame is one loaded texture. It implements components.Image.
type Frame struct {
	Texture rl.Texture2D
}

func (f *Frame) Width() float32 {
	return float32(f.Texture.Width)
}

func (f *Frame) Height() float32 {
	return float32(f.Texture.Height)
}
