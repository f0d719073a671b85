package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/komodo/game"
)

// DrawList draws each request centered on its position, in order.
func DrawList(list []game.DrawRequest) {
	for _, req := range list {
		f, ok := req.Image.(*Frame)
		if !ok {
			continue
		}
		pos := rl.NewVector2(req.Center.X-f.Width()/2, req.Center.Y-f.Height()/2)
		rl.DrawTextureV(f.Texture, pos, rl.White)
	}
}
