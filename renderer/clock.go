package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// Clock reads the raylib window clock in milliseconds.
type Clock struct{}

func (Clock) Now() int64 {
	return int64(rl.GetTime() * 1000)
}
