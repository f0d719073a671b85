package sprites

import "github.com/pthm-cable/komodo/components"

// testImage is a sized frame with an id so tests can tell frames apart.
type testImage struct {
	id   int
	w, h float32
}

func (i testImage) Width() float32  { return i.w }
func (i testImage) Height() float32 { return i.h }

func frames(n int, size float32) components.Frames {
	out := make(components.Frames, n)
	for i := range out {
		out[i] = testImage{id: i, w: size, h: size}
	}
	return out
}

func frameID(img components.Image) int {
	return img.(testImage).id
}
