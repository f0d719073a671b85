package game

import "github.com/pthm-cable/komodo/components"

// DrawRequest asks the renderer to draw Image centered on Center.
type DrawRequest struct {
	Image  components.Image
	Center components.Position
}

// DrawList returns the scene back to front: pet, flies, effects.
func (s *Session) DrawList() []DrawRequest {
	active := s.Active()
	list := make([]DrawRequest, 0, 1+s.flies.Count()+s.effects.Count())
	list = append(list, DrawRequest{Image: active.Image(), Center: active.Position()})
	for _, f := range s.flies.Flies() {
		list = append(list, DrawRequest{Image: f.Image(), Center: f.Position()})
	}
	for _, b := range s.effects.Bursts() {
		list = append(list, DrawRequest{Image: b.Image(), Center: b.Position()})
	}
	return list
}
