package inspector

import (
	"fmt"

	"github.com/pthm-cable/komodo/game"
	"github.com/pthm-cable/komodo/sprites"
)

// PetView is the pet section of the panel.
type PetView struct {
	Mode    string
	Stage   string
	Age     int
	Hunger  int `inspect:"bar,max:100"`
	Egg     string
	Shake   int
	Flies   int
	Effects int
	Anchor  string `inspect:"label"`
}

// FlyView is the selected fly section of the panel.
type FlyView struct {
	Position string
	Heading  float64 `inspect:"angle"`
	Speed    float32 `inspect:"label,fmt:%.1f px/tick"`
	Dragging bool
}

// SnapshotPet reads the pet section from a session.
func SnapshotPet(s *game.Session) PetView {
	v := PetView{
		Mode:    s.Mode().String(),
		Stage:   s.Stage().String(),
		Age:     s.Age(),
		Hunger:  s.Hunger(),
		Egg:     "gone",
		Flies:   s.Flies().Count(),
		Effects: s.Effects().Count(),
	}
	if egg := s.Egg(); egg != nil {
		v.Egg = egg.Phase().String()
		v.Shake = egg.Shake()
	}
	a := s.Anchor()
	v.Anchor = fmt.Sprintf("(%.0f, %.0f)", a.X, a.Y)
	return v
}

// SnapshotFly reads the fly section from a fly sprite.
func SnapshotFly(f *sprites.Fly) FlyView {
	p := f.Position()
	return FlyView{
		Position: fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y),
		Heading:  f.Heading(),
		Speed:    f.Speed(),
		Dragging: f.Dragging(),
	}
}
