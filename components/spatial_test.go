package components

import "testing"

func TestRectAround(t *testing.T) {
	r := RectAround(Position{X: 200, Y: 400}, 250, 250)

	if r.X != 75 || r.Y != 275 {
		t.Errorf("expected top-left (75, 275), got (%f, %f)", r.X, r.Y)
	}
	if c := r.Center(); c.X != 200 || c.Y != 400 {
		t.Errorf("expected center (200, 400), got (%f, %f)", c.X, c.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"inside", Position{20, 20}, true},
		{"top-left corner", Position{10, 10}, true},
		{"bottom-right corner", Position{30, 30}, false},
		{"left of", Position{9.9, 20}, false},
		{"below", Position{20, 31}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
