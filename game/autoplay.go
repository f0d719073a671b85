package game

// Autoplayer feeds the pet whenever hunger drops to Threshold, driving the
// same pointer events a player would. With a non-zero Interval it only looks
// at the pet that often, like a player with other things to do.
type Autoplayer struct {
	Threshold int
	Interval  int64
	Feeds     int

	lastLookAt int64
	looked     bool
}

// NewAutoplayer returns an autoplayer that feeds at or below threshold.
func NewAutoplayer(threshold int) *Autoplayer {
	return &Autoplayer{Threshold: threshold}
}

// Step drags the first free fly onto the pet if it is hungry enough.
// Reports whether a feed was attempted.
func (a *Autoplayer) Step(s *Session) bool {
	if !s.IsActive() {
		return false
	}
	now := s.Now()
	if a.Interval > 0 {
		if a.looked && now-a.lastLookAt < a.Interval {
			return false
		}
		a.looked = true
		a.lastLookAt = now
	}
	if s.Hunger() > a.Threshold {
		return false
	}
	flies := s.Flies().Flies()
	if len(flies) == 0 {
		return false
	}

	target := s.Target().Center()
	s.PointerDown(flies[0].Position())
	s.PointerMove(target)
	s.PointerUp(target)
	a.Feeds++
	return true
}
