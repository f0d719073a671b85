package pet

// State is the pet's simulated body. Timestamps are game-clock milliseconds.
type State struct {
	Age              int
	Hunger           int // 0 = starved, MaxHunger = full
	LastAgeTickAt    int64
	LastHungerTickAt int64
}

// Stage returns the stage derived from Age.
func (s State) Stage() Stage {
	return StageFor(s.Age)
}

// Feed raises hunger by amount, capped at max. Returns the new hunger.
func (s *State) Feed(amount, max int) int {
	s.Hunger = clamp(s.Hunger+amount, 0, max)
	return s.Hunger
}

// Starve lowers hunger by amount, floored at zero. Returns the new hunger.
func (s *State) Starve(amount int) int {
	s.Hunger = clamp(s.Hunger-amount, 0, s.Hunger)
	return s.Hunger
}

// Starved reports whether hunger has run out.
func (s State) Starved() bool {
	return s.Hunger <= 0
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
