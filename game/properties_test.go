package game

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/config"
)

// TestSession_Invariants drives a session with random pointer activity and
// checks the fly cap and hunger rules after every tick.
func TestSession_Invariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := config.MustLoad("")
		cfg.Timing.AgeInterval = int64(rapid.IntRange(50, 3000).Draw(rt, "age_interval"))
		seed := rapid.Int64().Draw(rt, "seed")
		s, _ := newTestSessionWith(rt, cfg, seed)

		now := int64(0)
		steps := rapid.IntRange(50, 400).Draw(rt, "steps")
		for i := 0; i < steps && s.IsActive(); i++ {
			switch rapid.IntRange(0, 3).Draw(rt, "action") {
			case 1:
				if flies := s.Flies().Flies(); len(flies) > 0 {
					s.PointerDown(flies[0].Position())
				}
			case 2:
				s.PointerMove(components.Position{
					X: rapid.Float32Range(0, 400).Draw(rt, "x"),
					Y: rapid.Float32Range(0, 600).Draw(rt, "y"),
				})
			case 3:
				if s.Dragged() != nil {
					before := s.Flies().Count()
					target := s.Target()
					pos := s.Dragged().Position()
					s.PointerUp(pos)
					if target.Contains(pos) {
						if s.Flies().Count() > before {
							rt.Fatalf("feeding grew the swarm from %d to %d", before, s.Flies().Count())
						}
					}
				}
			}

			hungerBefore := s.Hunger()
			ageBefore := s.Age()
			now += int64(rapid.IntRange(1, 200).Draw(rt, "dt"))
			s.Tick(now)

			if max := s.table.MaxFlies(s.Age()); s.Flies().Count() > max {
				rt.Fatalf("%d flies above the cap %d at age %d", s.Flies().Count(), max, s.Age())
			}
			if s.Hunger() < 0 || s.Hunger() > cfg.Pet.MaxHunger {
				rt.Fatalf("hunger %d out of range", s.Hunger())
			}
			if s.Age() < ageBefore {
				rt.Fatalf("age went back from %d to %d", ageBefore, s.Age())
			}
			if s.Age() == 0 && s.Hunger() != cfg.Pet.MaxHunger {
				rt.Fatalf("egg hunger %d, want full", s.Hunger())
			}
			if s.Age() > 0 && ageBefore > 0 && s.Hunger() > hungerBefore {
				rt.Fatalf("hunger rose from %d to %d without feeding", hungerBefore, s.Hunger())
			}
			if fly := s.Dragged(); fly != nil && !fly.Dragging() {
				rt.Fatal("dragged reference points at a free fly")
			}
		}
	})
}
