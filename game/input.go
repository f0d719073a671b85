package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/pet"
)

// PointerDown picks up the first fly under pos. Only one fly is dragged at a time.
func (s *Session) PointerDown(pos components.Position) {
	if s.mode != ModePlaying || s.Dragged() != nil {
		return
	}
	e, ok := s.flies.HitTest(pos)
	if !ok {
		return
	}
	s.dragged = e
	s.flies.Get(e).StartDrag()
}

// PointerMove moves the dragged fly to pos.
func (s *Session) PointerMove(pos components.Position) {
	if s.mode != ModePlaying {
		return
	}
	if fly := s.Dragged(); fly != nil {
		fly.SetDragPosition(pos)
	}
}

// PointerUp drops the dragged fly. Released on the pet it is eaten; anywhere
// else it flies off again.
func (s *Session) PointerUp(pos components.Position) {
	if s.mode != ModePlaying {
		return
	}
	fly := s.Dragged()
	if fly == nil {
		return
	}
	e := s.dragged
	s.dragged = ecs.Entity{}

	if !s.Target().Contains(pos) {
		fly.StopDrag()
		return
	}
	s.feed(e)
}

// feed eats the fly e and tops the population back up under the stage cap.
func (s *Session) feed(e ecs.Entity) {
	now := s.now
	s.state.Feed(s.cfg.Pet.FeedAmount, s.cfg.Pet.MaxHunger)
	s.flies.Remove(e)

	if s.state.Age < pet.BabyAge && s.egg != nil {
		s.egg.SetShake(s.cfg.Egg.FeedShake)
	} else {
		s.stages[s.activeStage()].StartEating(now)
	}

	age := s.state.Age
	if s.flies.Count() < s.table.MaxFlies(age) {
		if _, err := s.flies.SpawnRandom(age, now); err != nil {
			s.logger.Warn("fly_spawn_failed", "error", err)
		}
	}

	s.logger.Info("pet_fed", "at", now, "hunger", s.state.Hunger, "flies", s.flies.Count())
	if s.observer != nil {
		s.observer.Fed(now, s.state.Hunger)
	}
}
