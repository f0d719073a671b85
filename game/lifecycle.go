package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/komodo/pet"
)

// Tick advances the session to now. Once the pet has died only effects move,
// so calling it repeatedly is safe.
func (s *Session) Tick(now int64) {
	s.now = now
	if s.mode == ModeEnded {
		s.effects.Update(now)
		return
	}

	before := s.state.Stage()
	s.advanceAge(now)
	if after := s.state.Stage(); after != before {
		s.stageChanged(now, before, after)
	}

	if s.advanceHunger(now) {
		s.die(now)
		s.effects.Update(now)
		return
	}

	// Hatched pets drop the egg for good
	if s.state.Age >= pet.BabyAge {
		s.egg = nil
	}

	age := s.state.Age
	s.flies.SetPetAge(age)
	s.flies.Trim(s.table.MaxFlies(age), s.dragged)
	if s.flies.Get(s.dragged) == nil {
		s.dragged = ecs.Entity{}
	}
	s.flies.Update(now)
	s.Active().Update(now)
	s.effects.Update(now)
}

// advanceAge hatches the egg or adds a year when one is due.
// An unhatched pet only leaves age 0 by hatching.
func (s *Session) advanceAge(now int64) {
	st := &s.state
	if st.Age == 0 {
		if s.egg == nil || !s.egg.Completed() ||
			!(s.egg.JustHatched() || now-st.LastAgeTickAt >= s.cfg.Timing.HatchGrace) {
			return
		}
		st.Age = pet.BabyAge
		st.LastAgeTickAt = now
		st.LastHungerTickAt = now
		s.logger.Info("egg_hatched", "at", now)
		if s.observer != nil {
			s.observer.Hatched(now)
		}
		return
	}

	if now-st.LastAgeTickAt >= s.cfg.Timing.AgeInterval {
		st.Age++
		st.LastAgeTickAt = now
	}
}

// advanceHunger applies hunger decay and reports whether the pet starved.
// The egg does not get hungry.
func (s *Session) advanceHunger(now int64) bool {
	st := &s.state
	if st.Age < pet.BabyAge {
		st.Hunger = s.cfg.Pet.MaxHunger
		st.LastHungerTickAt = now
		return false
	}
	if now-st.LastHungerTickAt < s.cfg.Timing.HungerInterval {
		return false
	}

	st.Starve(s.cfg.Pet.HungerDecay)
	st.LastHungerTickAt = now
	if s.observer != nil {
		s.observer.HungerTicked(now, st.Hunger)
	}
	return st.Starved()
}

func (s *Session) stageChanged(now int64, from, to pet.Stage) {
	s.spawnEffect(now)
	s.logger.Info("stage_changed", "at", now, "from", from.String(), "to", to.String(), "age", s.state.Age)
	if s.observer != nil {
		s.observer.StageChanged(now, from, to, s.state.Age)
	}
}

func (s *Session) die(now int64) {
	s.mode = ModeEnded
	if fly := s.flies.Get(s.dragged); fly != nil {
		fly.StopDrag()
	}
	s.dragged = ecs.Entity{}
	s.spawnEffect(now)
	s.logger.Info("pet_died", "at", now, "age", s.state.Age)
	if s.observer != nil {
		s.observer.Died(now, s.state.Age)
	}
}

func (s *Session) spawnEffect(now int64) {
	if err := s.effects.Spawn(s.anchor, now); err != nil {
		s.logger.Warn("effect_spawn_failed", "error", err)
	}
}
