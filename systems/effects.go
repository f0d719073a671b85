package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/sprites"
)

// Effect is the ECS component wrapping one transition burst.
type Effect struct {
	Burst *sprites.Burst
}

// EffectSystem plays transition bursts and removes them once finished.
type EffectSystem struct {
	world  *ecs.World
	mapper *ecs.Map1[Effect]
	filter *ecs.Filter1[Effect]

	frames   components.Frames
	interval int64
}

// NewEffectSystem creates an empty effect system.
func NewEffectSystem(frames components.Frames, frameInterval int64) *EffectSystem {
	world := ecs.NewWorld()
	return &EffectSystem{
		world:    world,
		mapper:   ecs.NewMap1[Effect](world),
		filter:   ecs.NewFilter1[Effect](world),
		frames:   frames,
		interval: frameInterval,
	}
}

// Spawn starts a burst centered on origin.
func (s *EffectSystem) Spawn(origin components.Position, now int64) error {
	burst, err := sprites.NewBurst(s.frames, origin, now, s.interval)
	if err != nil {
		return err
	}
	s.mapper.NewEntity(&Effect{Burst: burst})
	return nil
}

// Update advances every burst and removes the finished ones.
func (s *EffectSystem) Update(now int64) {
	var done []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		b := query.Get().Burst
		b.Update(now)
		if b.Done() {
			done = append(done, query.Entity())
		}
	}

	for _, e := range done {
		s.world.RemoveEntity(e)
	}
}

// Clear removes every burst.
func (s *EffectSystem) Clear() {
	var all []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		s.world.RemoveEntity(e)
	}
}

// Count returns the number of live bursts.
func (s *EffectSystem) Count() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Bursts returns the live bursts in query order.
func (s *EffectSystem) Bursts() []*sprites.Burst {
	var out []*sprites.Burst
	query := s.filter.Query()
	for query.Next() {
		out = append(out, query.Get().Burst)
	}
	return out
}
