package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/komodo/components"
	"github.com/pthm-cable/komodo/pet"
	"github.com/pthm-cable/komodo/sprites"
)

// FlyAgent is the ECS component wrapping one fly.
type FlyAgent struct {
	Fly *sprites.Fly
}

// SpawnBand is the rectangle replacement flies appear in.
type SpawnBand struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// FlySystem owns the flies of a session. The ark query order decides
// hit-test ties and trim order. It is deterministic but is not creation
// order once a fly has been removed.
type FlySystem struct {
	world  *ecs.World
	mapper *ecs.Map1[FlyAgent]
	filter *ecs.Filter1[FlyAgent]

	frames components.Frames
	timing sprites.FlyTiming
	bounds sprites.Bounds
	band   SpawnBand
	table  *pet.Table
	rng    *rand.Rand
}

// NewFlySystem creates an empty fly system.
func NewFlySystem(frames components.Frames, timing sprites.FlyTiming, bounds sprites.Bounds, band SpawnBand, table *pet.Table, rng *rand.Rand) *FlySystem {
	world := ecs.NewWorld()
	return &FlySystem{
		world:  world,
		mapper: ecs.NewMap1[FlyAgent](world),
		filter: ecs.NewFilter1[FlyAgent](world),
		frames: frames,
		timing: timing,
		bounds: bounds,
		band:   band,
		table:  table,
		rng:    rng,
	}
}

// Spawn adds a fly at pos moving at the speed for age.
func (s *FlySystem) Spawn(pos components.Position, age int, now int64) (ecs.Entity, error) {
	fly, err := sprites.NewFly(s.frames, pos, s.table.FlySpeed(age), now, s.timing, s.bounds, s.rng)
	if err != nil {
		return ecs.Entity{}, err
	}
	return s.mapper.NewEntity(&FlyAgent{Fly: fly}), nil
}

// SpawnRandom adds a fly at a uniform position inside the spawn band.
func (s *FlySystem) SpawnRandom(age int, now int64) (ecs.Entity, error) {
	pos := components.Position{
		X: s.band.MinX + s.rng.Float32()*(s.band.MaxX-s.band.MinX),
		Y: s.band.MinY + s.rng.Float32()*(s.band.MaxY-s.band.MinY),
	}
	return s.Spawn(pos, age, now)
}

// Reset removes every fly and spawns the stage cap for age.
func (s *FlySystem) Reset(age int, now int64) error {
	s.Clear()
	for i := 0; i < s.table.MaxFlies(age); i++ {
		if _, err := s.SpawnRandom(age, now); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every fly.
func (s *FlySystem) Clear() {
	for _, e := range s.Entities() {
		s.world.RemoveEntity(e)
	}
}

// SetPetAge applies the stage speed for age to every fly.
func (s *FlySystem) SetPetAge(age int) {
	speed := s.table.FlySpeed(age)
	query := s.filter.Query()
	for query.Next() {
		query.Get().Fly.SetSpeed(speed)
	}
}

// Trim removes flies above limit, free flies first, walking back from the
// end of the query order.
// The kept entity is never removed unless it is the only thing left above the limit.
func (s *FlySystem) Trim(limit int, keep ecs.Entity) int {
	entities := s.Entities()
	excess := len(entities) - limit
	if excess <= 0 {
		return 0
	}

	var toRemove []ecs.Entity
	for i := len(entities) - 1; i >= 0 && len(toRemove) < excess; i-- {
		if entities[i] != keep {
			toRemove = append(toRemove, entities[i])
		}
	}
	if len(toRemove) < excess && s.world.Alive(keep) {
		toRemove = append(toRemove, keep)
	}

	for _, e := range toRemove {
		s.world.RemoveEntity(e)
	}
	return len(toRemove)
}

// Update advances every fly.
func (s *FlySystem) Update(now int64) {
	query := s.filter.Query()
	for query.Next() {
		query.Get().Fly.Update(now)
	}
}

// HitTest returns the first fly whose hit region contains pos.
func (s *FlySystem) HitTest(pos components.Position) (ecs.Entity, bool) {
	query := s.filter.Query()
	for query.Next() {
		if query.Get().Fly.HitRegion().Contains(pos) {
			e := query.Entity()
			query.Close()
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// Get returns the fly behind e, or nil if e is not a live fly.
func (s *FlySystem) Get(e ecs.Entity) *sprites.Fly {
	if e.IsZero() || !s.world.Alive(e) {
		return nil
	}
	return s.mapper.Get(e).Fly
}

// Remove destroys the fly behind e.
func (s *FlySystem) Remove(e ecs.Entity) bool {
	if e.IsZero() || !s.world.Alive(e) {
		return false
	}
	s.world.RemoveEntity(e)
	return true
}

// Count returns the number of live flies.
func (s *FlySystem) Count() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Entities returns the live fly entities in query order.
func (s *FlySystem) Entities() []ecs.Entity {
	var out []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// Flies returns the live flies in query order.
func (s *FlySystem) Flies() []*sprites.Fly {
	var out []*sprites.Fly
	query := s.filter.Query()
	for query.Next() {
		out = append(out, query.Get().Fly)
	}
	return out
}
