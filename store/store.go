// Package store keeps the active confetti particles: a mapping from id to
// entity plus the ordered list of live ids that fixes draw order.
package store

import (
	"slices"

	"github.com/automoto/confetti-cannon/archetypes"
	"github.com/automoto/confetti-cannon/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IDGenerator hands out particle ids. Ids must never repeat within a store.
type IDGenerator interface {
	NextID() components.ParticleID
}

// Counter is a monotonic IDGenerator starting at 1.
type Counter struct {
	last components.ParticleID
}

func (c *Counter) NextID() components.ParticleID {
	c.last++
	return c.last
}

// Store owns every confetti entity in an ECS world.
type Store struct {
	ecs      *ecs.ECS
	ids      IDGenerator
	order    []components.ParticleID
	entities map[components.ParticleID]donburi.Entity

	subscribed bool
}

// New creates a store over e. A nil gen uses a fresh Counter.
func New(e *ecs.ECS, gen IDGenerator) *Store {
	if gen == nil {
		gen = &Counter{}
	}
	s := &Store{
		ecs:      e,
		ids:      gen,
		entities: make(map[components.ParticleID]donburi.Entity),
	}
	return s
}

// Insert spawns a confetti entity holding p under a fresh id and appends the
// id to the draw order. p.ID is overwritten.
func (s *Store) Insert(p components.ParticleData) (components.ParticleID, *donburi.Entry) {
	id := s.ids.NextID()
	p.ID = id

	entry := archetypes.Confetti.Spawn(s.ecs)
	components.Particle.SetValue(entry, p)

	s.order = append(s.order, id)
	s.entities[id] = entry.Entity()
	return id, entry
}

// Remove drops id from both the draw order and the mapping and destroys its
// entity. Removing an unknown id is a no-op and reports false.
func (s *Store) Remove(id components.ParticleID) bool {
	entity, ok := s.entities[id]
	if !ok {
		return false
	}
	delete(s.entities, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	if s.ecs.World.Valid(entity) {
		s.ecs.World.Remove(entity)
	}
	return true
}

// Entry returns the live entity for id.
func (s *Store) Entry(id components.ParticleID) (*donburi.Entry, bool) {
	entity, ok := s.entities[id]
	if !ok || !s.ecs.World.Valid(entity) {
		return nil, false
	}
	return s.ecs.World.Entry(entity), true
}

// Get returns the particle stored under id.
func (s *Store) Get(id components.ParticleID) (*components.ParticleData, bool) {
	entry, ok := s.Entry(id)
	if !ok {
		return nil, false
	}
	return components.Particle.Get(entry), true
}

// Each calls fn for every live particle in insertion order. fn may remove
// particles; ids without a live entity are skipped.
func (s *Store) Each(fn func(id components.ParticleID, p *components.ParticleData)) {
	for _, id := range slices.Clone(s.order) {
		if p, ok := s.Get(id); ok {
			fn(id, p)
		}
	}
}

// Len returns the number of live particles.
func (s *Store) Len() int {
	return len(s.order)
}

// IDs returns a copy of the draw order.
func (s *Store) IDs() []components.ParticleID {
	return slices.Clone(s.order)
}

// Has reports whether id is in the mapping.
func (s *Store) Has(id components.ParticleID) bool {
	_, ok := s.entities[id]
	return ok
}

// Clear removes every particle.
func (s *Store) Clear() {
	for _, id := range slices.Clone(s.order) {
		s.Remove(id)
	}
}

// subscribers holds the subscribed stores of each world. donburi matches
// event handlers by code pointer, so every world gets a single handler that
// fans out to its stores.
var subscribers = map[donburi.World][]*Store{}

// Subscribe makes the store consume ParticleExpired events from its world,
// removing each expired particle it owns.
func (s *Store) Subscribe() {
	if s.subscribed {
		return
	}
	w := s.ecs.World
	if len(subscribers[w]) == 0 {
		components.ParticleExpired.Subscribe(w, dispatchExpired)
	}
	subscribers[w] = append(subscribers[w], s)
	s.subscribed = true
}

// Close stops consuming expiry events. Remaining particles stay in place.
// Other stores subscribed to the same world keep receiving events.
func (s *Store) Close() {
	if !s.subscribed {
		return
	}
	w := s.ecs.World
	subscribers[w] = slices.DeleteFunc(subscribers[w], func(o *Store) bool { return o == s })
	if len(subscribers[w]) == 0 {
		delete(subscribers, w)
		components.ParticleExpired.Unsubscribe(w, dispatchExpired)
	}
	s.subscribed = false
}

func dispatchExpired(w donburi.World, ev components.ParticleExpiredEvent) {
	for _, s := range slices.Clone(subscribers[w]) {
		s.onExpired(ev)
	}
}

// onExpired removes the particle when this store owns the expired entity.
// Ids are only unique per store, so the entity decides ownership.
func (s *Store) onExpired(ev components.ParticleExpiredEvent) {
	if !s.subscribed {
		return
	}
	if entity, ok := s.entities[ev.ID]; ok && entity == ev.Entity {
		s.Remove(ev.ID)
	}
}
