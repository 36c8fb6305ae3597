package store

import (
	"testing"

	"github.com/automoto/confetti-cannon/components"
	"github.com/google/go-cmp/cmp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestStore() *Store {
	return New(ecs.NewECS(donburi.NewWorld()), nil)
}

// checkConsistent verifies the draw order and the mapping hold the same ids.
func checkConsistent(t *testing.T, s *Store) {
	t.Helper()
	if len(s.order) != len(s.entities) {
		t.Fatalf("order has %d ids, mapping has %d", len(s.order), len(s.entities))
	}
	for _, id := range s.order {
		if _, ok := s.entities[id]; !ok {
			t.Errorf("id %d in order but not in mapping", id)
		}
	}
}

func TestInsertAssignsFreshIDsInOrder(t *testing.T) {
	s := newTestStore()
	var got []components.ParticleID
	for i := 0; i < 5; i++ {
		id, entry := s.Insert(components.ParticleData{X: float64(i)})
		got = append(got, id)
		if p := components.Particle.Get(entry); p.ID != id {
			t.Errorf("particle ID = %d, want %d", p.ID, id)
		}
	}

	want := []components.ParticleID{1, 2, 3, 4, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, s.IDs()); diff != "" {
		t.Errorf("draw order mismatch (-want +got):\n%s", diff)
	}
	checkConsistent(t, s)
}

func TestRemove(t *testing.T) {
	s := newTestStore()
	a, _ := s.Insert(components.ParticleData{})
	b, _ := s.Insert(components.ParticleData{})
	c, _ := s.Insert(components.ParticleData{})

	if !s.Remove(b) {
		t.Fatalf("Remove(%d) = false, want true", b)
	}
	if s.Has(b) {
		t.Errorf("removed id %d still present", b)
	}
	if _, ok := s.Get(b); ok {
		t.Errorf("Get(%d) found a removed particle", b)
	}
	if diff := cmp.Diff([]components.ParticleID{a, c}, s.IDs()); diff != "" {
		t.Errorf("draw order mismatch (-want +got):\n%s", diff)
	}
	checkConsistent(t, s)

	// A second removal races with nothing and must be harmless.
	if s.Remove(b) {
		t.Errorf("second Remove(%d) = true, want false", b)
	}
	if s.Remove(999) {
		t.Error("Remove of unknown id = true, want false")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestEachIteratesInInsertionOrder(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 4; i++ {
		s.Insert(components.ParticleData{X: float64(i * 10)})
	}

	var xs []float64
	s.Each(func(_ components.ParticleID, p *components.ParticleData) {
		xs = append(xs, p.X)
	})
	if diff := cmp.Diff([]float64{0, 10, 20, 30}, xs); diff != "" {
		t.Errorf("iteration mismatch (-want +got):\n%s", diff)
	}
}

func TestEachToleratesRemovalDuringIteration(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 6; i++ {
		s.Insert(components.ParticleData{})
	}

	visited := 0
	s.Each(func(id components.ParticleID, _ *components.ParticleData) {
		visited++
		// drop the next particle as well as this one
		s.Remove(id)
		s.Remove(id + 1)
	})
	if visited != 3 {
		t.Errorf("visited %d particles, want 3", visited)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	checkConsistent(t, s)
}

func TestEachMutationsPersist(t *testing.T) {
	s := newTestStore()
	id, _ := s.Insert(components.ParticleData{Tilt: 1})
	s.Each(func(_ components.ParticleID, p *components.ParticleData) {
		p.Tilt = 42
	})
	p, ok := s.Get(id)
	if !ok {
		t.Fatal("particle missing")
	}
	if p.Tilt != 42 {
		t.Errorf("Tilt = %v, want 42", p.Tilt)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 10; i++ {
		s.Insert(components.ParticleData{})
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", s.Len())
	}
	count := 0
	components.Particle.Each(s.ecs.World, func(*donburi.Entry) { count++ })
	if count != 0 {
		t.Errorf("%d particle entities left in the world", count)
	}
	checkConsistent(t, s)
}

type fixedIDs struct {
	next components.ParticleID
}

func (f *fixedIDs) NextID() components.ParticleID {
	f.next += 100
	return f.next
}

func TestInjectedIDGenerator(t *testing.T) {
	s := New(ecs.NewECS(donburi.NewWorld()), &fixedIDs{})
	a, _ := s.Insert(components.ParticleData{})
	b, _ := s.Insert(components.ParticleData{})
	if a != 100 || b != 200 {
		t.Errorf("ids = %d, %d, want 100, 200", a, b)
	}
}

func TestExpiredEventsRemoveParticles(t *testing.T) {
	s := newTestStore()
	s.Subscribe()
	a, ea := s.Insert(components.ParticleData{})
	b, eb := s.Insert(components.ParticleData{})

	expire(s.ecs.World, a, ea)

	if s.Has(a) {
		t.Errorf("expired particle %d still present", a)
	}
	if !s.Has(b) {
		t.Errorf("particle %d removed without expiring", b)
	}

	s.Close()
	expire(s.ecs.World, b, eb)
	if !s.Has(b) {
		t.Errorf("particle %d removed after Close", b)
	}
}

func expire(w donburi.World, id components.ParticleID, entry *donburi.Entry) {
	components.ParticleExpired.Publish(w, components.ParticleExpiredEvent{ID: id, Entity: entry.Entity()})
	components.ParticleExpired.ProcessEvents(w)
}

func TestStoresSharingAWorld(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	a, b := New(e, nil), New(e, nil)
	a.Subscribe()
	b.Subscribe()
	t.Cleanup(a.Close)

	// Both counters start at 1, so the ids collide.
	aid, aentry := a.Insert(components.ParticleData{})
	bid, bentry := b.Insert(components.ParticleData{})
	if aid != bid {
		t.Fatalf("ids %d and %d, want a collision", aid, bid)
	}

	expire(e.World, bid, bentry)
	if !a.Has(aid) {
		t.Error("expiring b's particle removed a's particle with the same id")
	}
	if b.Has(bid) {
		t.Error("b's expired particle still present")
	}

	b.Close()
	aid2, aentry2 := a.Insert(components.ParticleData{})
	bid2, bentry2 := b.Insert(components.ParticleData{})

	expire(e.World, aid, aentry)
	expire(e.World, aid2, aentry2)
	if a.Len() != 0 {
		t.Errorf("a stopped receiving events after b closed: %d left", a.Len())
	}

	expire(e.World, bid2, bentry2)
	if !b.Has(bid2) {
		t.Error("closed store b still removed an expired particle")
	}
}
