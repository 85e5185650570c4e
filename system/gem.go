package system

import (
	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/ecs/component"
	"github.com/milk9111/gemrunner/event"
)

// GemCounter is the run-wide gem total. Reset on level reset and on
// returning to the menu. Only GemCountSystem increments it.
type GemCounter struct {
	Count int64
}

// Reset zeroes the counter.
func (c *GemCounter) Reset() {
	if c == nil {
		return
	}
	c.Count = 0
}

// GemCollisionSystem detects gem/player contact, despawns the gem, and
// publishes a collected event. Despawning on first contact is the dedupe:
// later collision records for the same gem in this tick find no gem entity.
type GemCollisionSystem struct {
	Bus *event.Bus
}

func NewGemCollisionSystem(bus *event.Bus) *GemCollisionSystem {
	return &GemCollisionSystem{Bus: bus}
}

func (s *GemCollisionSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Bus == nil {
		return
	}

	type collected struct {
		gem    ecs.Entity
		player uint64
	}
	var hits []collected

	ecs.ForEach3(w, component.GemComponent.Kind(), component.CollisionsComponent.Kind(), component.NodeRefComponent.Kind(), func(e ecs.Entity, _ *component.Gem, col *component.Collisions, ref *component.NodeRef) {
		for _, other := range col.Recent {
			if !ecs.Has(w, ecs.Entity(other), component.PlayerComponent.Kind()) {
				continue
			}
			if ref.Handle != nil && ref.Handle.Valid() {
				ref.Handle.QueueFree()
			}
			hits = append(hits, collected{gem: e, player: other})
			break
		}
	})

	for _, h := range hits {
		s.Bus.GemCollected.Publish(event.GemCollected{Player: h.player, Gem: uint64(h.gem)})
		ecs.DestroyEntity(w, h.gem)
	}
}

// GemCountSystem increments the counter once per collected event and
// publishes the SFX and HUD follow-ups.
type GemCountSystem struct {
	Bus  *event.Bus
	Gems *GemCounter
}

func NewGemCountSystem(bus *event.Bus, gems *GemCounter) *GemCountSystem {
	return &GemCountSystem{Bus: bus, Gems: gems}
}

func (s *GemCountSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Bus == nil || s.Gems == nil {
		return
	}
	for range s.Bus.GemCollected.Events() {
		s.Gems.Count++
		s.Bus.Sfx.Publish(event.SfxGemCollected)
		s.Bus.HudUpdate.Publish(event.HudUpdate{Gems: s.Gems.Count})
	}
}
