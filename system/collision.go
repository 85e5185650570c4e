package system

import (
	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/ecs/component"
	"github.com/milk9111/gemrunner/engine"
)

// CollisionSyncSystem mirrors the host's per-node overlap state into the
// Collisions component each tick. It is the only writer of Collisions and
// runs before any collision consumer.
type CollisionSyncSystem struct{}

func NewCollisionSyncSystem() *CollisionSyncSystem {
	return &CollisionSyncSystem{}
}

func (s *CollisionSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, playerOK := ecs.First(w, component.PlayerComponent.Kind())
	var body engine.PhysicsBody
	if playerOK {
		if ref, ok := ecs.Get(w, player, component.BodyRefComponent.Kind()); ok && ref.Body != nil && ref.Body.Valid() {
			body = ref.Body
		}
	}

	ecs.ForEach2(w, component.CollisionsComponent.Kind(), component.NodeRefComponent.Kind(), func(e ecs.Entity, col *component.Collisions, ref *component.NodeRef) {
		col.Recent = col.Recent[:0]
		if body == nil || ref.Handle == nil || !ref.Handle.Valid() {
			return
		}
		area, ok := ref.Handle.(engine.Area)
		if !ok {
			return
		}
		if area.Overlaps(body) {
			col.Recent = append(col.Recent, uint64(player))
		}
	})
}
