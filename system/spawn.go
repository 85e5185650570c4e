package system

import (
	"log"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/ecs/component"
	"github.com/milk9111/gemrunner/ecs/entity"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/level"
)

// SpawnSystem keeps ECS entities in lockstep with the mounted scene: it
// sweeps entities whose nodes were freed and rebuilds gameplay entities from
// the scene on every level-loaded event.
type SpawnSystem struct {
	Tree  engine.SceneTree
	Bus   *event.Bus
	Attrs entity.PlayerAttributes
}

func NewSpawnSystem(tree engine.SceneTree, bus *event.Bus, attrs entity.PlayerAttributes) *SpawnSystem {
	return &SpawnSystem{Tree: tree, Bus: bus, Attrs: attrs}
}

// SetAttributes swaps the attributes used for future player spawns. Live
// players are untouched until the next spawn.
func (s *SpawnSystem) SetAttributes(attrs entity.PlayerAttributes) {
	s.Attrs = attrs
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Tree == nil || s.Bus == nil {
		return
	}
	s.sweepFreed(w)
	if s.Bus.LevelLoaded.Len() == 0 {
		return
	}
	s.despawnAll(w)
	s.spawnFromScene(w)
}

// sweepFreed destroys entities whose scene node no longer exists. Entity
// lifecycle is bound to node lifecycle.
func (s *SpawnSystem) sweepFreed(w *ecs.World) {
	var dead []ecs.Entity
	ecs.ForEach(w, component.NodeRefComponent.Kind(), func(e ecs.Entity, ref *component.NodeRef) {
		if ref.Handle == nil || !ref.Handle.Valid() {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		ecs.DestroyEntity(w, e)
	}
}

func (s *SpawnSystem) despawnAll(w *ecs.World) {
	var all []ecs.Entity
	ecs.ForEach(w, component.NodeRefComponent.Kind(), func(e ecs.Entity, _ *component.NodeRef) {
		all = append(all, e)
	})
	for _, e := range all {
		ecs.DestroyEntity(w, e)
	}
}

func (s *SpawnSystem) spawnFromScene(w *ecs.World) {
	var player ecs.Entity
	var playerSprite engine.Sprite

	for _, node := range s.Tree.CurrentSceneNodes() {
		switch node.Type {
		case "Player":
			body, ok := node.Handle.(engine.PhysicsBody)
			if !ok {
				log.Printf("spawn: player node %s has no physics body", node.Handle.Path())
				continue
			}
			e, err := entity.NewPlayer(w, body, s.Attrs)
			if err != nil {
				log.Printf("spawn: player: %v", err)
				continue
			}
			player = e
		case "Sprite":
			if sprite, ok := node.Handle.(engine.Sprite); ok {
				playerSprite = sprite
			}
		case "Gem":
			if _, err := entity.NewGem(w, node.Handle); err != nil {
				log.Printf("spawn: gem: %v", err)
			}
		case "Door":
			target, ok := level.ParseID(node.Properties["target"])
			if !ok {
				log.Printf("spawn: door %s has unknown target %q", node.Handle.Path(), node.Properties["target"])
				continue
			}
			if _, err := entity.NewDoor(w, node.Handle, target); err != nil {
				log.Printf("spawn: door: %v", err)
			}
		case "Enemy":
			if _, err := entity.NewEnemy(w, node.Handle); err != nil {
				log.Printf("spawn: enemy: %v", err)
			}
		}
	}

	if player.Valid() && playerSprite != nil {
		if err := entity.AttachSprite(w, player, playerSprite); err != nil {
			log.Printf("spawn: attach sprite: %v", err)
		}
	}
}
