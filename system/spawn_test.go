package system

import (
	"testing"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/ecs/component"
	"github.com/milk9111/gemrunner/ecs/entity"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/engine/enginetest"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/level"
)

func levelScene() (*enginetest.Tree, *enginetest.Node) {
	tree := enginetest.NewTree()
	body := &enginetest.Node{NodePath: "/root/Level1/Player"}
	sprite := &enginetest.Node{NodePath: "/root/Level1/Player/Sprite"}
	gem := &enginetest.Node{NodePath: "/root/Level1/Gems/Gem1"}
	door := &enginetest.Node{NodePath: "/root/Level1/Doors/ToLevel2"}
	tree.Scene = []engine.SceneNode{
		{Handle: body, Type: "Player"},
		{Handle: sprite, Type: "Sprite"},
		{Handle: gem, Type: "Gem"},
		{Handle: door, Type: "Door", Properties: map[string]string{"target": "level_2"}},
	}
	return tree, gem
}

func TestSpawnBuildsEntitiesOnLevelLoaded(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	tree, _ := levelScene()
	attrs := entity.PlayerAttributes{Speed: 140, JumpVelocity: -500, Gravity: 900}
	sys := NewSpawnSystem(tree, bus, attrs)

	bus.LevelLoaded.Publish(event.LevelLoaded{Level: level.Level1})
	sys.Update(w)

	if n := ecs.Count(w, component.PlayerComponent.Kind()); n != 1 {
		t.Fatalf("expected 1 player, got %d", n)
	}
	if n := ecs.Count(w, component.GemComponent.Kind()); n != 1 {
		t.Fatalf("expected 1 gem, got %d", n)
	}
	if n := ecs.Count(w, component.DoorComponent.Kind()); n != 1 {
		t.Fatalf("expected 1 door, got %d", n)
	}

	player, _ := ecs.First(w, component.PlayerComponent.Kind())
	speed, ok := ecs.Get(w, player, component.SpeedComponent.Kind())
	if !ok || speed.Value != 140 {
		t.Fatalf("expected configured speed 140, got %+v ok=%v", speed, ok)
	}
	if sprite, ok := ecs.Get(w, player, component.SpriteRefComponent.Kind()); !ok || sprite.Sprite == nil {
		t.Fatalf("expected sprite attached to player")
	}

	doorEnt, _ := ecs.First(w, component.DoorComponent.Kind())
	door, _ := ecs.Get(w, doorEnt, component.DoorComponent.Kind())
	if door.Target != level.Level2 {
		t.Fatalf("expected door target level 2, got %v", door.Target)
	}
}

func TestSpawnRebuildsOnNextLevel(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	tree, _ := levelScene()
	sys := NewSpawnSystem(tree, bus, entity.PlayerAttributes{})

	bus.LevelLoaded.Publish(event.LevelLoaded{Level: level.Level1})
	sys.Update(w)
	bus.Flush()

	firstPlayer, _ := ecs.First(w, component.PlayerComponent.Kind())

	// New scene with only a player.
	body := &enginetest.Node{NodePath: "/root/Level2/Player"}
	tree.Scene = []engine.SceneNode{{Handle: body, Type: "Player"}}
	bus.LevelLoaded.Publish(event.LevelLoaded{Level: level.Level2})
	sys.Update(w)

	if ecs.IsAlive(w, firstPlayer) {
		t.Fatalf("old level entities must be despawned")
	}
	if n := ecs.Count(w, component.PlayerComponent.Kind()); n != 1 {
		t.Fatalf("expected 1 player after rebuild, got %d", n)
	}
	if n := ecs.Count(w, component.GemComponent.Kind()); n != 0 {
		t.Fatalf("expected no gems after rebuild, got %d", n)
	}
}

func TestSpawnSweepsFreedNodes(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	tree, gemNode := levelScene()
	sys := NewSpawnSystem(tree, bus, entity.PlayerAttributes{})

	bus.LevelLoaded.Publish(event.LevelLoaded{Level: level.Level1})
	sys.Update(w)
	bus.Flush()

	gem, _ := ecs.First(w, component.GemComponent.Kind())
	gemNode.Freed = true

	sys.Update(w)

	if ecs.IsAlive(w, gem) {
		t.Fatalf("entity with a freed node must be swept")
	}
	if n := ecs.Count(w, component.PlayerComponent.Kind()); n != 1 {
		t.Fatalf("live entities must survive the sweep")
	}
}

func TestSpawnSkipsUnknownDoorTarget(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	tree := enginetest.NewTree()
	door := &enginetest.Node{NodePath: "/root/Level1/Doors/Broken"}
	tree.Scene = []engine.SceneNode{
		{Handle: door, Type: "Door", Properties: map[string]string{"target": "level_99"}},
	}
	sys := NewSpawnSystem(tree, bus, entity.PlayerAttributes{})

	bus.LevelLoaded.Publish(event.LevelLoaded{Level: level.Level1})
	sys.Update(w)

	if n := ecs.Count(w, component.DoorComponent.Kind()); n != 0 {
		t.Fatalf("door with unknown target must be skipped, got %d", n)
	}
}
