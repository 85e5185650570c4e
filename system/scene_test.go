package system

import (
	"testing"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine/enginetest"
	"github.com/milk9111/gemrunner/event"
)

func TestSceneDispatcherExecutesOps(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	tree := enginetest.NewTree()
	sys := NewSceneDispatcherSystem(tree, bus)

	bus.SceneOps.Publish(event.ReloadScene())
	bus.SceneOps.Publish(event.ChangeScenePath("scenes/main_menu.yaml"))
	handle := &enginetest.AssetHandle{AssetPath: "scenes/levels/level_1.yaml", IsScene: true}
	bus.SceneOps.Publish(event.ChangeSceneLoaded(handle))

	sys.Update(w)

	if tree.Reloads != 1 {
		t.Fatalf("expected 1 reload, got %d", tree.Reloads)
	}
	if len(tree.PathChanges) != 1 || tree.PathChanges[0] != "scenes/main_menu.yaml" {
		t.Fatalf("unexpected path changes: %v", tree.PathChanges)
	}
	if len(tree.LoadedChanges) != 1 || tree.LoadedChanges[0] != handle {
		t.Fatalf("unexpected loaded changes: %v", tree.LoadedChanges)
	}
}

func TestSceneDispatcherAbortsFailedSwap(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	tree := enginetest.NewTree()
	sys := NewSceneDispatcherSystem(tree, bus)

	// Not a scene resource: the swap fails, is not retried, and later ops
	// still run.
	bad := &enginetest.AssetHandle{AssetPath: "audio/jump.wav", IsScene: false}
	bus.SceneOps.Publish(event.ChangeSceneLoaded(bad))
	bus.SceneOps.Publish(event.ReloadScene())

	sys.Update(w)

	if len(tree.LoadedChanges) != 0 {
		t.Fatalf("failed swap must not mount, got %v", tree.LoadedChanges)
	}
	if tree.Reloads != 1 {
		t.Fatalf("later ops must still execute, reloads=%d", tree.Reloads)
	}

	// Next tick: nothing left to do.
	bus.Flush()
	sys.Update(w)
	if len(tree.LoadedChanges) != 0 || tree.Reloads != 1 {
		t.Fatalf("failed swap must not be retried")
	}
}
