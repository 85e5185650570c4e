package system

import (
	"testing"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine/enginetest"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/level"
)

type levelManagerFixture struct {
	w       *ecs.World
	bus     *event.Bus
	assets  *enginetest.Assets
	tree    *enginetest.Tree
	current *CurrentLevel
	pending *PendingLevel
	sys     *LevelManagerSystem
}

func newLevelManagerFixture() *levelManagerFixture {
	f := &levelManagerFixture{
		w:       ecs.NewWorld(),
		bus:     event.NewBus(),
		assets:  enginetest.NewAssets(),
		tree:    enginetest.NewTree(),
		current: &CurrentLevel{},
		pending: &PendingLevel{},
	}
	f.sys = NewLevelManagerSystem(f.assets, f.tree, f.bus, f.current, f.pending)
	return f
}

// tick runs one manager update followed by the end-of-tick flush.
func (f *levelManagerFixture) tick() {
	f.sys.Update(f.w)
	f.bus.Flush()
}

func TestLevelManagerHappyPath(t *testing.T) {
	f := newLevelManagerFixture()

	// Tick 1: request arrives, asset load starts, level is current
	// immediately.
	f.bus.LoadLevel.Publish(event.LoadLevel{Level: level.Level2})
	f.sys.Update(f.w)
	if len(f.assets.Loads) != 1 || f.assets.Loads[0].AssetPath != "scenes/levels/level_2.yaml" {
		t.Fatalf("expected one load of level 2 scene, got %v", f.assets.Loads)
	}
	if id, ok := f.current.Get(); !ok || id != level.Level2 {
		t.Fatalf("current level should be set optimistically, got %v ok=%v", id, ok)
	}
	if f.bus.SceneOps.Len() != 0 {
		t.Fatalf("no scene op before the asset is ready")
	}
	f.bus.Flush()

	// Tick 2: still loading.
	f.tick()
	if _, ok := f.pending.Get(); ok {
		t.Fatalf("nothing should be pending while the asset loads")
	}

	// Tick 3: asset ready, swap requested.
	f.assets.FinishAll()
	f.sys.Update(f.w)
	ops := f.bus.SceneOps.Events()
	if len(ops) != 1 || ops[0].Kind != event.SceneOpChangeToLoaded {
		t.Fatalf("expected one change-to-loaded op, got %v", ops)
	}
	if id, ok := f.pending.Get(); !ok || id != level.Level2 {
		t.Fatalf("level 2 should be pending after swap request")
	}
	if f.bus.LevelLoaded.Len() != 0 {
		t.Fatalf("loaded must wait for root node confirmation")
	}
	f.bus.Flush()

	// Tick 4: scene mounts, root node appears, loaded fires.
	f.tree.AddNode("Root", &enginetest.Node{NodePath: "/root/Level2"})
	f.sys.Update(f.w)
	loaded := f.bus.LevelLoaded.Events()
	if len(loaded) != 1 || loaded[0].Level != level.Level2 {
		t.Fatalf("expected loaded event for level 2, got %v", loaded)
	}
	if _, ok := f.pending.Get(); ok {
		t.Fatalf("pending should clear once loaded fires")
	}
}

func TestLevelManagerMostRecentRequestWins(t *testing.T) {
	f := newLevelManagerFixture()

	// Level 2 requested and loading.
	f.bus.LoadLevel.Publish(event.LoadLevel{Level: level.Level2})
	f.tick()

	// Level 3 requested before level 2's asset is ready.
	f.bus.LoadLevel.Publish(event.LoadLevel{Level: level.Level3})
	f.tick()
	if id, _ := f.current.Get(); id != level.Level3 {
		t.Fatalf("current should follow the most recent request, got %v", id)
	}

	// Both loads complete. Only level 3 may swap in.
	f.assets.FinishAll()
	f.sys.Update(f.w)
	ops := f.bus.SceneOps.Events()
	if len(ops) != 1 {
		t.Fatalf("expected exactly one scene op, got %d", len(ops))
	}
	if got := ops[0].Asset.Path(); got != "scenes/levels/level_3.yaml" {
		t.Fatalf("superseded level must not swap in, op targets %s", got)
	}
	f.bus.Flush()

	f.tree.AddNode("Root", &enginetest.Node{NodePath: "/root/Level3"})
	f.sys.Update(f.w)
	loaded := f.bus.LevelLoaded.Events()
	if len(loaded) != 1 || loaded[0].Level != level.Level3 {
		t.Fatalf("expected a single loaded event for level 3, got %v", loaded)
	}
}

func TestLevelManagerIgnoresUnrelatedNodes(t *testing.T) {
	f := newLevelManagerFixture()

	f.bus.LoadLevel.Publish(event.LoadLevel{Level: level.Level1})
	f.tick()
	f.assets.FinishAll()
	f.tick()

	// Random node additions must not confirm the swap.
	f.tree.AddNode("Gem", &enginetest.Node{NodePath: "/root/Level1/Gems/Gem1"})
	f.sys.Update(f.w)
	if f.bus.LevelLoaded.Len() != 0 {
		t.Fatalf("only the level root confirms the swap")
	}
	if _, ok := f.pending.Get(); !ok {
		t.Fatalf("pending must survive until the root appears")
	}
	f.bus.Flush()

	f.tree.AddNode("Root", &enginetest.Node{NodePath: "/root/Level1"})
	f.sys.Update(f.w)
	if f.bus.LevelLoaded.Len() != 1 {
		t.Fatalf("root node should confirm the swap")
	}
}

func TestLevelManagerDrainsNodeFeedEveryTick(t *testing.T) {
	f := newLevelManagerFixture()

	// No load in flight: node events still get consumed.
	f.tree.AddNode("Root", &enginetest.Node{NodePath: "/root/MainMenu"})
	f.tick()

	f.bus.LoadLevel.Publish(event.LoadLevel{Level: level.Level1})
	f.tick()
	f.assets.FinishAll()
	f.tick()

	// The stale menu root from before the request must not confirm level 1.
	if f.bus.LevelLoaded.Len() != 0 {
		t.Fatalf("stale node events must not leak into later loads")
	}
}
