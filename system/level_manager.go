package system

import (
	"log"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/level"
)

// CurrentLevel tracks the active level. Set optimistically when a load
// starts; cleared only when returning to the menu.
type CurrentLevel struct {
	id level.ID
}

// Set records the active level.
func (c *CurrentLevel) Set(id level.ID) {
	if c == nil {
		return
	}
	c.id = id
}

// Clear drops the active level.
func (c *CurrentLevel) Clear() {
	if c == nil {
		return
	}
	c.id = level.None
}

// Get returns the active level, if any.
func (c *CurrentLevel) Get() (level.ID, bool) {
	if c == nil || c.id == level.None {
		return level.None, false
	}
	return c.id, true
}

// PendingLevel is the join point between the asynchronous scene swap and the
// synchronous level-loaded announcement: set when the swap is requested,
// cleared the moment the new scene's root node is observed.
type PendingLevel struct {
	id level.ID
}

func (p *PendingLevel) set(id level.ID) {
	if p == nil {
		return
	}
	p.id = id
}

func (p *PendingLevel) clear() {
	if p == nil {
		return
	}
	p.id = level.None
}

// Get returns the pending level, if any.
func (p *PendingLevel) Get() (level.ID, bool) {
	if p == nil || p.id == level.None {
		return level.None, false
	}
	return p.id, true
}

// LevelManagerSystem drives the multi-frame load state machine:
//
//	Idle --LoadLevel--> Loading --asset ready--> SwapRequested --root node added--> Idle
//
// A request arriving mid-load overwrites the in-flight target; the superseded
// load is abandoned, never cancelled, and its completion is ignored.
type LevelManagerSystem struct {
	Assets  engine.AssetServer
	Tree    engine.SceneTree
	Bus     *event.Bus
	Current *CurrentLevel
	Pending *PendingLevel

	loading engine.AssetHandle
}

func NewLevelManagerSystem(assets engine.AssetServer, tree engine.SceneTree, bus *event.Bus, current *CurrentLevel, pending *PendingLevel) *LevelManagerSystem {
	return &LevelManagerSystem{Assets: assets, Tree: tree, Bus: bus, Current: current, Pending: pending}
}

func (s *LevelManagerSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Assets == nil || s.Tree == nil || s.Bus == nil {
		return
	}
	// The node-added feed is consumed exactly once per tick regardless of
	// state; unobserved events must not pile up.
	added := s.Tree.NodesAdded()

	s.handleLoadRequests()
	s.handleSceneChange()
	s.confirmSceneReady(added)
}

// handleLoadRequests starts the asset load and optimistically records the
// level as current. A later request in the same tick simply overwrites.
func (s *LevelManagerSystem) handleLoadRequests() {
	for _, req := range s.Bus.LoadLevel.Events() {
		log.Printf("level: loading asset for %s", req.Level)
		s.loading = s.Assets.Load(req.Level.ScenePath())
		s.Current.Set(req.Level)
	}
}

// handleSceneChange issues the scene swap once the asset is ready. The
// loaded announcement waits for confirmation that the scene actually
// mounted.
func (s *LevelManagerSystem) handleSceneChange() {
	if s.loading == nil {
		return
	}
	id, ok := s.Current.Get()
	if !ok {
		return
	}
	if !s.Assets.IsReady(s.loading) {
		// Not ready yet; poll again next tick.
		return
	}
	log.Printf("level: requesting scene change to %s", id)
	s.Bus.SceneOps.Publish(event.ChangeSceneLoaded(s.loading))
	s.Pending.set(id)
	s.loading = nil
}

// confirmSceneReady emits the level-loaded event once the expected root node
// appears in the scene tree.
func (s *LevelManagerSystem) confirmSceneReady(added []engine.NodeEvent) {
	id, ok := s.Pending.Get()
	if !ok {
		return
	}
	expected := id.RootPath()
	for _, ev := range added {
		if ev.Path == expected {
			s.Bus.LevelLoaded.Publish(event.LevelLoaded{Level: id})
			s.Pending.clear()
			break
		}
	}
}
