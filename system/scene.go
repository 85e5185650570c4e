package system

import (
	"log"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/event"
)

// SceneDispatcherSystem is the single authorized mutator of the scene tree.
// Every scene operation in the game is queued as a SceneOp and executed here,
// so two subsystems can never race on the tree within one tick.
type SceneDispatcherSystem struct {
	Tree engine.SceneTree
	Bus  *event.Bus
}

func NewSceneDispatcherSystem(tree engine.SceneTree, bus *event.Bus) *SceneDispatcherSystem {
	return &SceneDispatcherSystem{Tree: tree, Bus: bus}
}

func (s *SceneDispatcherSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Tree == nil || s.Bus == nil {
		return
	}
	for _, op := range s.Bus.SceneOps.Events() {
		switch op.Kind {
		case event.SceneOpReload:
			log.Printf("scene: reloading current scene")
			s.Tree.ReloadCurrent()
		case event.SceneOpChangeToPath:
			log.Printf("scene: changing to %s", op.Path)
			s.Tree.ChangeToPath(op.Path)
		case event.SceneOpChangeToLoaded:
			if err := s.Tree.ChangeToLoaded(op.Asset); err != nil {
				// Missing or wrong-typed resource: warn and abort, no retry.
				log.Printf("scene: change to loaded asset failed: %v", err)
			}
		}
	}
}
