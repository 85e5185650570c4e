package system

import (
	"fmt"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/event"
)

// HudHandles caches the HUD label handles. Cleared before any operation that
// may destroy the scene; repopulated lazily on the next level-loaded event.
type HudHandles struct {
	CurrentLevelLabel engine.Label
	GemsLabel         engine.Label
}

// Clear drops both handles.
func (h *HudHandles) Clear() {
	if h == nil {
		return
	}
	h.CurrentLevelLabel = nil
	h.GemsLabel = nil
}

// HudSystem caches label handles on level-loaded and applies gem-count
// updates. Updates arriving before the handles are cached are skipped; the
// next level-loaded event re-syncs the display.
type HudSystem struct {
	Tree    engine.SceneTree
	Bus     *event.Bus
	Handles *HudHandles
	Gems    *GemCounter
}

func NewHudSystem(tree engine.SceneTree, bus *event.Bus, handles *HudHandles, gems *GemCounter) *HudSystem {
	return &HudSystem{Tree: tree, Bus: bus, Handles: handles, Gems: gems}
}

func (s *HudSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Bus == nil || s.Handles == nil {
		return
	}
	s.setupOnLevelLoaded()
	s.applyUpdates()
}

func (s *HudSystem) setupOnLevelLoaded() {
	for _, ev := range s.Bus.LevelLoaded.Events() {
		root := ev.Level.RootPath()
		if node, ok := s.Tree.FindNode(root + "/HUD/CurrentLevel"); ok {
			if lbl, ok := node.(engine.Label); ok {
				s.Handles.CurrentLevelLabel = lbl
			}
		}
		if node, ok := s.Tree.FindNode(root + "/HUD/GemsLabel"); ok {
			if lbl, ok := node.(engine.Label); ok {
				s.Handles.GemsLabel = lbl
			}
		}

		if s.Handles.CurrentLevelLabel != nil && s.Handles.CurrentLevelLabel.Valid() {
			s.Handles.CurrentLevelLabel.SetText(ev.Level.DisplayName())
		}

		gems := int64(0)
		if s.Gems != nil {
			gems = s.Gems.Count
		}
		s.Bus.HudUpdate.Publish(event.HudUpdate{Gems: gems})
	}
}

func (s *HudSystem) applyUpdates() {
	for _, ev := range s.Bus.HudUpdate.Events() {
		lbl := s.Handles.GemsLabel
		if lbl == nil || !lbl.Valid() {
			// Handle not cached yet; a later level-loaded event refreshes it.
			continue
		}
		lbl.SetText(fmt.Sprintf("Gems: %d", ev.Gems))
	}
}
