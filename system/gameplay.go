package system

import (
	"log"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/level"
)

// GameplayInputSystem detects the top-level reset and return-to-menu inputs
// and publishes events. Detection runs with the other input systems; the
// handlers run after all input detection.
type GameplayInputSystem struct {
	Input engine.Input
	Bus   *event.Bus
}

func NewGameplayInputSystem(input engine.Input, bus *event.Bus) *GameplayInputSystem {
	return &GameplayInputSystem{Input: input, Bus: bus}
}

func (s *GameplayInputSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Input == nil || s.Bus == nil {
		return
	}
	if s.Input.JustPressed("reset_level") {
		log.Printf("gameplay: reset level input")
		s.Bus.ResetLevel.Publish(event.ResetLevel{})
	}
	if s.Input.JustPressed("return_to_main_menu") {
		log.Printf("gameplay: return to menu input")
		s.Bus.ReturnToMenu.Publish(event.ReturnToMenu{})
	}
}

// GameplayStateSystem applies reset and return-to-menu events: the only
// writer of the gem counter zero-path, the HUD cache clear, and the
// CurrentLevel clear.
type GameplayStateSystem struct {
	Bus     *event.Bus
	Gems    *GemCounter
	Hud     *HudHandles
	Current *CurrentLevel
	State   *GameStateStore
}

func NewGameplayStateSystem(bus *event.Bus, gems *GemCounter, hud *HudHandles, current *CurrentLevel, state *GameStateStore) *GameplayStateSystem {
	return &GameplayStateSystem{Bus: bus, Gems: gems, Hud: hud, Current: current, State: state}
}

func (s *GameplayStateSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Bus == nil {
		return
	}
	s.handleResets()
	s.handleReturnToMenu()
}

// handleResets reloads the current scene in place. The level stays the same,
// so the loaded event is re-emitted directly instead of running a full
// load-and-confirm cycle.
func (s *GameplayStateSystem) handleResets() {
	for range s.Bus.ResetLevel.Events() {
		log.Printf("gameplay: processing level reset")
		s.Gems.Reset()
		s.Hud.Clear()
		s.Bus.HudUpdate.Publish(event.HudUpdate{Gems: 0})
		s.Bus.SceneOps.Publish(event.ReloadScene())
		if id, ok := s.Current.Get(); ok {
			s.Bus.LevelLoaded.Publish(event.LevelLoaded{Level: id})
		}
	}
}

func (s *GameplayStateSystem) handleReturnToMenu() {
	for range s.Bus.ReturnToMenu.Events() {
		log.Printf("gameplay: returning to main menu")
		s.Gems.Reset()
		s.Hud.Clear()
		s.Current.Clear()
		if s.State != nil {
			s.State.Set(StateMainMenu)
		}
		s.Bus.SceneOps.Publish(event.ChangeScenePath(level.MainMenuScenePath))
	}
}
