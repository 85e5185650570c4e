package system

import (
	"testing"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine/enginetest"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/level"
)

func TestGameplayInputPublishesEvents(t *testing.T) {
	cases := []struct {
		name        string
		action      string
		wantResets  int
		wantReturns int
	}{
		{"reset", "reset_level", 1, 0},
		{"return_to_menu", "return_to_main_menu", 0, 1},
		{"nothing", "", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			bus := event.NewBus()
			input := enginetest.NewInput()
			if c.action != "" {
				input.Press(c.action)
			}

			NewGameplayInputSystem(input, bus).Update(w)

			if bus.ResetLevel.Len() != c.wantResets {
				t.Fatalf("expected %d reset events, got %d", c.wantResets, bus.ResetLevel.Len())
			}
			if bus.ReturnToMenu.Len() != c.wantReturns {
				t.Fatalf("expected %d return events, got %d", c.wantReturns, bus.ReturnToMenu.Len())
			}
		})
	}
}

func TestGameplayResetLevel(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	gems := &GemCounter{Count: 5}
	hud := &HudHandles{GemsLabel: &enginetest.Node{NodePath: "g"}}
	current := &CurrentLevel{}
	current.Set(level.Level2)
	state := NewGameStateStore(StateInGame)
	sys := NewGameplayStateSystem(bus, gems, hud, current, state)

	bus.ResetLevel.Publish(event.ResetLevel{})
	sys.Update(w)

	if gems.Count != 0 {
		t.Fatalf("reset must zero the gem counter, got %d", gems.Count)
	}
	if hud.GemsLabel != nil {
		t.Fatalf("reset must clear the hud cache")
	}
	huds := bus.HudUpdate.Events()
	if len(huds) != 1 || huds[0].Gems != 0 {
		t.Fatalf("expected a zero hud update, got %v", huds)
	}
	ops := bus.SceneOps.Events()
	if len(ops) != 1 || ops[0].Kind != event.SceneOpReload {
		t.Fatalf("expected a reload op, got %v", ops)
	}
	// Same level, no asset round trip: the loaded event is re-emitted.
	loaded := bus.LevelLoaded.Events()
	if len(loaded) != 1 || loaded[0].Level != level.Level2 {
		t.Fatalf("expected re-emitted loaded event for level 2, got %v", loaded)
	}
	if bus.LoadLevel.Len() != 0 {
		t.Fatalf("reset must not start a new level load")
	}
	if id, ok := current.Get(); !ok || id != level.Level2 {
		t.Fatalf("reset must keep the current level, got %v ok=%v", id, ok)
	}
	if _, ok := state.Apply(); ok {
		t.Fatalf("reset must not change the game state")
	}
}

func TestGameplayReturnToMenu(t *testing.T) {
	w := ecs.NewWorld()
	bus := event.NewBus()
	gems := &GemCounter{Count: 2}
	hud := &HudHandles{GemsLabel: &enginetest.Node{NodePath: "g"}}
	current := &CurrentLevel{}
	current.Set(level.Level1)
	state := NewGameStateStore(StateInGame)
	sys := NewGameplayStateSystem(bus, gems, hud, current, state)

	bus.ReturnToMenu.Publish(event.ReturnToMenu{})
	sys.Update(w)

	if gems.Count != 0 {
		t.Fatalf("return to menu must zero the gem counter")
	}
	if hud.GemsLabel != nil {
		t.Fatalf("return to menu must clear the hud cache")
	}
	if _, ok := current.Get(); ok {
		t.Fatalf("return to menu must clear the current level")
	}
	ops := bus.SceneOps.Events()
	if len(ops) != 1 || ops[0].Kind != event.SceneOpChangeToPath || ops[0].Path != level.MainMenuScenePath {
		t.Fatalf("expected change to menu scene, got %v", ops)
	}
	if entered, ok := state.Apply(); !ok || entered != StateMainMenu {
		t.Fatalf("expected transition to MainMenu, got %v ok=%v", entered, ok)
	}
	if bus.LevelLoaded.Len() != 0 {
		t.Fatalf("no loaded event on menu return")
	}
}
