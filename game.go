package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/ecs/entity"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/host"
	"github.com/milk9111/gemrunner/level"
	"github.com/milk9111/gemrunner/system"
)

const tickRate = 60.0

type updater interface {
	Update(w *ecs.World)
}

type Game struct {
	host  *host.Host
	world *ecs.World
	bus   *event.Bus
	clock *system.Clock
	state *system.GameStateStore

	menuAssets *system.MenuAssets
	music      *system.MusicSystem
	spawn      *system.SpawnSystem

	menuSystems   []updater
	inGameSystems []updater
}

func NewGame(attrs entity.PlayerAttributes) *Game {
	h := host.New()
	eng := h.Engine()

	bus := event.NewBus()
	world := ecs.NewWorld()
	clock := &system.Clock{}
	state := system.NewGameStateStore(system.StateLoading)

	gems := &system.GemCounter{}
	current := &system.CurrentLevel{}
	pending := &system.PendingLevel{}
	hud := &system.HudHandles{}
	menuAssets := &system.MenuAssets{}

	levelManager := system.NewLevelManagerSystem(eng.Assets, eng.Tree, bus, current, pending)
	dispatcher := system.NewSceneDispatcherSystem(eng.Tree, bus)
	music := system.NewMusicSystem(eng.Music, bus)
	spawn := system.NewSpawnSystem(eng.Tree, bus, attrs)

	g := &Game{
		host:       h,
		world:      world,
		bus:        bus,
		clock:      clock,
		state:      state,
		menuAssets: menuAssets,
		music:      music,
		spawn:      spawn,
	}

	g.menuSystems = []updater{
		system.NewMainMenuSystem(eng.Tree, eng.Signals, eng.Window, bus, menuAssets, state),
		levelManager,
		dispatcher,
		spawn,
	}

	g.inGameSystems = []updater{
		system.NewPlayerInputSystem(eng.Input, bus),
		system.NewGameplayInputSystem(eng.Input, bus),
		system.NewCollisionSyncSystem(),
		system.NewGemCollisionSystem(bus),
		system.NewDoorSystem(bus),
		system.NewPlayerMovementSystem(bus, clock),
		system.NewPlayerAnimationSystem(bus),
		system.NewGemCountSystem(bus, gems),
		system.NewGameplayStateSystem(bus, gems, hud, current, state),
		levelManager,
		dispatcher,
		spawn,
		system.NewHudSystem(eng.Tree, bus, hud, gems),
		music,
		system.NewSfxSystem(eng.Sfx, bus),
	}

	// Boot straight into the menu.
	bus.SceneOps.Publish(event.ChangeScenePath(level.MainMenuScenePath))
	state.Set(system.StateMainMenu)

	return g
}

func (g *Game) Update() error {
	dt := 1.0 / tickRate
	g.clock.Dt = dt

	g.host.BeginTick(dt)

	var systems []updater
	switch g.state.Current() {
	case system.StateInGame:
		systems = g.inGameSystems
	default:
		systems = g.menuSystems
	}
	for _, s := range systems {
		s.Update(g.world)
	}

	g.bus.Flush()
	if entered, ok := g.state.Apply(); ok {
		g.enterState(entered)
	}
	g.host.EndTick()

	if g.host.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) enterState(entered system.GameState) {
	log.Printf("Game: entering state %s", entered)
	if entered == system.StateMainMenu {
		g.menuAssets.Reset()
		g.music.Stop()
	}
}

// SetPlayerAttributes applies hot-reloaded prefab values to future spawns.
func (g *Game) SetPlayerAttributes(attrs entity.PlayerAttributes) {
	g.spawn.SetAttributes(attrs)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.host.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.host.Size()
}
