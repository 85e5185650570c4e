package system

import (
	"log"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/level"
)

const (
	startButtonPath      = "/root/MainMenu/Options/StartButton"
	fullscreenButtonPath = "/root/MainMenu/Options/FullscreenButton"
	quitButtonPath       = "/root/MainMenu/Options/QuitButton"
)

// MenuAssets is the menu's multi-frame initialization state:
// empty -> nodes found -> signals connected. Reset every time the MainMenu
// state is re-entered because the old nodes are gone.
type MenuAssets struct {
	StartButton      engine.NodeHandle
	FullscreenButton engine.NodeHandle
	QuitButton       engine.NodeHandle
	Initialized      bool
	SignalsConnected bool
}

// Reset returns the assets to the empty state.
func (m *MenuAssets) Reset() {
	if m == nil {
		return
	}
	m.StartButton = nil
	m.FullscreenButton = nil
	m.QuitButton = nil
	m.Initialized = false
	m.SignalsConnected = false
}

// MainMenuSystem finds the menu buttons (retrying until the scene has them),
// connects press signals once, and dispatches presses.
type MainMenuSystem struct {
	Tree    engine.SceneTree
	Signals engine.SignalFeed
	Window  engine.Window
	Bus     *event.Bus
	Assets  *MenuAssets
	State   *GameStateStore
}

func NewMainMenuSystem(tree engine.SceneTree, signals engine.SignalFeed, window engine.Window, bus *event.Bus, assets *MenuAssets, state *GameStateStore) *MainMenuSystem {
	return &MainMenuSystem{Tree: tree, Signals: signals, Window: window, Bus: bus, Assets: assets, State: state}
}

func (s *MainMenuSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Tree == nil || s.Signals == nil || s.Assets == nil {
		return
	}
	if !s.Assets.Initialized {
		s.findButtons()
		return
	}
	if !s.Assets.SignalsConnected {
		s.connectButtons()
	}
	s.handlePresses()
}

// findButtons looks the three buttons up by path. Lookup failure means the
// scene isn't mounted yet; retry next tick, never treat as fatal.
func (s *MainMenuSystem) findButtons() {
	start, okStart := s.Tree.FindNode(startButtonPath)
	fullscreen, okFullscreen := s.Tree.FindNode(fullscreenButtonPath)
	quit, okQuit := s.Tree.FindNode(quitButtonPath)
	if !okStart || !okFullscreen || !okQuit {
		return
	}
	log.Printf("menu: found menu nodes")
	s.Assets.StartButton = start
	s.Assets.FullscreenButton = fullscreen
	s.Assets.QuitButton = quit
	s.Assets.Initialized = true
}

func (s *MainMenuSystem) connectButtons() {
	s.Signals.Connect(s.Assets.StartButton, "pressed")
	s.Signals.Connect(s.Assets.FullscreenButton, "pressed")
	s.Signals.Connect(s.Assets.QuitButton, "pressed")
	s.Assets.SignalsConnected = true
	log.Printf("menu: connected button signals")
}

func (s *MainMenuSystem) handlePresses() {
	for _, sig := range s.Signals.Signals() {
		// Stale signals for freed nodes are dropped entirely.
		if sig.Target == nil || !sig.Target.Valid() {
			continue
		}
		if sig.Name != "pressed" {
			continue
		}
		switch sig.Target.Path() {
		case s.buttonPath(s.Assets.StartButton):
			log.Printf("menu: start pressed")
			if s.State != nil {
				s.State.Set(StateInGame)
			}
			s.Bus.LoadLevel.Publish(event.LoadLevel{Level: level.Level1})
		case s.buttonPath(s.Assets.FullscreenButton):
			log.Printf("menu: fullscreen pressed")
			if s.Window != nil {
				s.Window.SetFullscreen(!s.Window.IsFullscreen())
			}
		case s.buttonPath(s.Assets.QuitButton):
			log.Printf("menu: quit pressed")
			s.Tree.Quit()
		}
	}
}

func (s *MainMenuSystem) buttonPath(h engine.NodeHandle) string {
	if h == nil {
		return ""
	}
	return h.Path()
}
