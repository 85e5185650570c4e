// Package host implements the engine capabilities on Ebitengine: scene
// mounting, Chipmunk physics, ebitenui menus, audio channels, and the input
// map. The gameplay layer only ever sees the engine interfaces.
package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gemrunner/engine"
)

const (
	baseWidth  = 640
	baseHeight = 480
)

type Host struct {
	input   *Input
	assets  *AssetServer
	tree    *SceneTree
	signals *SignalFeed
	music   *AudioChannel
	sfx     *AudioChannel
	window  *Window
}

func New() *Host {
	assets := NewAssetServer()
	signals := NewSignalFeed()
	return &Host{
		input:   NewInput(),
		assets:  assets,
		tree:    NewSceneTree(assets, signals),
		signals: signals,
		music:   NewAudioChannel("music"),
		sfx:     NewAudioChannel("sfx"),
		window:  &Window{},
	}
}

// Engine exposes the host through the capability interfaces.
func (h *Host) Engine() engine.Host {
	return engine.Host{
		Input:   h.input,
		Assets:  h.assets,
		Tree:    h.tree,
		Signals: h.signals,
		Music:   h.music,
		Sfx:     h.sfx,
		Window:  h.window,
	}
}

// BeginTick runs host-side work that must precede the gameplay systems:
// UI event dispatch and audio fades.
func (h *Host) BeginTick(dt float64) {
	h.tree.update()
	h.music.step(dt)
	h.sfx.step(dt)
}

// EndTick applies deferred node frees queued during the tick.
func (h *Host) EndTick() {
	h.tree.processFrees()
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.tree.draw(screen)
}

func (h *Host) QuitRequested() bool {
	return h.tree.quit
}

func (h *Host) Size() (int, int) {
	return baseWidth, baseHeight
}
