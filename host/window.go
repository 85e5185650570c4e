package host

import "github.com/hajimehoshi/ebiten/v2"

type Window struct{}

func (w *Window) IsFullscreen() bool {
	return ebiten.IsFullscreen()
}

func (w *Window) SetFullscreen(enabled bool) {
	ebiten.SetFullscreen(enabled)
}
