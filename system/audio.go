package system

import (
	"log"
	"time"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/event"
	"github.com/milk9111/gemrunner/level"
)

// Music and SFX run on independent channels with no shared state, so the two
// systems are safe to schedule in either order.

const (
	clipActionTheme = "audio/actiontheme-v3.ogg"
	clipWaltzTheme  = "audio/annoyingwaltz.wav"
	clipJump        = "audio/jump.wav"
	clipGem         = "audio/gem.wav"
)

// MusicSystem switches background music on level-loaded events.
type MusicSystem struct {
	Music engine.AudioChannel
	Bus   *event.Bus
}

func NewMusicSystem(music engine.AudioChannel, bus *event.Bus) *MusicSystem {
	return &MusicSystem{Music: music, Bus: bus}
}

func (s *MusicSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Music == nil || s.Bus == nil {
		return
	}
	for _, ev := range s.Bus.LevelLoaded.Events() {
		s.Music.Stop()

		clip := clipActionTheme
		if ev.Level == level.Level2 {
			clip = clipWaltzTheme
		}
		s.Music.Play(clip, engine.PlayOptions{
			Volume: 0.6,
			Loop:   true,
			FadeIn: 2 * time.Second,
		})
		log.Printf("music: started background music for %s", ev.Level)
	}
}

// Stop halts background music. The game loop calls this when leaving the
// InGame state.
func (s *MusicSystem) Stop() {
	if s == nil || s.Music == nil {
		return
	}
	s.Music.Stop()
	log.Printf("music: stopped background music")
}

// SfxSystem plays one-shot sound effects from the tick's sfx events.
type SfxSystem struct {
	Sfx engine.AudioChannel
	Bus *event.Bus
}

func NewSfxSystem(sfx engine.AudioChannel, bus *event.Bus) *SfxSystem {
	return &SfxSystem{Sfx: sfx, Bus: bus}
}

func (s *SfxSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Sfx == nil || s.Bus == nil {
		return
	}
	for _, ev := range s.Bus.Sfx.Events() {
		switch ev {
		case event.SfxPlayerJump:
			s.Sfx.Play(clipJump, engine.PlayOptions{Volume: 0.8})
		case event.SfxGemCollected:
			s.Sfx.Play(clipGem, engine.PlayOptions{Volume: 0.9})
		}
	}
}
