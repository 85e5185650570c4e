package host

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/gemrunner/engine"
)

var audioContext = audio.NewContext(44100)

// AudioChannel is one named mixer channel. Clips are loaded from the assets
// directory on first use; a missing clip is logged once and then stays silent.
type AudioChannel struct {
	name    string
	players map[string]*audio.Player
	missing map[string]bool

	current      *audio.Player
	targetVolume float64
	fadeLeft     float64
	fadeTotal    float64
}

func NewAudioChannel(name string) *AudioChannel {
	return &AudioChannel{
		name:    name,
		players: make(map[string]*audio.Player),
		missing: make(map[string]bool),
	}
}

func (c *AudioChannel) Play(clip string, opts engine.PlayOptions) {
	player := c.player(clip, opts.Loop)
	if player == nil {
		return
	}
	if c.current != nil && c.current != player {
		c.current.Pause()
	}

	c.current = player
	c.targetVolume = opts.Volume
	c.fadeTotal = opts.FadeIn.Seconds()
	c.fadeLeft = c.fadeTotal

	if err := player.Rewind(); err != nil {
		log.Printf("AudioChannel[%s]: rewind %s: %v", c.name, clip, err)
	}
	if c.fadeTotal > 0 {
		player.SetVolume(0)
	} else {
		player.SetVolume(opts.Volume)
	}
	player.Play()
}

func (c *AudioChannel) Stop() {
	if c.current == nil {
		return
	}
	c.current.Pause()
	c.current = nil
	c.fadeLeft = 0
}

// step advances the fade-in ramp.
func (c *AudioChannel) step(dt float64) {
	if c.current == nil || c.fadeLeft <= 0 {
		return
	}
	c.fadeLeft -= dt
	frac := 1 - c.fadeLeft/c.fadeTotal
	if frac > 1 {
		frac = 1
	}
	c.current.SetVolume(c.targetVolume * frac)
}

func (c *AudioChannel) player(clip string, loop bool) *audio.Player {
	if p, ok := c.players[clip]; ok {
		return p
	}
	if c.missing[clip] {
		return nil
	}

	p, err := loadAudioPlayer(clip, loop)
	if err != nil {
		log.Printf("AudioChannel[%s]: load %s: %v", c.name, clip, err)
		c.missing[clip] = true
		return nil
	}
	c.players[clip] = p
	return p
}

func loadAudioPlayer(clip string, loop bool) (*audio.Player, error) {
	b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clip)))
	if err != nil {
		return nil, err
	}

	reader := bytes.NewReader(b)
	var stream io.ReadSeeker
	var length int64

	switch strings.ToLower(filepath.Ext(clip)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", clip, err)
		}
		stream, length = s, s.Length()
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(audioContext.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode vorbis %q: %w", clip, err)
		}
		stream, length = s, s.Length()
	default:
		return nil, fmt.Errorf("unsupported audio format %q", clip)
	}

	if loop {
		stream = audio.NewInfiniteLoop(stream, length)
	}
	return audioContext.NewPlayer(stream)
}
