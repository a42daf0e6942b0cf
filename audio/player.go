package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starlane/parameter"
)

// Player owns the speaker and mixes cues into it
type Player struct {
	mu          sync.Mutex
	synth       *Synth
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
}

// NewPlayer creates a player; nothing touches the audio device until Init
func NewPlayer(cfg *Config) *Player {
	return &Player{
		synth:   NewSynth(cfg),
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
	}
}

// Init opens the speaker; a disabled player stays silent and returns nil
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}

	rate := p.synth.SampleRate()
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue, dropped when the speaker is not running
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := p.synth.Streamer(c)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Active reports whether the speaker is running
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
