package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/starlane/collision"
	"github.com/lixenwraith/starlane/curve"
	"github.com/lixenwraith/starlane/parameter"
)

// Cue is a short synthesized sound tied to a simulation outcome
type Cue int

const (
	CueNone Cue = iota
	CueFire
	CueHit
	CueBlocked
	CueDestroyed
)

// CueForAction maps a path signal to its cue
func CueForAction(a curve.Action) Cue {
	if a == curve.ActionFire {
		return CueFire
	}
	return CueNone
}

// CueForResult maps a collision outcome to its cue
func CueForResult(r collision.Result) Cue {
	switch r {
	case collision.Effective:
		return CueHit
	case collision.Ineffective:
		return CueBlocked
	default:
		return CueNone
	}
}

// Synth builds cue streamers at a fixed rate and volume
type Synth struct {
	rate   beep.SampleRate
	volume float64
}

// NewSynth creates a synth from config
func NewSynth(cfg *Config) *Synth {
	return &Synth{rate: beep.SampleRate(cfg.SampleRate), volume: cfg.MasterVolume}
}

// SampleRate returns the synthesis rate
func (s *Synth) SampleRate() beep.SampleRate { return s.rate }

// Streamer returns a fresh finite streamer for c, nil for CueNone
func (s *Synth) Streamer(c Cue) beep.Streamer {
	var out beep.Streamer
	switch c {
	case CueFire:
		// Falling square chirp
		out = voice{
			Wave: WaveSquare, From: 880, To: 440,
			Duration: parameter.FireCueDuration,
			Attack:   parameter.FireCueAttack,
			Release:  parameter.FireCueRelease,
		}.streamer(s.rate)
	case CueHit:
		out = voice{
			Wave:     WaveNoise,
			Duration: parameter.HitCueDuration,
			Attack:   parameter.HitCueAttack,
			Release:  parameter.HitCueRelease,
		}.streamer(s.rate)
	case CueBlocked:
		tone, err := generators.SineTone(s.rate, 220)
		if err != nil {
			return nil
		}
		out = beep.Take(s.rate.N(parameter.BlockedCueDuration), tone)
	case CueDestroyed:
		// Two descending saw notes
		out = beep.Seq(
			voice{Wave: WaveSaw, From: 392, To: 330, Duration: parameter.DestroyedCueNoteDuration, Release: parameter.DestroyedCueRelease}.streamer(s.rate),
			voice{Wave: WaveSaw, From: 196, To: 98, Duration: parameter.DestroyedCueNoteDuration, Release: parameter.DestroyedCueRelease}.streamer(s.rate),
		)
	default:
		return nil
	}
	return withVolume(out, s.volume)
}

// Timeline renders a path as audio: one tick of silence per move entry and a
// fire cue mixed in wherever a fire signal sits, for auditioning shape timing
func (s *Synth) Timeline(p curve.Path, tick time.Duration) beep.Streamer {
	tickSamples := max(s.rate.N(tick), 1)

	moves := 0
	var cues []beep.Streamer
	for _, e := range p {
		if e.IsMove() {
			moves++
			continue
		}
		c := s.Streamer(CueForAction(e.Action))
		if c == nil {
			continue
		}
		// Delay each cue to the tick it lands on
		cues = append(cues, beep.Seq(generators.Silence(moves*tickSamples), c))
	}

	bed := generators.Silence(moves * tickSamples)
	return beep.Take(moves*tickSamples, beep.Mix(append([]beep.Streamer{bed}, cues...)...))
}
