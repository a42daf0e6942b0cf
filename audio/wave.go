package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the waveform of a voice
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// voice is one layer of a cue: a waveform whose pitch slides linearly from From to
// To over Duration, shaped by a linear attack and release
type voice struct {
	Wave     WaveType
	From, To float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// streamer renders v as a finite stream; noise is seeded so every shot sounds alike
func (v voice) streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(v.Duration)
	return &voiceStream{
		v:       v,
		rate:    float64(rate),
		total:   total,
		attack:  min(rate.N(v.Attack), total),
		release: min(rate.N(v.Release), total),
		rng:     rand.New(rand.NewSource(1)),
	}
}

type voiceStream struct {
	v       voice
	rate    float64
	total   int
	attack  int
	release int
	pos     int
	phase   float64
	rng     *rand.Rand
}

func (s *voiceStream) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && s.pos < s.total {
		val := s.sample() * s.gain()
		samples[n] = [2]float64{val, val}

		progress := float64(s.pos) / float64(s.total)
		freq := s.v.From + (s.v.To-s.v.From)*progress
		s.phase += freq / s.rate
		s.phase -= math.Floor(s.phase)
		s.pos++
		n++
	}
	return n, n > 0
}

func (s *voiceStream) Err() error { return nil }

func (s *voiceStream) sample() float64 {
	switch s.v.Wave {
	case WaveSquare:
		if s.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (s.phase - 0.5)
	case WaveNoise:
		return s.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * s.phase)
	}
}

// gain ramps up over the attack and down over the final release samples
func (s *voiceStream) gain() float64 {
	g := 1.0
	if s.attack > 0 && s.pos < s.attack {
		g = float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left <= s.release {
		g = min(g, float64(left)/float64(s.release))
	}
	return g
}

// withVolume scales s linearly; math.Log2(0) is -Inf, so zero volume means silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
