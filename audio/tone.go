package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType selects an oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// fadeDuration is the linear ramp applied at both ends of a tone so that
// starting and stopping do not click.
const fadeDuration = 5 * time.Millisecond

// Tone is a fixed-length oscillator. Unlike a streaming synth voice it is
// seekable, so a Source can rewind it and play it again.
type Tone struct {
	freq   float64
	amp    float64
	wave   WaveType
	rate   beep.SampleRate
	length int
	fade   int
	pos    int
}

// NewTone creates a tone of the given frequency, peak amplitude, and
// duration. Noise tones ignore the frequency.
func NewTone(freq, amp float64, d time.Duration, wave WaveType, rate beep.SampleRate) *Tone {
	length := rate.N(d)
	fade := rate.N(fadeDuration)
	if fade*2 > length {
		fade = length / 2
	}
	return &Tone{
		freq:   freq,
		amp:    amp,
		wave:   wave,
		rate:   rate,
		length: length,
		fade:   fade,
	}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}

		// Phase derives from the position so that Seek stays consistent.
		phase := math.Mod(float64(g.pos)*g.freq/float64(g.rate), 1)

		var val float64
		switch g.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * phase)
		case WaveSquare:
			if phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		val *= g.amp * g.envelope()

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

// envelope ramps amplitude linearly over the first and last fade window.
func (g *Tone) envelope() float64 {
	if g.fade == 0 {
		return 1
	}
	if g.pos < g.fade {
		return float64(g.pos) / float64(g.fade)
	}
	if remaining := g.length - g.pos; remaining < g.fade {
		return float64(remaining) / float64(g.fade)
	}
	return 1
}

func (g *Tone) Err() error { return nil }

// Len returns the total number of samples in the tone.
func (g *Tone) Len() int { return g.length }

// Position returns the current sample offset.
func (g *Tone) Position() int { return g.pos }

// Seek moves the stream to the given sample offset.
func (g *Tone) Seek(p int) error {
	if p < 0 || p > g.length {
		return fmt.Errorf("audio: seek position %d out of range [0, %d]", p, g.length)
	}
	g.pos = p
	return nil
}

var _ beep.StreamSeeker = (*Tone)(nil)
