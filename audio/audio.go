// Package audio provides a beep-backed AudioSource implementation for hosts
// that want sound without bringing their own audio layer. An Output owns the
// platform speaker; Sources created from it stream through gopxl/beep and
// satisfy reflex.AudioSource.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/reflex"
)

const sampleRate = beep.SampleRate(48000)

// Output owns the platform speaker. Init is a no-op after the first success,
// and every method is safe without it: an uninitialized Output leaves its
// Sources tracking playback state silently, so behaviors keep working on
// machines with no audio device.
type Output struct {
	mu          sync.Mutex
	initialized bool
}

// NewOutput creates an Output with the speaker not yet initialized.
func NewOutput() *Output {
	return &Output{}
}

// Init opens the platform speaker at 48kHz with a 100ms buffer.
func (o *Output) Init() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	o.initialized = true
	return nil
}

// Close silences the speaker. Sources created from this Output fall back to
// silent state tracking until Init is called again.
func (o *Output) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	speaker.Clear()
	o.initialized = false
}

func (o *Output) ready() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.initialized
}

// NewSource wraps a seekable stream as a named scene object. The stream must
// not be shared between Sources.
func (o *Output) NewSource(name string, stream beep.StreamSeeker) *Source {
	return &Source{
		out:     o,
		name:    name,
		stream:  stream,
		enabled: true,
	}
}

// NewTone is shorthand for NewSource around a generated Tone.
func (o *Output) NewTone(name string, freq float64, d time.Duration, wave WaveType) *Source {
	return o.NewSource(name, NewTone(freq, 0.2, d, wave, sampleRate))
}

// track is one playback pass through a Source's stream. The done flag is set
// by a beep.Callback on the speaker goroutine, so it is atomic rather than
// guarded by the Source mutex.
type track struct {
	ctrl *beep.Ctrl
	done atomic.Bool
}

// Source is a playable sound in the scene graph. It implements
// reflex.AudioSource; Play always rewinds to the start of the stream while
// Resume continues from the pause point.
type Source struct {
	out  *Output
	name string

	mu      sync.Mutex
	enabled bool
	stream  beep.StreamSeeker
	cur     *track
	playing bool
	paused  bool
}

var _ reflex.AudioSource = (*Source)(nil)

// Name identifies the source in logs and error messages.
func (s *Source) Name() string { return s.name }

// Enabled reports whether the source participates in the scene.
func (s *Source) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// SetEnabled shows or hides the source. Playback state is not affected.
func (s *Source) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Playing reports whether the stream is audibly advancing. A paused or
// drained source is not playing.
func (s *Source) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
	return s.playing && !s.paused
}

// Paused reports whether playback is suspended mid-stream.
func (s *Source) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
	return s.paused
}

// Play restarts the stream from the beginning, interrupting any playback or
// pause in progress.
func (s *Source) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.startLocked()
}

// Stop ends playback and clears any pause point.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Pause suspends playback at the current stream position.
func (s *Source) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
	if !s.playing || s.paused {
		return
	}
	s.paused = true
	if s.cur != nil {
		speaker.Lock()
		s.cur.ctrl.Paused = true
		speaker.Unlock()
	}
}

// Resume continues from the pause point, or starts the stream from the
// beginning when nothing is paused. A source already playing is untouched.
func (s *Source) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
	switch {
	case s.paused:
		s.paused = false
		if s.cur != nil {
			speaker.Lock()
			s.cur.ctrl.Paused = false
			speaker.Unlock()
		}
	case !s.playing:
		s.startLocked()
	}
}

// syncLocked folds a drained track back into the idle state.
func (s *Source) syncLocked() {
	if s.cur != nil && s.cur.done.Load() {
		s.cur = nil
		s.playing = false
		s.paused = false
	}
}

func (s *Source) startLocked() {
	s.playing, s.paused = true, false
	if !s.out.ready() {
		// Headless: state is tracked but the stream never advances, so a
		// finite sound plays until Stop.
		return
	}

	tr := &track{}
	tr.ctrl = &beep.Ctrl{Streamer: beep.Seq(s.stream, beep.Callback(func() {
		tr.done.Store(true)
	}))}
	s.cur = tr

	speaker.Lock()
	// A stream that cannot rewind restarts from wherever it stopped.
	_ = s.stream.Seek(0)
	speaker.Unlock()
	speaker.Play(tr.ctrl)
}

func (s *Source) stopLocked() {
	if s.cur != nil {
		speaker.Lock()
		s.cur.ctrl.Streamer = nil
		speaker.Unlock()
		s.cur = nil
	}
	s.playing = false
	s.paused = false
}
