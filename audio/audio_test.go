package audio

import (
	"testing"
	"time"
)

// Sources must keep honest playback state with no speaker available, so
// every test here runs against an uninitialized Output.

func TestSourceStateMachine(t *testing.T) {
	o := NewOutput()
	s := o.NewTone("chime", 880, 100*time.Millisecond, WaveSine)

	if s.Playing() || s.Paused() {
		t.Fatal("new source reports playback before Play")
	}

	s.Play()
	if !s.Playing() || s.Paused() {
		t.Errorf("after Play: Playing = %v, Paused = %v, want true, false", s.Playing(), s.Paused())
	}

	s.Pause()
	if s.Playing() || !s.Paused() {
		t.Errorf("after Pause: Playing = %v, Paused = %v, want false, true", s.Playing(), s.Paused())
	}

	s.Resume()
	if !s.Playing() || s.Paused() {
		t.Errorf("after Resume: Playing = %v, Paused = %v, want true, false", s.Playing(), s.Paused())
	}

	s.Stop()
	if s.Playing() || s.Paused() {
		t.Errorf("after Stop: Playing = %v, Paused = %v, want false, false", s.Playing(), s.Paused())
	}
}

func TestSourceResumeStartsWhenStopped(t *testing.T) {
	o := NewOutput()
	s := o.NewTone("chime", 880, 100*time.Millisecond, WaveSine)

	s.Resume()
	if !s.Playing() {
		t.Error("Resume on a stopped source did not start playback")
	}
}

func TestSourcePlayWhilePausedRestarts(t *testing.T) {
	o := NewOutput()
	s := o.NewTone("chime", 880, 100*time.Millisecond, WaveSine)

	s.Play()
	s.Pause()
	s.Play()
	if !s.Playing() || s.Paused() {
		t.Errorf("Play while paused: Playing = %v, Paused = %v, want true, false", s.Playing(), s.Paused())
	}
}

func TestSourcePauseWhenIdleIsNoop(t *testing.T) {
	o := NewOutput()
	s := o.NewTone("chime", 880, 100*time.Millisecond, WaveSine)

	s.Pause()
	if s.Playing() || s.Paused() {
		t.Error("Pause on an idle source changed playback state")
	}
}

func TestSourceDrainedStreamStopsReporting(t *testing.T) {
	o := NewOutput()
	s := o.NewTone("chime", 880, 100*time.Millisecond, WaveSine)

	tr := &track{}
	tr.done.Store(true)
	s.cur = tr
	s.playing = true

	if s.Playing() {
		t.Error("Playing = true after the track drained")
	}
	if s.Paused() {
		t.Error("Paused = true after the track drained")
	}
}

func TestSourceObjectSurface(t *testing.T) {
	o := NewOutput()
	s := o.NewTone("chime", 880, 100*time.Millisecond, WaveSine)

	if s.Name() != "chime" {
		t.Errorf("Name = %q, want %q", s.Name(), "chime")
	}
	if !s.Enabled() {
		t.Error("new source is not enabled")
	}
	s.SetEnabled(false)
	if s.Enabled() {
		t.Error("SetEnabled(false) did not stick")
	}
}

// TestOutputSpeakerLifecycle exercises the real speaker when one exists.
// Initialization is expected to fail on machines without an audio device.
func TestOutputSpeakerLifecycle(t *testing.T) {
	o := NewOutput()
	if err := o.Init(); err != nil {
		t.Logf("speaker init failed (no audio device): %v", err)
		return
	}
	defer o.Close()

	if err := o.Init(); err != nil {
		t.Errorf("second Init returned %v, want nil", err)
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("playback panicked: %v", r)
		}
	}()
	s := o.NewTone("chime", 880, 20*time.Millisecond, WaveSine)
	s.Play()
	s.Pause()
	s.Resume()
	s.Stop()
}

func TestOutputCloseWithoutInit(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Close panicked without Init: %v", r)
		}
	}()
	NewOutput().Close()
}
