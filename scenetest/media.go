package scenetest

import "github.com/phanxgames/reflex"

// Animator is a reflex.AnimationPlayer that records every clip played.
type Animator struct {
	*Object
	clips  map[string]bool
	Played []string // clip names in play order
}

// NewAnimator creates an animator knowing the given clips.
func NewAnimator(name string, clips ...string) *Animator {
	a := &Animator{Object: NewObject(name), clips: make(map[string]bool, len(clips))}
	for _, c := range clips {
		a.clips[c] = true
	}
	return a
}

// HasClip reports whether the animator knows the named clip.
func (a *Animator) HasClip(name string) bool {
	a.check()
	return a.clips[name]
}

// PlayClip records the clip in Played.
func (a *Animator) PlayClip(name string) {
	a.check()
	a.Played = append(a.Played, name)
}

// RemoveClip forgets a clip, so tests can break a bound response at runtime.
func (a *Animator) RemoveClip(name string) {
	delete(a.clips, name)
}

// Audio is a reflex.AudioSource state machine with no real output. Playing
// and Paused are mutually exclusive; a stopped source reports neither.
type Audio struct {
	*Object
	playing bool
	paused  bool
	Starts  int // number of Play calls
}

// NewAudio creates a stopped audio source.
func NewAudio(name string) *Audio {
	return &Audio{Object: NewObject(name)}
}

// Playing reports whether the source is actively playing.
func (a *Audio) Playing() bool {
	a.check()
	return a.playing
}

// Paused reports whether the source is paused mid-stream.
func (a *Audio) Paused() bool {
	a.check()
	return a.paused
}

// Play restarts playback from the beginning.
func (a *Audio) Play() {
	a.check()
	a.playing = true
	a.paused = false
	a.Starts++
}

// Stop halts playback and clears the pause point.
func (a *Audio) Stop() {
	a.check()
	a.playing = false
	a.paused = false
}

// Pause suspends active playback. A stopped source stays stopped.
func (a *Audio) Pause() {
	a.check()
	if a.playing {
		a.playing = false
		a.paused = true
	}
}

// Resume continues from the pause point, or starts playback when nothing is
// paused.
func (a *Audio) Resume() {
	a.check()
	a.playing = true
	a.paused = false
}

// Video is a reflex.VideoPlayer driven manually: tests call FireReady and
// FireDone to simulate the provider's signals.
type Video struct {
	*Object
	playing bool
	looping bool
	ready   []func()
	done    []func()
	Plays   int // number of Play calls
}

// NewVideo creates a stopped video player.
func NewVideo(name string) *Video {
	return &Video{Object: NewObject(name)}
}

// Playing reports whether playback has started and not yet finished.
func (v *Video) Playing() bool {
	v.check()
	return v.playing
}

// Play starts playback, once or looping.
func (v *Video) Play(looping bool) {
	v.check()
	v.playing = true
	v.looping = looping
	v.Plays++
}

// Looping reports the mode of the last Play call.
func (v *Video) Looping() bool {
	return v.looping
}

// OnReady registers fn on the ready signal. Nil functions are dropped.
func (v *Video) OnReady(fn func()) {
	v.check()
	if fn != nil {
		v.ready = append(v.ready, fn)
	}
}

// OnDone registers fn on the done signal. Nil functions are dropped.
func (v *Video) OnDone(fn func()) {
	v.check()
	if fn != nil {
		v.done = append(v.done, fn)
	}
}

// FireReady invokes the registered ready callbacks in registration order.
func (v *Video) FireReady() {
	for _, fn := range v.ready {
		fn()
	}
}

// FireDone stops playback and invokes the registered done callbacks in
// registration order.
func (v *Video) FireDone() {
	v.playing = false
	for _, fn := range v.done {
		fn()
	}
}

// Script is a reflex.Callable counting its invocations. Set Panics to make
// every call panic after being counted, to exercise the engine's recovery
// paths.
type Script struct {
	Calls  int
	Panics bool
}

// Call counts the invocation, then panics if Panics is set.
func (s *Script) Call() {
	s.Calls++
	if s.Panics {
		panic("scenetest: script failure")
	}
}

// Emitter is a reflex.EventSource driven manually: Emit raises an event to
// every handler subscribed for it, in subscription order.
type Emitter struct {
	subs map[reflex.EventType][]func()
}

// NewEmitter creates an emitter with no subscriptions.
func NewEmitter() *Emitter {
	return &Emitter{subs: make(map[reflex.EventType][]func())}
}

// Subscribe registers a handler for one event type.
func (e *Emitter) Subscribe(ev reflex.EventType, fn func()) {
	if fn == nil {
		return
	}
	e.subs[ev] = append(e.subs[ev], fn)
}

// Subscribers returns how many handlers are registered for ev.
func (e *Emitter) Subscribers(ev reflex.EventType) int {
	return len(e.subs[ev])
}

// Emit invokes the handlers subscribed for ev.
func (e *Emitter) Emit(ev reflex.EventType) {
	for _, fn := range e.subs[ev] {
		fn()
	}
}
