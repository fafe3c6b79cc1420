package reflex

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Setter writes an interpolated Value to its target. The engine calls it
// once per tick while the owning tween runs. A Setter that panics (typically
// because its target was destroyed mid-flight) aborts the owning tween: the
// panic is recovered and logged, no further writes occur, and the tween is
// never retried.
type Setter func(v Value)

type tweenPhase uint8

const (
	tweenCreated   tweenPhase = iota // scheduled, delay not yet elapsed
	tweenRunning                     // interpolating
	tweenCompleted                   // reached full progress; terminal
	tweenAborted                     // setter panicked; terminal
)

// Tween interpolates one Value toward another over a duration, writing each
// intermediate Value through a Setter. Build one with Engine.Tween, refine it
// with the chain methods, then call Start; Engine.Update drives it from the
// following tick. Interpolation runs component-wise on one gween tween per
// component, all sharing the duration and easing curve, so every component
// finishes on the same tick. The final write is the configured end Value
// itself, not the interpolated output, so targets land exactly on the
// authored endpoint.
//
// A Tween is transient: it runs once and is released when it terminates.
// There is no cancel; a tween leaves the runner only by completing or by
// aborting on a setter panic.
type Tween struct {
	eng      *Engine
	from, to Value
	duration time.Duration
	delay    time.Duration
	easing   ease.TweenFunc
	set      Setter
	onStart  func()
	onDone   func()

	phase   tweenPhase
	started bool
	count   int
	tweens  [4]*gween.Tween
}

// Delay defers the start of interpolation. The delay is consumed from tick
// time; onStart fires on the tick the delay is exhausted.
func (t *Tween) Delay(d time.Duration) *Tween {
	t.mustNotBeStarted()
	if d > 0 {
		t.delay = d
	}
	return t
}

// Ease sets the interpolation curve. The curve is captured when the tween
// begins running; the default is linear. Selector-based configuration goes
// through Easing.Func. A nil fn keeps the current curve.
func (t *Tween) Ease(fn ease.TweenFunc) *Tween {
	t.mustNotBeStarted()
	if fn != nil {
		t.easing = fn
	}
	return t
}

// OnStart registers fn to run once, on the tick the delay elapses, before
// the first interpolated write.
func (t *Tween) OnStart(fn func()) *Tween {
	t.mustNotBeStarted()
	t.onStart = fn
	return t
}

// OnComplete registers fn to run once, on the tick the tween reaches full
// progress, after the final write. An aborted tween never completes.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.mustNotBeStarted()
	t.onDone = fn
	return t
}

// Start schedules the tween on its engine. It begins advancing on the next
// Engine.Update. A tween cannot be reconfigured or started again afterward.
func (t *Tween) Start() {
	t.mustNotBeStarted()
	t.started = true
	t.eng.schedule(t)
}

// Done reports whether the tween has terminated, by completion or abort.
func (t *Tween) Done() bool {
	return t.phase == tweenCompleted || t.phase == tweenAborted
}

// Aborted reports whether the tween terminated early on a setter panic.
func (t *Tween) Aborted() bool {
	return t.phase == tweenAborted
}

func (t *Tween) mustNotBeStarted() {
	if t.started {
		panic("reflex: tween already started")
	}
}

// advance moves the tween forward by one tick and reports whether it has
// terminated. Delay is consumed first; tick time left over after the delay
// is exhausted feeds interpolation in the same tick, which is how a
// zero-duration tween completes on its first tick.
func (t *Tween) advance(dt time.Duration) bool {
	if t.phase == tweenCompleted || t.phase == tweenAborted {
		return true
	}
	if t.phase == tweenCreated {
		if t.delay > dt {
			t.delay -= dt
			return false
		}
		dt -= t.delay
		t.delay = 0
		t.begin()
		if dt <= 0 {
			return false
		}
	}
	return t.step(dt)
}

// begin materializes the per-component gween tweens and fires onStart.
func (t *Tween) begin() {
	t.phase = tweenRunning
	dur := float32(t.duration.Seconds())
	for i := 0; i < t.count; i++ {
		t.tweens[i] = gween.New(float32(t.from.c[i]), float32(t.to.c[i]), dur, t.easing)
	}
	if t.onStart != nil {
		t.onStart()
	}
}

func (t *Tween) step(dt time.Duration) bool {
	secs := float32(dt.Seconds())
	out := Value{kind: t.from.kind}
	finished := false
	for i := 0; i < t.count; i++ {
		v, fin := t.tweens[i].Update(secs)
		out.c[i] = float64(v)
		finished = fin
	}
	if finished {
		// Land exactly on the configured endpoint; gween's output has been
		// through float32.
		out = t.to
	}
	if !t.write(out) {
		t.phase = tweenAborted
		return true
	}
	if finished {
		t.phase = tweenCompleted
		if t.onDone != nil {
			t.onDone()
		}
		return true
	}
	return false
}

// write applies one interpolated value, converting a setter panic into an
// abort signal.
func (t *Tween) write(v Value) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			t.eng.log.Debug("tween aborted: setter panicked", "panic", r)
		}
	}()
	t.set(v)
	return true
}
