package reflex

import (
	"io"
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"
)

// Engine owns the tween runner and the services shared by its Behaviors:
// the logger and the optional firing store. The host drives it from its
// frame loop, passing the tick's elapsed time:
//
//	eng := reflex.NewEngine()
//	...
//	eng.Update(time.Second / time.Duration(tps))
//
// The engine is single-threaded and cooperative: it never blocks, never
// spawns goroutines, and must be updated and configured from one goroutine.
// Work scheduled during a tick, whether from a dispatch or from a lifecycle
// callback, runs from the following tick.
type Engine struct {
	log     *slog.Logger
	store   FiringStore
	active  []*Tween
	pending []*Tween
}

// NewEngine creates an engine with a discarding logger and no firing store.
func NewEngine() *Engine {
	return &Engine{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// SetLogger routes engine diagnostics to l. Passing nil restores the default
// discarding logger.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.log = l
}

// SetFiringStore enables optional ECS integration. When set, every firing
// processed by the engine's Behaviors is forwarded to the store.
func (e *Engine) SetFiringStore(s FiringStore) {
	e.store = s
}

// Update advances every scheduled tween by dt and releases the ones that
// terminate. Tweens started before this call, including during the previous
// tick, advance; tweens started during this call join on the next tick.
func (e *Engine) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if len(e.pending) > 0 {
		e.active = append(e.active, e.pending...)
		e.pending = e.pending[:0]
	}
	alive := e.active[:0]
	for _, t := range e.active {
		if !t.advance(dt) {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(e.active); i++ {
		e.active[i] = nil
	}
	e.active = alive
}

// Tween builds a tween from one Value to another with a linear curve and no
// delay. Call Start on the result to schedule it. The endpoint kinds must
// match and the setter must not be nil; duration below zero is treated as
// zero.
func (e *Engine) Tween(from, to Value, duration time.Duration, set Setter) *Tween {
	if from.kind != to.kind {
		panic("reflex: tween endpoints have different kinds")
	}
	if set == nil {
		panic("reflex: tween setter is nil")
	}
	if duration < 0 {
		duration = 0
	}
	return &Tween{
		eng:      e,
		from:     from,
		to:       to,
		duration: duration,
		easing:   ease.Linear,
		set:      set,
		count:    from.kind.componentCount(),
	}
}

// After schedules fn to run once d has elapsed on the tick clock. A zero
// delay runs fn on the next Update. The call rides the tween runner, so the
// ordering guarantees for tweens apply.
func (e *Engine) After(d time.Duration, fn func()) {
	if fn == nil {
		panic("reflex: After requires a function")
	}
	e.Tween(ScalarValue(0), ScalarValue(0), 0, func(Value) {}).
		Delay(d).
		OnStart(fn).
		Start()
}

// ActiveTweens returns the number of scheduled tweens, counting ones that
// have not yet joined the runner. Useful for quiescence checks.
func (e *Engine) ActiveTweens() int {
	return len(e.active) + len(e.pending)
}

// NewBehavior creates an empty behavior attached to this engine. The name
// appears in logs and firing records.
func (e *Engine) NewBehavior(name string) *Behavior {
	return &Behavior{
		eng:      e,
		name:     name,
		counter:  newFiringCounter(),
		bindings: make(map[EventType][]*binding, eventTypeCount),
	}
}

func (e *Engine) schedule(t *Tween) {
	e.pending = append(e.pending, t)
}
