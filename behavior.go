package reflex

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Behavior binds interaction events to configured responses for one
// interactable. Create one per interactable with Engine.NewBehavior, attach
// responses with On, then either Bind it to the host's event source or call
// Trigger directly when an event arrives.
//
// Each event type owns a firing counter on the behavior. Responses of one
// firing all observe the same counter value; the counter advances exactly
// once, after the last response of the firing has been processed.
type Behavior struct {
	eng      *Engine
	name     string
	counter  firingCounter
	bindings map[EventType][]*binding
}

// binding is one bound response: the author's configuration plus the runner
// closure produced at bind time. run receives the firing index and reports
// runtime failures; configuration failures never reach it.
type binding struct {
	resp Response
	run  func(index int) error
}

// Name returns the name given to NewBehavior.
func (b *Behavior) Name() string {
	return b.name
}

// Firings returns how many firings of the event this behavior has finished
// processing.
func (b *Behavior) Firings(event EventType) int {
	return b.counter.index(event)
}

// On validates and binds responses to an interaction event, after any bound
// earlier for the same event. Validation is eager: out-of-range
// enumerations, missing references, and names absent from their target are
// rejected here, never at dispatch. A response that fails validation is
// dropped without blocking the others in the call; the returned error joins
// one ConfigError per dropped response. Binding also resolves lifecycle
// actions and easing curves and performs one-time target initialization, so
// a bound response carries no unresolved configuration.
func (b *Behavior) On(event EventType, responses ...Response) error {
	if !event.Valid() {
		return configErrorf("binding", "invalid event type %d", event)
	}
	var errs []error
	for _, r := range responses {
		bd, err := b.bind(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		b.bindings[event] = append(b.bindings[event], bd)
	}
	return errors.Join(errs...)
}

// Bind subscribes the behavior to an event source, one subscription per
// event type that has responses bound. Call it after configuration; events
// for types configured later are missed. There is no unsubscribe.
func (b *Behavior) Bind(src EventSource) {
	if src == nil {
		panic("reflex: cannot bind nil event source")
	}
	for e := EventType(0); e < eventTypeCount; e++ {
		if len(b.bindings[e]) == 0 {
			continue
		}
		ev := e
		src.Subscribe(ev, func() { b.Trigger(ev) })
	}
}

// Trigger processes one firing of an interaction event: every response
// bound to the event runs in binding order, then the event's counter
// advances and the firing is reported to the engine's firing store. A
// response that fails at runtime is logged and skipped without blocking the
// rest.
func (b *Behavior) Trigger(event EventType) {
	if !event.Valid() {
		b.eng.log.Warn("ignoring unknown event", "behavior", b.name, "event", int(event))
		return
	}
	index := b.counter.index(event)
	ran, skipped := 0, 0
	for _, bd := range b.bindings[event] {
		if err := b.runBinding(bd, index); err != nil {
			skipped++
			b.eng.log.Warn("response skipped",
				"behavior", b.name, "event", event, "response", bd.resp.kind(), "error", err)
			continue
		}
		ran++
	}
	b.counter.advance(event)
	if b.eng.store != nil {
		b.eng.store.EmitFiring(Firing{
			Behavior:  b.name,
			Event:     event,
			Index:     index,
			Responses: ran,
			Skipped:   skipped,
		})
	}
}

// runBinding executes one bound response, converting a target panic into a
// runtime error so the dispatch loop can skip past it.
func (b *Behavior) runBinding(bd *binding, index int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("target panicked: %v", r)
		}
	}()
	return bd.run(index)
}

// guard wraps a deferred or lifecycle closure so a panic inside it is
// recovered and logged instead of unwinding the engine tick. A nil fn stays
// nil.
func (b *Behavior) guard(site string, fn func()) func() {
	if fn == nil {
		return nil
	}
	return func() {
		defer func() {
			if r := recover(); r != nil {
				b.eng.log.Warn("response action panicked",
					"behavior", b.name, "site", site, "panic", r)
			}
		}()
		fn()
	}
}

// --- response binders ---

// bind validates one response and produces its runner. The match is
// exhaustive over the sealed union; the default arm is unreachable for
// responses built from this package.
func (b *Behavior) bind(r Response) (*binding, error) {
	if r == nil {
		return nil, configErrorf("binding", "nil response")
	}
	var (
		run func(index int) error
		err error
	)
	switch r := r.(type) {
	case SetStateResponse:
		run, err = b.bindSetState(r)
	case ToggleResponse:
		run, err = b.bindToggle(r)
	case IterateChildrenResponse:
		run, err = b.bindIterateChildren(r)
	case TransformResponse:
		run, err = b.bindTransform(r)
	case AnimationResponse:
		run, err = b.bindAnimation(r)
	case MaterialResponse:
		run, err = b.bindMaterial(r)
	case ColorResponse:
		run, err = b.bindColor(r)
	case CallbackResponse:
		run, err = b.bindCallback(r)
	case BlendShapeResponse:
		run, err = b.bindBlendShape(r)
	case AudioResponse:
		run, err = b.bindAudio(r)
	case VideoResponse:
		run, err = b.bindVideo(r)
	default:
		err = configErrorf(r.kind(), "unsupported response type %T", r)
	}
	if err != nil {
		return nil, err
	}
	return &binding{resp: r, run: run}, nil
}

func (b *Behavior) bindSetState(r SetStateResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	if !r.State.Valid() {
		return nil, configErrorf(r.kind(), "invalid state %d", r.State)
	}
	if r.Delay < 0 {
		return nil, configErrorf(r.kind(), "negative delay")
	}
	target, enabled := r.Target, r.State == StateOn
	apply := b.guard("set-state apply", func() { target.SetEnabled(enabled) })
	return func(int) error {
		b.eng.After(r.Delay, apply)
		return nil
	}, nil
}

func (b *Behavior) bindToggle(r ToggleResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	target := r.Target
	return func(int) error {
		target.SetEnabled(!target.Enabled())
		return nil
	}, nil
}

func (b *Behavior) bindIterateChildren(r IterateChildrenResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	n := r.Target.NumChildren()
	if n == 0 {
		return nil, configErrorf(r.kind(), "container %q has no children", r.Target.Name())
	}
	// Seed the cursor: child 0 enabled, the rest disabled.
	for i := 0; i < n; i++ {
		r.Target.ChildAt(i).SetEnabled(i == 0)
	}
	target := r.Target
	return func(index int) error {
		n := target.NumChildren()
		if n == 0 {
			return fmt.Errorf("container %q has no children", target.Name())
		}
		target.ChildAt(index % n).SetEnabled(false)
		target.ChildAt((index + 1) % n).SetEnabled(true)
		return nil
	}, nil
}

// boundAnim is one transform channel prepared at bind time. The plan's
// endpoints are rewritten per firing from the play mode and firing index.
type boundAnim struct {
	plan tweenPlan
	mode PlayMode
	get  func() Value
}

func (b *Behavior) bindTransform(r TransformResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	if len(r.Animations) == 0 {
		return nil, configErrorf(r.kind(), "no animations")
	}
	target := r.Target
	anims := make([]boundAnim, len(r.Animations))
	for i, a := range r.Animations {
		if !a.Property.Valid() {
			return nil, configErrorf(r.kind(), "animation %d: invalid property %d", i, a.Property)
		}
		if !a.Space.Valid() {
			return nil, configErrorf(r.kind(), "animation %d: invalid space %d", i, a.Space)
		}
		if !a.Mode.Valid() {
			return nil, configErrorf(r.kind(), "animation %d: invalid play mode %d", i, a.Mode)
		}
		if a.Duration < 0 {
			return nil, configErrorf(r.kind(), "animation %d: negative duration", i)
		}
		if a.Delay < 0 {
			return nil, configErrorf(r.kind(), "animation %d: negative delay", i)
		}
		onStart, err := resolveAction(r.kind(), a.OnStart)
		if err != nil {
			return nil, err
		}
		onDone, err := resolveAction(r.kind(), a.OnComplete)
		if err != nil {
			return nil, err
		}
		prop, space := a.Property, a.Space
		anims[i] = boundAnim{
			plan: tweenPlan{
				from:     Vec3Value(a.From),
				to:       Vec3Value(a.To),
				duration: a.Duration,
				delay:    a.Delay,
				fn:       a.Easing.Func(),
				set:      transformSetter(target, prop, space),
				onStart:  b.guard("transform on-start", onStart),
				onDone:   b.guard("transform on-complete", onDone),
			},
			mode: a.Mode,
			get:  func() Value { return transformValue(target, prop, space) },
		}
	}
	return func(index int) error {
		for i := range anims {
			a := &anims[i]
			plan := a.plan
			plan.from, plan.to = tweenEndpoints(a.mode, index, a.plan.from, a.plan.to, a.get)
			plan.start(b.eng)
		}
		return nil
	}, nil
}

func (b *Behavior) bindAnimation(r AnimationResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	target := r.Target
	if len(r.Clips) > 0 {
		clips := append([]string(nil), r.Clips...)
		for i, name := range clips {
			if name == "" {
				return nil, configErrorf(r.kind(), "clip %d has no name", i)
			}
			if !target.HasClip(name) {
				return nil, configErrorf(r.kind(), "player %q has no clip %q", target.Name(), name)
			}
		}
		return func(index int) error {
			name := clips[index%len(clips)]
			if !target.HasClip(name) {
				return fmt.Errorf("player %q has no clip %q", target.Name(), name)
			}
			target.PlayClip(name)
			return nil
		}, nil
	}
	if r.Clip == "" {
		return nil, configErrorf(r.kind(), "no clip name")
	}
	if !target.HasClip(r.Clip) {
		return nil, configErrorf(r.kind(), "player %q has no clip %q", target.Name(), r.Clip)
	}
	clip := r.Clip
	return func(int) error {
		if !target.HasClip(clip) {
			return fmt.Errorf("player %q has no clip %q", target.Name(), clip)
		}
		target.PlayClip(clip)
		return nil
	}, nil
}

func (b *Behavior) bindMaterial(r MaterialResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	if r.Property == "" {
		return nil, configErrorf(r.kind(), "no property name")
	}
	if !r.Kind.Valid() {
		return nil, configErrorf(r.kind(), "invalid value kind %d", r.Kind)
	}
	if !r.Mode.Valid() {
		return nil, configErrorf(r.kind(), "invalid play mode %d", r.Mode)
	}
	if r.Duration < 0 {
		return nil, configErrorf(r.kind(), "negative duration")
	}
	if r.Delay < 0 {
		return nil, configErrorf(r.kind(), "negative delay")
	}
	if r.To.Kind() != r.Kind {
		return nil, configErrorf(r.kind(), "end value is %s, property declared %s", r.To.Kind(), r.Kind)
	}
	if r.Mode != PlayFromCurrent && r.From.Kind() != r.Kind {
		return nil, configErrorf(r.kind(), "start value is %s, property declared %s", r.From.Kind(), r.Kind)
	}
	src := r.Target.Material()
	if src == nil {
		return nil, configErrorf(r.kind(), "renderable %q has no material", r.Target.Name())
	}
	if !src.Has(r.Property) {
		return nil, configErrorf(r.kind(), "material has no parameter %q", r.Property)
	}
	onStart, err := resolveAction(r.kind(), r.OnStart)
	if err != nil {
		return nil, err
	}
	onDone, err := resolveAction(r.kind(), r.OnComplete)
	if err != nil {
		return nil, err
	}
	target, prop, kind, mode := r.Target, r.Property, r.Kind, r.Mode
	base := tweenPlan{
		from:     r.From,
		to:       r.To,
		duration: r.Duration,
		delay:    r.Delay,
		fn:       r.Easing.Func(),
		onStart:  b.guard("material on-start", onStart),
		onDone:   b.guard("material on-complete", onDone),
	}
	orig := src
	var mat Material // instanced on the first firing
	return func(index int) error {
		if mat == nil {
			cur := target.Material()
			if cur == nil {
				return fmt.Errorf("renderable %q has no material", target.Name())
			}
			if cur == orig {
				// Still the shared asset seen at bind time; instance it.
				mat = cur.Clone()
				target.SetMaterial(mat)
			} else {
				// A sibling response already instanced it; write the same copy.
				mat = cur
			}
		}
		if !mat.Has(prop) {
			return fmt.Errorf("material has no parameter %q", prop)
		}
		m := mat
		plan := base
		plan.set = materialSetter(m, prop, kind)
		plan.from, plan.to = tweenEndpoints(mode, index, base.from, base.to, func() Value {
			return materialValue(m, prop, kind)
		})
		plan.start(b.eng)
		return nil
	}, nil
}

func (b *Behavior) bindColor(r ColorResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	if r.Duration < 0 {
		return nil, configErrorf(r.kind(), "negative duration")
	}
	if r.Delay < 0 {
		return nil, configErrorf(r.kind(), "negative delay")
	}
	onStart, err := resolveAction(r.kind(), r.OnStart)
	if err != nil {
		return nil, err
	}
	onDone, err := resolveAction(r.kind(), r.OnComplete)
	if err != nil {
		return nil, err
	}
	target := r.Target
	base := tweenPlan{
		to:       ColorValue(r.To),
		duration: r.Duration,
		delay:    r.Delay,
		fn:       r.Easing.Func(),
		set:      func(v Value) { target.SetBaseColor(v.Color()) },
		onStart:  b.guard("color on-start", onStart),
		onDone:   b.guard("color on-complete", onDone),
	}
	var orig Material
	if rd, ok := r.Target.(Renderable); ok {
		orig = rd.Material()
	}
	instanced := false
	return func(int) error {
		if !instanced {
			if rd, ok := target.(Renderable); ok {
				if cur := rd.Material(); cur != nil && cur == orig {
					rd.SetMaterial(cur.Clone())
				}
			}
			instanced = true
		}
		plan := base
		plan.from = ColorValue(target.BaseColor())
		plan.start(b.eng)
		return nil
	}, nil
}

func (b *Behavior) bindCallback(r CallbackResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	target := r.Target
	return func(int) error {
		target.Call()
		return nil
	}, nil
}

func (b *Behavior) bindBlendShape(r BlendShapeResponse) (func(int) error, error) {
	if r.Target == nil {
		return nil, configErrorf(r.kind(), "no target")
	}
	if r.Shape == "" {
		return nil, configErrorf(r.kind(), "no shape name")
	}
	if !r.Target.HasBlendShape(r.Shape) {
		return nil, configErrorf(r.kind(), "target %q has no blend shape %q", r.Target.Name(), r.Shape)
	}
	if !r.Mode.Valid() {
		return nil, configErrorf(r.kind(), "invalid play mode %d", r.Mode)
	}
	if r.Duration < 0 {
		return nil, configErrorf(r.kind(), "negative duration")
	}
	if r.Delay < 0 {
		return nil, configErrorf(r.kind(), "negative delay")
	}
	onStart, err := resolveAction(r.kind(), r.OnStart)
	if err != nil {
		return nil, err
	}
	onDone, err := resolveAction(r.kind(), r.OnComplete)
	if err != nil {
		return nil, err
	}
	target, shape, mode := r.Target, r.Shape, r.Mode
	base := tweenPlan{
		from:     ScalarValue(r.From),
		to:       ScalarValue(r.To),
		duration: r.Duration,
		delay:    r.Delay,
		fn:       r.Easing.Func(),
		set:      func(v Value) { target.SetBlendShapeWeight(shape, v.Scalar()) },
		onStart:  b.guard("blend-shape on-start", onStart),
		onDone:   b.guard("blend-shape on-complete", onDone),
	}
	return func(index int) error {
		if !target.HasBlendShape(shape) {
			return fmt.Errorf("target %q has no blend shape %q", target.Name(), shape)
		}
		plan := base
		plan.from, plan.to = tweenEndpoints(mode, index, base.from, base.to, func() Value {
			return ScalarValue(target.BlendShapeWeight(shape))
		})
		plan.start(b.eng)
		return nil
	}, nil
}

func (b *Behavior) bindAudio(r AudioResponse) (func(int) error, error) {
	if r.Source == nil {
		return nil, configErrorf(r.kind(), "no source")
	}
	if !r.Mode.Valid() {
		return nil, configErrorf(r.kind(), "invalid play mode %d", r.Mode)
	}
	if r.Delay < 0 {
		return nil, configErrorf(r.kind(), "negative delay")
	}
	src, mode, delay := r.Source, r.Mode, r.Delay
	apply := b.guard("audio apply", func() {
		switch mode {
		case AudioToggleStop:
			if src.Playing() || src.Paused() {
				src.Stop()
			} else {
				src.Play()
			}
		case AudioTogglePause:
			switch {
			case src.Paused():
				src.Resume()
			case src.Playing():
				src.Pause()
			default:
				src.Play()
			}
		default:
			src.Play()
		}
	})
	return func(int) error {
		b.eng.After(delay, apply)
		return nil
	}, nil
}

func (b *Behavior) bindVideo(r VideoResponse) (func(int) error, error) {
	if r.Player == nil {
		return nil, configErrorf(r.kind(), "no player")
	}
	if r.Delay < 0 {
		return nil, configErrorf(r.kind(), "negative delay")
	}
	onReady, err := resolveAction(r.kind(), r.OnStart)
	if err != nil {
		return nil, err
	}
	onDone, err := resolveAction(r.kind(), r.OnComplete)
	if err != nil {
		return nil, err
	}
	player, looping, delay := r.Player, r.Looping, r.Delay
	if onReady != nil {
		player.OnReady(b.guard("video on-ready", onReady))
	}
	if onDone != nil {
		player.OnDone(b.guard("video on-done", onDone))
	}
	apply := b.guard("video play", func() {
		if !player.Playing() {
			player.Play(looping)
		}
	})
	return func(int) error {
		b.eng.After(delay, apply)
		return nil
	}, nil
}

// --- tween assembly ---

// tweenPlan is the bind-time residue of an animating response: everything a
// firing needs to start its tween except endpoints that depend on the firing
// itself.
type tweenPlan struct {
	from, to Value
	duration time.Duration
	delay    time.Duration
	fn       ease.TweenFunc
	set      Setter
	onStart  func()
	onDone   func()
}

func (p tweenPlan) start(e *Engine) {
	tw := e.Tween(p.from, p.to, p.duration, p.set).Delay(p.delay).Ease(p.fn)
	if p.onStart != nil {
		tw.OnStart(p.onStart)
	}
	if p.onDone != nil {
		tw.OnComplete(p.onDone)
	}
	tw.Start()
}
