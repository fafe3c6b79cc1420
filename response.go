package reflex

import "time"

// Response is the sealed interface over the eleven response kinds a Behavior
// can bind to an interaction event. Responses are plain value structs,
// authored once and passed by value to Behavior.On; binding captures their
// configuration, so later mutation of an author's copy has no effect.
//
// The engine matches responses exhaustively by concrete type. Outside
// implementations are impossible; the marker method is unexported.
type Response interface {
	// kind names the response in errors, logs, and firing records.
	kind() string
}

// SetStateResponse writes a fixed enabled state to a target after an
// optional delay. The write lands on an engine tick, never synchronously
// inside the dispatch.
type SetStateResponse struct {
	Target Object
	State  State
	Delay  time.Duration
}

func (SetStateResponse) kind() string { return "set-state" }

// ToggleResponse flips a target's enabled flag immediately on dispatch.
type ToggleResponse struct {
	Target Object
}

func (ToggleResponse) kind() string { return "toggle" }

// IterateChildrenResponse steps an enabled cursor through a container's
// children: each firing disables the current child and enables the next,
// wrapping past the last. Binding initializes the container with child 0
// enabled and the rest disabled; a container with no children is rejected
// at bind time.
type IterateChildrenResponse struct {
	Target Container
}

func (IterateChildrenResponse) kind() string { return "iterate-children" }

// TransformAnimation is one tweened transform channel inside a
// TransformResponse.
type TransformAnimation struct {
	Property   TransformProperty
	Space      Space
	Mode       PlayMode
	From, To   Vec3
	Duration   time.Duration
	Delay      time.Duration
	Easing     Easing
	OnStart    LifecycleAction // optional
	OnComplete LifecycleAction // optional
}

// TransformResponse tweens one or more transform channels on a target. Each
// firing starts one tween per configured animation; the animations run
// concurrently and independently.
type TransformResponse struct {
	Target     Transformer
	Animations []TransformAnimation
}

func (TransformResponse) kind() string { return "transform" }

// AnimationResponse plays a named animation clip. With a non-empty Clips
// list, firing n plays Clips[n % len(Clips)]; otherwise the single Clip
// plays on every firing.
type AnimationResponse struct {
	Target AnimationPlayer
	Clip   string
	Clips  []string
}

func (AnimationResponse) kind() string { return "animation" }

// MaterialResponse tweens a named material parameter of the declared kind.
// The target's material is cloned on the first firing and the clone
// installed on the target, so animated writes never touch a shared asset.
// Responses animating the same target write the same installed clone.
type MaterialResponse struct {
	Target     Renderable
	Property   string
	Kind       ValueKind
	Mode       PlayMode
	From, To   Value
	Duration   time.Duration
	Delay      time.Duration
	Easing     Easing
	OnStart    LifecycleAction
	OnComplete LifecycleAction
}

func (MaterialResponse) kind() string { return "material" }

// ColorResponse tweens a target's base color from its live value to a
// configured end color. When the target is also a Renderable its material is
// cloned on the first firing, like MaterialResponse.
type ColorResponse struct {
	Target     Colorable
	To         Color
	Duration   time.Duration
	Delay      time.Duration
	Easing     Easing
	OnStart    LifecycleAction
	OnComplete LifecycleAction
}

func (ColorResponse) kind() string { return "color" }

// CallbackResponse invokes a host script immediately on dispatch.
type CallbackResponse struct {
	Target Callable
}

func (CallbackResponse) kind() string { return "callback" }

// BlendShapeResponse tweens the weight of a named blend shape. A shape
// missing from the target is rejected at bind time.
type BlendShapeResponse struct {
	Target     BlendShaped
	Shape      string
	Mode       PlayMode
	From, To   float64
	Duration   time.Duration
	Delay      time.Duration
	Easing     Easing
	OnStart    LifecycleAction
	OnComplete LifecycleAction
}

func (BlendShapeResponse) kind() string { return "blend-shape" }

// AudioResponse drives an audio source after an optional delay: restart it,
// toggle it against stop, or toggle it against pause, depending on Mode and
// the source's current state.
type AudioResponse struct {
	Source AudioSource
	Mode   AudioPlayMode
	Delay  time.Duration
}

func (AudioResponse) kind() string { return "audio" }

// VideoResponse starts video playback after an optional delay, once or
// looping, if the player is not already playing. OnStart and OnComplete
// attach to the provider's ready and done signals when the response binds;
// no tween is involved.
type VideoResponse struct {
	Player     VideoPlayer
	Looping    bool
	Delay      time.Duration
	OnStart    LifecycleAction
	OnComplete LifecycleAction
}

func (VideoResponse) kind() string { return "video" }

// --- endpoint derivation ---

// tweenEndpoints derives a tween's endpoints for one firing. current is
// consulted only for PlayFromCurrent. For PlayToggle the configured
// endpoints swap on odd firing indices, so consecutive firings alternate
// direction starting forward.
func tweenEndpoints(mode PlayMode, index int, from, to Value, current func() Value) (Value, Value) {
	switch mode {
	case PlayFromCurrent:
		return current(), to
	case PlayToggle:
		if index%2 == 1 {
			return to, from
		}
		return from, to
	default:
		return from, to
	}
}

// --- target accessors ---

// transformValue reads one transform channel as a Value.
func transformValue(t Transformer, p TransformProperty, s Space) Value {
	switch p {
	case TransformRotation:
		return Vec3Value(t.Rotation(s))
	case TransformScale:
		return Vec3Value(t.Scale(s))
	default:
		return Vec3Value(t.Position(s))
	}
}

// transformSetter returns a Setter writing one transform channel.
func transformSetter(t Transformer, p TransformProperty, s Space) Setter {
	switch p {
	case TransformRotation:
		return func(v Value) { t.SetRotation(s, v.Vec3()) }
	case TransformScale:
		return func(v Value) { t.SetScale(s, v.Vec3()) }
	default:
		return func(v Value) { t.SetPosition(s, v.Vec3()) }
	}
}

// materialValue reads a material parameter of the declared kind as a Value.
func materialValue(m Material, name string, kind ValueKind) Value {
	switch kind {
	case ValueVec3:
		return Vec3Value(m.Vec3(name))
	case ValueColor:
		return ColorValue(m.Color(name))
	default:
		return ScalarValue(m.Float(name))
	}
}

// materialSetter returns a Setter writing a material parameter of the
// declared kind.
func materialSetter(m Material, name string, kind ValueKind) Setter {
	switch kind {
	case ValueVec3:
		return func(v Value) { m.SetVec3(name, v.Vec3()) }
	case ValueColor:
		return func(v Value) { m.SetColor(name, v.Color()) }
	default:
		return func(v Value) { m.SetFloat(name, v.Scalar()) }
	}
}
