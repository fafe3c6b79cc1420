package reflex

// EventType identifies a kind of interaction event raised by the host's
// interaction subsystem. Each type owns an independent firing counter on
// every Behavior.
type EventType uint8

const (
	EventHoverEnter  EventType = iota // fires when a pointer or gaze enters the interactable
	EventHoverExit                    // fires when it leaves the interactable
	EventTriggerDown                  // fires when the trigger (pinch, tap, click) is pressed
	EventTriggerUp                    // fires when the trigger is released
)

// eventTypeCount is the number of EventType values; counters are seeded for
// all of them up front.
const eventTypeCount = 4

// String returns the event name used in logs and firing records.
func (e EventType) String() string {
	switch e {
	case EventHoverEnter:
		return "hover-enter"
	case EventHoverExit:
		return "hover-exit"
	case EventTriggerDown:
		return "trigger-down"
	case EventTriggerUp:
		return "trigger-up"
	}
	return "unknown"
}

// Valid reports whether e is one of the defined event types.
func (e EventType) Valid() bool {
	return e < eventTypeCount
}

// State is the two-valued selector written to a target's enabled flag by
// SetStateResponse.
type State uint8

const (
	StateOff State = iota // disable the target
	StateOn               // enable the target
)

// String returns "off" or "on".
func (s State) String() string {
	if s == StateOn {
		return "on"
	}
	return "off"
}

// Valid reports whether s is StateOff or StateOn.
func (s State) Valid() bool {
	return s <= StateOn
}

// PlayMode controls how an animating response derives its endpoints on each
// firing.
type PlayMode uint8

const (
	PlayFromCurrent PlayMode = iota // start at the target's live value, end at the configured end
	PlayEverytime                   // run between the two configured endpoints every firing
	PlayToggle                      // alternate endpoint order with the firing counter's parity
)

// String returns the play mode name.
func (m PlayMode) String() string {
	switch m {
	case PlayFromCurrent:
		return "from-current"
	case PlayEverytime:
		return "everytime"
	case PlayToggle:
		return "toggle"
	}
	return "unknown"
}

// Valid reports whether m is one of the defined play modes.
func (m PlayMode) Valid() bool {
	return m <= PlayToggle
}

// Space selects the coordinate space a transform animation reads and writes.
type Space uint8

const (
	SpaceLocal Space = iota // relative to the object's parent
	SpaceWorld              // absolute scene coordinates
)

// String returns "local" or "world".
func (s Space) String() string {
	if s == SpaceWorld {
		return "world"
	}
	return "local"
}

// Valid reports whether s is SpaceLocal or SpaceWorld.
func (s Space) Valid() bool {
	return s <= SpaceWorld
}

// TransformProperty selects which transform channel a TransformAnimation
// drives.
type TransformProperty uint8

const (
	TransformPosition TransformProperty = iota // translate the object
	TransformRotation                          // rotate the object (Euler angles)
	TransformScale                             // scale the object
)

// String returns the property name.
func (p TransformProperty) String() string {
	switch p {
	case TransformPosition:
		return "position"
	case TransformRotation:
		return "rotation"
	case TransformScale:
		return "scale"
	}
	return "unknown"
}

// Valid reports whether p is one of the defined transform properties.
func (p TransformProperty) Valid() bool {
	return p <= TransformScale
}

// AudioPlayMode controls how an AudioResponse drives its source.
type AudioPlayMode uint8

const (
	AudioPlay        AudioPlayMode = iota // restart playback from the beginning
	AudioToggleStop                       // play if stopped, stop if playing
	AudioTogglePause                      // pause if playing, resume or play otherwise
)

// String returns the audio play mode name.
func (m AudioPlayMode) String() string {
	switch m {
	case AudioPlay:
		return "play"
	case AudioToggleStop:
		return "toggle-stop"
	case AudioTogglePause:
		return "toggle-pause"
	}
	return "unknown"
}

// Valid reports whether m is one of the defined audio play modes.
func (m AudioPlayMode) Valid() bool {
	return m <= AudioTogglePause
}

// Vec3 is a 3D vector used for positions, rotations (Euler angles, radians),
// and scales throughout the API.
type Vec3 struct {
	X, Y, Z float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ValueKind discriminates the payload carried by a Value.
type ValueKind uint8

const (
	ValueScalar ValueKind = iota // single float64
	ValueVec3                    // 3-component vector
	ValueColor                   // 4-component RGBA color
)

// String returns the value kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueScalar:
		return "scalar"
	case ValueVec3:
		return "vec3"
	case ValueColor:
		return "color"
	}
	return "unknown"
}

// Valid reports whether k is one of the defined value kinds.
func (k ValueKind) Valid() bool {
	return k <= ValueColor
}

// Value is a tagged interpolation payload: a scalar, a Vec3, or a Color.
// Tweens interpolate Values component-wise. The zero Value is the scalar 0.
type Value struct {
	kind ValueKind
	c    [4]float64
}

// ScalarValue wraps a float64 in a Value.
func ScalarValue(v float64) Value {
	return Value{kind: ValueScalar, c: [4]float64{v, 0, 0, 0}}
}

// Vec3Value wraps a Vec3 in a Value.
func Vec3Value(v Vec3) Value {
	return Value{kind: ValueVec3, c: [4]float64{v.X, v.Y, v.Z, 0}}
}

// ColorValue wraps a Color in a Value.
func ColorValue(v Color) Value {
	return Value{kind: ValueColor, c: [4]float64{v.R, v.G, v.B, v.A}}
}

// Kind returns the payload kind.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Scalar unwraps a scalar Value. Panics if the Value holds another kind.
func (v Value) Scalar() float64 {
	if v.kind != ValueScalar {
		panic("reflex: value is not a scalar")
	}
	return v.c[0]
}

// Vec3 unwraps a vector Value. Panics if the Value holds another kind.
func (v Value) Vec3() Vec3 {
	if v.kind != ValueVec3 {
		panic("reflex: value is not a vec3")
	}
	return Vec3{v.c[0], v.c[1], v.c[2]}
}

// Color unwraps a color Value. Panics if the Value holds another kind.
func (v Value) Color() Color {
	if v.kind != ValueColor {
		panic("reflex: value is not a color")
	}
	return Color{v.c[0], v.c[1], v.c[2], v.c[3]}
}

// componentCount returns how many of the four component slots the kind uses.
func (k ValueKind) componentCount() int {
	switch k {
	case ValueVec3:
		return 3
	case ValueColor:
		return 4
	default:
		return 1
	}
}

// Firing describes one processed dispatch of an interaction event on a
// Behavior. It is emitted to the engine's FiringStore, if one is set, after
// the firing's responses have run. Index records the counter value every
// response of the firing observed, not the advanced one.
type Firing struct {
	Behavior  string    // name given to NewBehavior
	Event     EventType // which event fired
	Index     int       // counter value observed by the firing's responses
	Responses int       // responses that ran
	Skipped   int       // responses skipped after runtime failures
}

// FiringStore is the interface for optional ECS integration.
// When set on an Engine, firings are forwarded to the ECS.
type FiringStore interface {
	EmitFiring(Firing)
}
