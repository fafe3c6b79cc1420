package reflex

// This file defines the engine's two collaborator surfaces. Upstream, an
// EventSource raises interaction events. Downstream, scene objects implement
// whichever capability interfaces their responses require. The engine never
// creates or destroys host objects; it only reads and mutates them through
// these interfaces.

// EventSource is implemented by the host's interaction subsystem.
// Subscribe registers a handler for one event type; events carry no payload
// beyond their type. Behavior.Bind subscribes once per configured event type
// and never unsubscribes.
type EventSource interface {
	Subscribe(e EventType, fn func())
}

// Object is the minimal scene-graph surface every response target exposes.
type Object interface {
	// Name identifies the object in logs and error messages.
	Name() string
	// Enabled reports whether the object participates in the scene.
	Enabled() bool
	// SetEnabled shows or hides the object and its subtree.
	SetEnabled(enabled bool)
}

// Container is an Object with an ordered child list, targeted by
// IterateChildrenResponse.
type Container interface {
	Object
	NumChildren() int
	ChildAt(i int) Object
}

// Transformer is an Object whose position, rotation, and scale can be read
// and written in local or world space. Rotations are Euler angles in
// radians.
type Transformer interface {
	Object
	Position(space Space) Vec3
	SetPosition(space Space, v Vec3)
	Rotation(space Space) Vec3
	SetRotation(space Space, v Vec3)
	Scale(space Space) Vec3
	SetScale(space Space, v Vec3)
}

// Material holds named shader parameters. Clone returns an independent copy;
// the engine clones a target's material before the first animated write so
// shared assets are never mutated.
type Material interface {
	Clone() Material
	// Has reports whether the named parameter exists.
	Has(name string) bool
	Float(name string) float64
	SetFloat(name string, v float64)
	Vec3(name string) Vec3
	SetVec3(name string, v Vec3)
	Color(name string) Color
	SetColor(name string, v Color)
}

// Renderable is an Object drawn with a Material, targeted by
// MaterialResponse.
type Renderable interface {
	Object
	Material() Material
	SetMaterial(m Material)
}

// Colorable is an Object with a base color, targeted by ColorResponse.
// Visuals and text components both qualify.
type Colorable interface {
	Object
	BaseColor() Color
	SetBaseColor(c Color)
}

// BlendShaped is an Object exposing named morph-target weights, targeted by
// BlendShapeResponse.
type BlendShaped interface {
	Object
	BlendShapeNames() []string
	HasBlendShape(name string) bool
	BlendShapeWeight(name string) float64
	SetBlendShapeWeight(name string, w float64)
}

// AnimationPlayer is an Object that can play named animation clips, targeted
// by AnimationResponse.
type AnimationPlayer interface {
	Object
	HasClip(name string) bool
	PlayClip(name string)
}

// AudioSource is an Object wrapping a playable audio stream, targeted by
// AudioResponse. Play restarts from the beginning; Resume continues from the
// pause point, or starts playback when nothing is paused.
type AudioSource interface {
	Object
	Playing() bool
	Paused() bool
	Play()
	Stop()
	Pause()
	Resume()
}

// VideoPlayer is an Object wrapping video playback, targeted by
// VideoResponse. OnReady and OnDone register callbacks on the provider's
// ready and completion signals; both may be called before playback starts.
type VideoPlayer interface {
	Object
	Playing() bool
	Play(looping bool)
	OnReady(fn func())
	OnDone(fn func())
}

// Callable is implemented by host scripts invoked by CallbackResponse and
// CallbackAction. A panic inside Call is recovered by the engine, logged,
// and not retried.
type Callable interface {
	Call()
}

// CallableFunc adapts a plain function to the Callable interface.
type CallableFunc func()

// Call invokes the function.
func (f CallableFunc) Call() { f() }
