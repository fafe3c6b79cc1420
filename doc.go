// Package reflex is an interaction-response engine for scene-graph hosts.
//
// Reflex connects interaction events raised by a host (hover, trigger press
// and release) to configurable response lists: enabling and disabling
// objects, tweened transform, material, color, and blend-shape animations,
// animation clips, audio and video playback, and script callbacks.
//
// Full documentation, tutorials, and examples are available at:
//
// https://phanxgames.github.io/reflex/
//
// # Quick start
//
// Create an [Engine], configure a [Behavior], bind it to an event source,
// and tick the engine from the host's update loop:
//
//	eng := reflex.NewEngine()
//
//	b := eng.NewBehavior("door")
//	err := b.On(reflex.EventTriggerDown, reflex.TransformResponse{
//		Target: door, // your scene object, implementing Transformer
//		Animations: []reflex.TransformAnimation{{
//			Property: reflex.TransformRotation,
//			Mode:     reflex.PlayToggle,
//			To:       reflex.Vec3{Y: math.Pi / 2},
//			Duration: 700 * time.Millisecond,
//			Easing:   reflex.EaseInOutCubic,
//		}},
//	})
//	b.Bind(pointer) // pointer implements EventSource
//
//	// each frame:
//	eng.Update(dt)
//
// # Behaviors and events
//
// A [Behavior] owns one response list per event type and a per-event firing
// counter. Every dispatch advances the counter exactly once, and all
// responses of that firing observe the same counter value, which drives
// [PlayToggle] endpoint alternation and [AnimationResponse] clip cycling.
// Configuration errors surface at [Behavior.On]; runtime failures skip the
// offending response, are logged, and never block its siblings.
//
// # Responses
//
// Immediate responses ([SetStateResponse], [ToggleResponse],
// [IterateChildrenResponse], [AnimationResponse], [CallbackResponse],
// [AudioResponse], [VideoResponse]) mutate the target when their delay
// elapses. Animated responses ([TransformResponse], [MaterialResponse],
// [ColorResponse], [BlendShapeResponse]) schedule tweens on the engine;
// easing curves come from [gween], and every tween lands exactly on its
// configured end value. Material writes go to a per-target clone, so shared
// material assets are never mutated.
//
// # Host integration
//
// The engine reaches the scene only through small capability interfaces
// ([Transformer], [Renderable], [Colorable], [BlendShaped],
// [AnimationPlayer], [AudioSource], [VideoPlayer], [Callable]); implement
// them on your own node types. Events arrive through an [EventSource]; the
// buffered [EventQueue] suits hosts that sample input ahead of dispatch, and
// [Replay] drives scripted event sequences for demos and tests. The
// reflex/scenetest package provides in-memory scene objects for tests, and
// reflex/audio a [beep]-backed AudioSource.
//
// [gween]: https://github.com/tanema/gween
// [beep]: https://github.com/gopxl/beep
package reflex
