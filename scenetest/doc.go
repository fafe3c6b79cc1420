// Package scenetest provides an in-memory scene graph implementing every
// host interface the reflex engine consumes: objects with hierarchy and
// transforms, materials, visuals, blend-shaped meshes, clip players, audio
// and video stand-ins, callable scripts, and a manual event emitter.
//
// It exists so engine behavior can be driven and observed without a real
// renderer. The fakes record what the engine does to them (clips played,
// scripts called, playback started) and can be disposed mid-flight to
// exercise the engine's abort-and-skip paths: every access to a disposed
// object panics.
//
// Typical wiring:
//
//	eng := reflex.NewEngine()
//	door := scenetest.NewObject("door")
//	src := scenetest.NewEmitter()
//	b := eng.NewBehavior("door")
//	b.On(reflex.EventTriggerDown, reflex.ToggleResponse{Target: door})
//	b.Bind(src)
//	src.Emit(reflex.EventTriggerDown)
package scenetest
