package reflex

// LifecycleAction is an optional follow-up attached to an animating
// response's start or completion point, or to a video's ready and done
// signals. The union is sealed: exactly two kinds exist, CallbackAction and
// SetStateAction. Binding resolves an action to a closure once, at
// configuration time; the closure is invoked later, at the lifecycle point.
type LifecycleAction interface {
	isLifecycleAction()
}

// CallbackAction invokes a host script at the lifecycle point.
type CallbackAction struct {
	Target Callable
}

func (CallbackAction) isLifecycleAction() {}

// StateChange pairs a target object with the enabled value to write.
type StateChange struct {
	Target  Object
	Enabled bool
}

// SetStateAction writes enabled flags on a list of objects at the lifecycle
// point.
type SetStateAction struct {
	Changes []StateChange
}

func (SetStateAction) isLifecycleAction() {}

// resolveAction turns a lifecycle action into an invokable closure. A nil
// action resolves to a nil closure. A missing reference is a configuration
// error attributed to the owning response kind.
func resolveAction(response string, a LifecycleAction) (func(), error) {
	switch a := a.(type) {
	case nil:
		return nil, nil
	case CallbackAction:
		if a.Target == nil {
			return nil, configErrorf(response, "lifecycle callback has no target")
		}
		target := a.Target
		return func() { target.Call() }, nil
	case SetStateAction:
		for i, ch := range a.Changes {
			if ch.Target == nil {
				return nil, configErrorf(response, "lifecycle state change %d has no target", i)
			}
		}
		changes := append([]StateChange(nil), a.Changes...)
		return func() {
			for _, ch := range changes {
				ch.Target.SetEnabled(ch.Enabled)
			}
		}, nil
	default:
		return nil, configErrorf(response, "unknown lifecycle action %T", a)
	}
}
