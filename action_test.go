package reflex

import (
	"errors"
	"testing"
)

// stubObject is a minimal Object for exercising lifecycle actions without
// pulling in a scene graph.
type stubObject struct {
	name    string
	enabled bool
}

func (s *stubObject) Name() string            { return s.name }
func (s *stubObject) Enabled() bool           { return s.enabled }
func (s *stubObject) SetEnabled(enabled bool) { s.enabled = enabled }

func TestResolveActionNil(t *testing.T) {
	fn, err := resolveAction("material", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn != nil {
		t.Error("nil action should resolve to a nil closure")
	}
}

func TestResolveCallbackAction(t *testing.T) {
	calls := 0
	fn, err := resolveAction("transform", CallbackAction{
		Target: CallableFunc(func() { calls++ }),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn()
	fn()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestResolveCallbackActionMissingTarget(t *testing.T) {
	_, err := resolveAction("transform", CallbackAction{})
	if err == nil {
		t.Fatal("expected error for missing callback target")
	}
	var cfg *ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
	if cfg.Response != "transform" {
		t.Errorf("error attributed to %q, want %q", cfg.Response, "transform")
	}
}

func TestResolveSetStateAction(t *testing.T) {
	a := &stubObject{name: "a"}
	b := &stubObject{name: "b", enabled: true}
	fn, err := resolveAction("color", SetStateAction{Changes: []StateChange{
		{Target: a, Enabled: true},
		{Target: b, Enabled: false},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn()
	if !a.enabled {
		t.Error("a should be enabled")
	}
	if b.enabled {
		t.Error("b should be disabled")
	}
}

func TestResolveSetStateActionNilTarget(t *testing.T) {
	_, err := resolveAction("color", SetStateAction{Changes: []StateChange{
		{Target: &stubObject{name: "ok"}, Enabled: true},
		{Target: nil, Enabled: true},
	}})
	if err == nil {
		t.Fatal("expected error for nil state change target")
	}
	var cfg *ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
}

func TestResolveSetStateActionCapturesChanges(t *testing.T) {
	obj := &stubObject{name: "captured"}
	changes := []StateChange{{Target: obj, Enabled: true}}
	fn, err := resolveAction("blend-shape", SetStateAction{Changes: changes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the author's slice after binding must not affect the closure.
	changes[0] = StateChange{Target: &stubObject{name: "other"}, Enabled: false}

	fn()
	if !obj.enabled {
		t.Error("closure should apply the change captured at resolve time")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := configErrorf("material", "no parameter %q", "glow")
	want := `reflex: material response: no parameter "glow"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
