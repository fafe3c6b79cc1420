package reflex

import (
	"fmt"
	"strings"
	"testing"
)

// --- Enum constant values (catch accidental iota drift) ---

func TestEnumValues(t *testing.T) {
	// EventType
	if EventHoverEnter != 0 {
		t.Errorf("EventHoverEnter = %d, want 0", EventHoverEnter)
	}
	if EventTriggerUp != 3 {
		t.Errorf("EventTriggerUp = %d, want 3", EventTriggerUp)
	}

	// State
	if StateOff != 0 {
		t.Errorf("StateOff = %d, want 0", StateOff)
	}
	if StateOn != 1 {
		t.Errorf("StateOn = %d, want 1", StateOn)
	}

	// PlayMode
	if PlayFromCurrent != 0 {
		t.Errorf("PlayFromCurrent = %d, want 0", PlayFromCurrent)
	}
	if PlayToggle != 2 {
		t.Errorf("PlayToggle = %d, want 2", PlayToggle)
	}

	// Space
	if SpaceLocal != 0 {
		t.Errorf("SpaceLocal = %d, want 0", SpaceLocal)
	}
	if SpaceWorld != 1 {
		t.Errorf("SpaceWorld = %d, want 1", SpaceWorld)
	}

	// TransformProperty
	if TransformPosition != 0 {
		t.Errorf("TransformPosition = %d, want 0", TransformPosition)
	}
	if TransformScale != 2 {
		t.Errorf("TransformScale = %d, want 2", TransformScale)
	}

	// AudioPlayMode
	if AudioPlay != 0 {
		t.Errorf("AudioPlay = %d, want 0", AudioPlay)
	}
	if AudioTogglePause != 2 {
		t.Errorf("AudioTogglePause = %d, want 2", AudioTogglePause)
	}

	// ValueKind
	if ValueScalar != 0 {
		t.Errorf("ValueScalar = %d, want 0", ValueScalar)
	}
	if ValueColor != 2 {
		t.Errorf("ValueColor = %d, want 2", ValueColor)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		event EventType
		want  string
	}{
		{EventHoverEnter, "hover-enter"},
		{EventHoverExit, "hover-exit"},
		{EventTriggerDown, "trigger-down"},
		{EventTriggerUp, "trigger-up"},
		{EventType(9), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.event.String(); got != tt.want {
				t.Errorf("EventType(%d).String() = %q, want %q", tt.event, got, tt.want)
			}
		})
	}
}

func TestEnumValid(t *testing.T) {
	tests := []struct {
		name  string
		valid []bool
	}{
		{"EventType", []bool{
			EventHoverEnter.Valid(), EventTriggerUp.Valid(), !EventType(4).Valid(),
		}},
		{"State", []bool{
			StateOff.Valid(), StateOn.Valid(), !State(2).Valid(),
		}},
		{"PlayMode", []bool{
			PlayFromCurrent.Valid(), PlayToggle.Valid(), !PlayMode(3).Valid(),
		}},
		{"Space", []bool{
			SpaceLocal.Valid(), SpaceWorld.Valid(), !Space(2).Valid(),
		}},
		{"TransformProperty", []bool{
			TransformPosition.Valid(), TransformScale.Valid(), !TransformProperty(3).Valid(),
		}},
		{"AudioPlayMode", []bool{
			AudioPlay.Valid(), AudioTogglePause.Valid(), !AudioPlayMode(3).Valid(),
		}},
		{"ValueKind", []bool{
			ValueScalar.Valid(), ValueColor.Valid(), !ValueKind(3).Valid(),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, ok := range tt.valid {
				if !ok {
					t.Errorf("%s validity check %d failed", tt.name, i)
				}
			}
		})
	}
}

// --- Value ---

func TestValueRoundTrip(t *testing.T) {
	s := ScalarValue(3.5)
	if s.Kind() != ValueScalar {
		t.Errorf("Kind = %v, want ValueScalar", s.Kind())
	}
	if s.Scalar() != 3.5 {
		t.Errorf("Scalar = %v, want 3.5", s.Scalar())
	}

	v := Vec3Value(Vec3{1, -2, 3})
	if v.Kind() != ValueVec3 {
		t.Errorf("Kind = %v, want ValueVec3", v.Kind())
	}
	if v.Vec3() != (Vec3{1, -2, 3}) {
		t.Errorf("Vec3 = %v, want {1 -2 3}", v.Vec3())
	}

	c := ColorValue(Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4})
	if c.Kind() != ValueColor {
		t.Errorf("Kind = %v, want ValueColor", c.Kind())
	}
	if c.Color() != (Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}) {
		t.Errorf("Color = %v, want {0.1 0.2 0.3 0.4}", c.Color())
	}
}

func TestValueZeroIsScalar(t *testing.T) {
	var v Value
	if v.Kind() != ValueScalar {
		t.Errorf("zero Value kind = %v, want ValueScalar", v.Kind())
	}
	if v.Scalar() != 0 {
		t.Errorf("zero Value scalar = %v, want 0", v.Scalar())
	}
}

func TestValueKindMismatchPanics(t *testing.T) {
	t.Run("scalar accessor on vec3", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic, got none")
			}
			if !strings.Contains(fmt.Sprint(r), "not a scalar") {
				t.Errorf("panic = %v, want mention of scalar", r)
			}
		}()
		_ = Vec3Value(Vec3{1, 2, 3}).Scalar()
	})

	t.Run("vec3 accessor on color", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic, got none")
			}
		}()
		_ = ColorValue(Color{}).Vec3()
	})

	t.Run("color accessor on scalar", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic, got none")
			}
		}()
		_ = ScalarValue(1).Color()
	})
}

func TestValueKindComponentCount(t *testing.T) {
	tests := []struct {
		kind ValueKind
		want int
	}{
		{ValueScalar, 1},
		{ValueVec3, 3},
		{ValueColor, 4},
	}
	for _, tt := range tests {
		if got := tt.kind.componentCount(); got != tt.want {
			t.Errorf("%v.componentCount() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

// --- Benchmarks (verify zero allocations) ---

func BenchmarkValueWrapUnwrap(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		v := Vec3Value(Vec3{1, 2, 3})
		_ = v.Vec3()
	}
}

func BenchmarkColorValue(b *testing.B) {
	c := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	b.ReportAllocs()
	for b.Loop() {
		_ = ColorValue(c).Color()
	}
}
