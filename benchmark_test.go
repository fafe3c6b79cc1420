package reflex

import (
	"testing"
	"time"
)

// setupBenchEngine creates an engine running n long scalar tweens, long
// enough that none completes during a benchmark run.
func setupBenchEngine(n int) *Engine {
	eng := NewEngine()
	sink := 0.0
	for i := 0; i < n; i++ {
		eng.Tween(ScalarValue(0), ScalarValue(1), time.Hour, func(v Value) {
			sink = v.Scalar()
		}).Start()
	}
	_ = sink
	eng.Update(time.Millisecond) // admit the pending tweens
	return eng
}

// --- Tween Runner Benchmarks ---

func BenchmarkEngineUpdate_1Tween(b *testing.B) {
	eng := setupBenchEngine(1)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		eng.Update(time.Millisecond)
	}
}

func BenchmarkEngineUpdate_1000Tweens(b *testing.B) {
	eng := setupBenchEngine(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		eng.Update(time.Millisecond)
	}
}

func BenchmarkEngineUpdate_Idle(b *testing.B) {
	eng := NewEngine()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		eng.Update(time.Millisecond)
	}
}

// --- Dispatch Benchmarks ---

func BenchmarkTrigger_ImmediateResponses(b *testing.B) {
	eng := NewEngine()
	bh := eng.NewBehavior("bench")
	targets := []*stubObject{{name: "a"}, {name: "b"}, {name: "c"}}
	for _, obj := range targets {
		if err := bh.On(EventTriggerDown, ToggleResponse{Target: obj}); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bh.Trigger(EventTriggerDown)
	}
}

func BenchmarkTrigger_NoResponses(b *testing.B) {
	eng := NewEngine()
	bh := eng.NewBehavior("bench")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bh.Trigger(EventTriggerDown)
	}
}

func BenchmarkEasingLookup(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Easing(i % easingCount).Func()
	}
}
