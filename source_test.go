package reflex

import "testing"

var _ EventSource = (*EventQueue)(nil)

func TestEventQueueDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	var got []EventType
	q.Subscribe(EventHoverEnter, func() { got = append(got, EventHoverEnter) })
	q.Subscribe(EventTriggerDown, func() { got = append(got, EventTriggerDown) })

	q.Push(EventTriggerDown)
	q.Push(EventHoverEnter)
	q.Push(EventTriggerDown)

	for q.DispatchNext() {
	}
	want := []EventType{EventTriggerDown, EventHoverEnter, EventTriggerDown}
	if len(got) != len(want) {
		t.Fatalf("dispatched %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEventQueueDispatchesOnePerCall(t *testing.T) {
	q := NewEventQueue()
	q.Push(EventHoverEnter)
	q.Push(EventHoverExit)

	if !q.DispatchNext() {
		t.Fatal("DispatchNext returned false with events queued")
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d after one dispatch, want 1", q.Len())
	}
	if !q.DispatchNext() {
		t.Fatal("DispatchNext returned false with one event queued")
	}
	if q.DispatchNext() {
		t.Error("DispatchNext returned true on an empty queue")
	}
}

func TestEventQueueDropsInvalidEvents(t *testing.T) {
	q := NewEventQueue()
	q.Push(EventType(9))
	if q.Len() != 0 {
		t.Errorf("Len = %d after pushing an unknown event, want 0", q.Len())
	}
}

func TestEventQueueIgnoresNilHandlers(t *testing.T) {
	q := NewEventQueue()
	q.Subscribe(EventHoverEnter, nil)
	q.Push(EventHoverEnter)
	if !q.DispatchNext() {
		t.Fatal("DispatchNext returned false with an event queued")
	}
}

func TestEventQueueDrivesBehavior(t *testing.T) {
	eng := NewEngine()
	b := eng.NewBehavior("panel")
	fired := 0
	if err := b.On(EventTriggerDown, CallbackResponse{Target: CallableFunc(func() { fired++ })}); err != nil {
		t.Fatalf("On: %v", err)
	}
	q := NewEventQueue()
	b.Bind(q)

	q.Push(EventTriggerDown)
	q.Push(EventTriggerDown)
	for q.DispatchNext() {
	}
	eng.Update(0)

	if fired != 2 {
		t.Errorf("callback ran %d times, want 2", fired)
	}
	if b.Firings(EventTriggerDown) != 2 {
		t.Errorf("Firings = %d, want 2", b.Firings(EventTriggerDown))
	}
}
