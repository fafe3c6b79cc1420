package reflex

import "testing"

func TestCounterSeedsAllEvents(t *testing.T) {
	c := newFiringCounter()
	if len(c.counts) != eventTypeCount {
		t.Fatalf("seeded %d counters, want %d", len(c.counts), eventTypeCount)
	}
	for e := EventType(0); e < eventTypeCount; e++ {
		if got := c.index(e); got != 0 {
			t.Errorf("index(%v) = %d, want 0", e, got)
		}
	}
}

func TestCounterAdvanceIsolatedPerEvent(t *testing.T) {
	c := newFiringCounter()
	c.advance(EventTriggerDown)
	c.advance(EventTriggerDown)
	c.advance(EventTriggerDown)
	c.advance(EventHoverEnter)

	if got := c.index(EventTriggerDown); got != 3 {
		t.Errorf("index(trigger-down) = %d, want 3", got)
	}
	if got := c.index(EventHoverEnter); got != 1 {
		t.Errorf("index(hover-enter) = %d, want 1", got)
	}
	if got := c.index(EventHoverExit); got != 0 {
		t.Errorf("index(hover-exit) = %d, want 0", got)
	}
	if got := c.index(EventTriggerUp); got != 0 {
		t.Errorf("index(trigger-up) = %d, want 0", got)
	}
}
