package reflex

// firingCounter tracks how many times each interaction event has fired on a
// Behavior. Toggle polarity and child iteration both derive from these
// counts, so a count advances exactly once per firing, after every response
// of that firing has been processed, and is never reset or decremented.
type firingCounter struct {
	counts map[EventType]int
}

// newFiringCounter returns a counter with every event type seeded to zero.
func newFiringCounter() firingCounter {
	c := firingCounter{counts: make(map[EventType]int, eventTypeCount)}
	for e := EventType(0); e < eventTypeCount; e++ {
		c.counts[e] = 0
	}
	return c
}

// index returns the number of completed firings for the event. Responses of
// an in-progress firing observe the pre-advance value.
func (c firingCounter) index(e EventType) int {
	return c.counts[e]
}

// advance records one completed firing of the event.
func (c firingCounter) advance(e EventType) {
	c.counts[e]++
}
