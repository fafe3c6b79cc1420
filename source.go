package reflex

// EventQueue is a buffered EventSource for hosts that sample input ahead of
// dispatch. Push queues events as they are observed; DispatchNext hands the
// oldest one to its subscribers. Draining one event per tick keeps
// multi-step gestures observable by state that settles between ticks, a
// press on one tick and its release on the next.
type EventQueue struct {
	subs  map[EventType][]func()
	queue []EventType
}

// NewEventQueue creates an empty queue with no subscriptions.
func NewEventQueue() *EventQueue {
	return &EventQueue{subs: make(map[EventType][]func(), eventTypeCount)}
}

// Subscribe registers a handler for one event type. Nil handlers are
// dropped.
func (q *EventQueue) Subscribe(e EventType, fn func()) {
	if fn == nil {
		return
	}
	q.subs[e] = append(q.subs[e], fn)
}

// Push queues an event for dispatch. Unknown event types are dropped.
func (q *EventQueue) Push(e EventType) {
	if !e.Valid() {
		return
	}
	q.queue = append(q.queue, e)
}

// Len returns the number of queued events not yet dispatched.
func (q *EventQueue) Len() int {
	return len(q.queue)
}

// DispatchNext pops the oldest queued event and invokes its subscribers in
// subscription order. It reports whether an event was dispatched.
func (q *EventQueue) DispatchNext() bool {
	if len(q.queue) == 0 {
		return false
	}
	e := q.queue[0]
	copy(q.queue, q.queue[1:])
	q.queue = q.queue[:len(q.queue)-1]
	for _, fn := range q.subs[e] {
		fn()
	}
	return true
}
