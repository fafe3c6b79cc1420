package reflex

import (
	"encoding/json"
	"fmt"
)

// replayStep is a single action in a replay script.
type replayStep struct {
	Action string `json:"action"`
	Event  string `json:"event,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`
}

// replayScript is the top-level JSON structure of a replay script.
type replayScript struct {
	Steps []replayStep `json:"steps"`
}

// Replay sequences scripted interaction events across ticks, for demos and
// automated interaction tests. Load one from JSON and call Step once per
// tick with the event queue that feeds the behaviors under test:
//
//	{"steps": [
//	  {"action": "emit", "event": "hover-enter"},
//	  {"action": "wait", "ticks": 30},
//	  {"action": "emit", "event": "trigger-down"}
//	]}
//
// A step executes only once the queue has drained, so each emitted event is
// fully dispatched before the script moves on.
type Replay struct {
	steps     []replayStep
	cursor    int
	waitCount int
	done      bool
}

// LoadReplay parses and validates a JSON replay script. Every step must name
// a known action, "emit" steps a known event, and "wait" steps a positive
// tick count.
func LoadReplay(jsonData []byte) (*Replay, error) {
	var script replayScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("reflex: parse replay script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("reflex: parse replay script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "emit":
			if _, ok := parseEventType(st.Event); !ok {
				return nil, fmt.Errorf("reflex: parse replay script: step %d: unknown event %q", i, st.Event)
			}
		case "wait":
			if st.Ticks <= 0 {
				return nil, fmt.Errorf("reflex: parse replay script: step %d: wait needs a positive tick count", i)
			}
		default:
			return nil, fmt.Errorf("reflex: parse replay script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Replay{steps: script.Steps}, nil
}

// Step advances the script by at most one action. Call it once per tick,
// after the host has dispatched pending queue events for the tick.
func (r *Replay) Step(q *EventQueue) {
	if r.done {
		return
	}
	if q.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}
	st := r.steps[r.cursor]
	r.cursor++
	switch st.Action {
	case "emit":
		if e, ok := parseEventType(st.Event); ok {
			q.Push(e)
		}
	case "wait":
		r.waitCount = st.Ticks
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 && q.Len() == 0 {
		r.done = true
	}
}

// Done reports whether every step has run and the last emitted event has
// been dispatched.
func (r *Replay) Done() bool {
	return r.done
}

// Reset rewinds the script to its first step so it can run again.
func (r *Replay) Reset() {
	r.cursor, r.waitCount, r.done = 0, 0, false
}

// parseEventType resolves an event name as spelled in replay scripts and in
// EventType.String output.
func parseEventType(name string) (EventType, bool) {
	for e := EventType(0); e < eventTypeCount; e++ {
		if e.String() == name {
			return e, true
		}
	}
	return 0, false
}
