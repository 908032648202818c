package sessionstate

import "encoding/json"

// Well-known document keys. Everything else in the document belongs to the
// conversational flow and is carried through untouched.
const (
	KeySlots     = "slots"
	KeyPhase     = "phase"
	KeyIteration = "iteration"
)

// State is the continuity document persisted per chat session. The dialog
// engine writes it at the end of a turn and reads it back at the start of the
// next one. The store treats it as an opaque JSON object: keys it does not
// recognize are preserved verbatim.
type State map[string]any

// New returns the empty-object default.
func New() State {
	return State{}
}

// Slots returns the accumulated slot map, or nil when none has been written.
func (s State) Slots() map[string]any {
	if raw, ok := s[KeySlots]; ok {
		if m, ok := raw.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// SetSlot writes a single slot value, creating the slot map if needed.
func (s State) SetSlot(name string, value any) {
	slots := s.Slots()
	if slots == nil {
		slots = map[string]any{}
		s[KeySlots] = slots
	}
	slots[name] = value
}

// Phase returns the current flow stage tag, or "" when unset. The store never
// validates it against an enumeration.
func (s State) Phase() string {
	if v, ok := s[KeyPhase].(string); ok {
		return v
	}
	return ""
}

func (s State) SetPhase(phase string) {
	s[KeyPhase] = phase
}

// Iteration returns the turn counter. JSON decoding yields float64 for
// numbers, so both representations are accepted.
func (s State) Iteration() int {
	switch v := s[KeyIteration].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}

func (s State) SetIteration(n int) {
	s[KeyIteration] = n
}

// IsEmpty reports whether the document is the `{}` default.
func (s State) IsEmpty() bool {
	return len(s) == 0
}

// Clone returns a deep copy produced via a JSON round trip, so callers can
// mutate a working copy without touching the loaded document.
func (s State) Clone() State {
	if s == nil {
		return New()
	}
	raw, err := json.Marshal(s)
	if err != nil {
		// Non-serializable values are rejected at Save time; fall back to a
		// shallow copy here.
		out := make(State, len(s))
		for k, v := range s {
			out[k] = v
		}
		return out
	}
	var out State
	if err := json.Unmarshal(raw, &out); err != nil {
		out = New()
	}
	if out == nil {
		out = New()
	}
	return out
}
