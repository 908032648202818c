package dialog

import (
	"flou-backend/pkg/sessionstate"
)

// Conversation phases tracked in the continuity document.
const (
	PhaseInitial      = "initial"
	PhaseExploration  = "exploration"
	PhaseIntervention = "intervention"
	PhaseClosure      = "closure"
)

// Slots holds what the engine has learned about the user's task so far.
// Empty strings / zero mean "not known yet".
type Slots struct {
	Sentimiento     string `json:"sentimiento,omitempty"`
	SentimientoOtro string `json:"sentimiento_otro,omitempty"`
	TipoTarea       string `json:"tipo_tarea,omitempty"`
	Ramo            string `json:"ramo,omitempty"`
	Plazo           string `json:"plazo,omitempty"`
	Fase            string `json:"fase,omitempty"`
	TiempoBloque    int    `json:"tiempo_bloque,omitempty"`
}

// Session is the typed view the engine works with. It is parsed from the
// stored continuity document and written back after the turn; keys the engine
// does not understand survive the round trip untouched.
type Session struct {
	Iteration         int
	Slots             Slots
	LastStrategy      string
	StrategyGiven     bool
	CurrentVibe       string
	ConversationPhase string
	Metadata          map[string]any

	raw sessionstate.State
}

// ParseSession builds the typed view from a continuity document. A nil or
// empty document yields a fresh session.
func ParseSession(state sessionstate.State) *Session {
	s := &Session{
		ConversationPhase: PhaseInitial,
		Metadata:          map[string]any{},
		raw:               state.Clone(),
	}
	if state == nil {
		s.raw = sessionstate.New()
		return s
	}

	s.Iteration = state.Iteration()

	if phase, ok := state[sessionstate.KeyPhase].(string); ok && phase != "" {
		s.ConversationPhase = phase
	}
	if vibe, ok := state["current_vibe"].(string); ok {
		s.CurrentVibe = vibe
	}
	if last, ok := state["last_strategy"].(string); ok {
		s.LastStrategy = last
	}
	if given, ok := state["strategy_given"].(bool); ok {
		s.StrategyGiven = given
	}
	if meta, ok := state["metadata"].(map[string]any); ok {
		s.Metadata = meta
	}

	if slots, ok := state[sessionstate.KeySlots].(map[string]any); ok {
		s.Slots = Slots{
			Sentimiento:     stringAt(slots, "sentimiento"),
			SentimientoOtro: stringAt(slots, "sentimiento_otro"),
			TipoTarea:       stringAt(slots, "tipo_tarea"),
			Ramo:            stringAt(slots, "ramo"),
			Plazo:           stringAt(slots, "plazo"),
			Fase:            stringAt(slots, "fase"),
			TiempoBloque:    intAt(slots, "tiempo_bloque"),
		}
	}
	return s
}

// Reset wipes the learned context, matching a user-requested restart.
func (s *Session) Reset() {
	s.Iteration = 0
	s.Slots = Slots{}
	s.LastStrategy = ""
	s.StrategyGiven = false
	s.CurrentVibe = ""
	s.ConversationPhase = PhaseInitial
	s.Metadata = map[string]any{}
	s.raw = sessionstate.New()
}

// ToState serializes the session back into a continuity document, preserving
// any keys written by other components.
func (s *Session) ToState() sessionstate.State {
	out := s.raw.Clone()
	if out == nil {
		out = sessionstate.New()
	}

	out.SetIteration(s.Iteration)
	out.SetPhase(s.ConversationPhase)
	out["current_vibe"] = s.CurrentVibe
	out["strategy_given"] = s.StrategyGiven
	if s.LastStrategy != "" {
		out["last_strategy"] = s.LastStrategy
	} else {
		delete(out, "last_strategy")
	}
	out["metadata"] = s.Metadata

	slots := map[string]any{}
	if s.Slots.Sentimiento != "" {
		slots["sentimiento"] = s.Slots.Sentimiento
	}
	if s.Slots.SentimientoOtro != "" {
		slots["sentimiento_otro"] = s.Slots.SentimientoOtro
	}
	if s.Slots.TipoTarea != "" {
		slots["tipo_tarea"] = s.Slots.TipoTarea
	}
	if s.Slots.Ramo != "" {
		slots["ramo"] = s.Slots.Ramo
	}
	if s.Slots.Plazo != "" {
		slots["plazo"] = s.Slots.Plazo
	}
	if s.Slots.Fase != "" {
		slots["fase"] = s.Slots.Fase
	}
	if s.Slots.TiempoBloque > 0 {
		slots["tiempo_bloque"] = s.Slots.TiempoBloque
	}
	out[sessionstate.KeySlots] = slots

	return out
}

// Metadata accessors tolerant of the JSON round trip.

func (s *Session) metaInt(key string) int {
	switch v := s.Metadata[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (s *Session) metaStrings(key string) []string {
	switch v := s.Metadata[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

func (s *Session) metaBool(key string) bool {
	b, _ := s.Metadata[key].(bool)
	return b
}

func stringAt(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func intAt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
