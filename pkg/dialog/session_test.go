package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flou-backend/pkg/sessionstate"
)

func TestParseSessionFromEmptyState(t *testing.T) {
	session := ParseSession(sessionstate.New())

	assert.Equal(t, 0, session.Iteration)
	assert.Equal(t, PhaseInitial, session.ConversationPhase)
	assert.False(t, session.StrategyGiven)
	assert.Empty(t, session.Slots.Sentimiento)
}

func TestParseSessionFromNilState(t *testing.T) {
	session := ParseSession(nil)

	require.NotNil(t, session)
	assert.Equal(t, PhaseInitial, session.ConversationPhase)
	assert.NotNil(t, session.ToState())
}

func TestSessionRoundTrip(t *testing.T) {
	state := sessionstate.New()
	state.SetIteration(4)
	state.SetPhase(PhaseExploration)
	state["strategy_given"] = true
	state["last_strategy"] = "borrador_feo"
	state[sessionstate.KeySlots] = map[string]any{
		"sentimiento":   "frustracion",
		"tipo_tarea":    "ensayo",
		"plazo":         "hoy",
		"fase":          "ejecucion",
		"tiempo_bloque": float64(25),
	}
	state["metadata"] = map[string]any{"greeted": true}

	session := ParseSession(state)

	assert.Equal(t, 4, session.Iteration)
	assert.Equal(t, PhaseExploration, session.ConversationPhase)
	assert.True(t, session.StrategyGiven)
	assert.Equal(t, "borrador_feo", session.LastStrategy)
	assert.Equal(t, "frustracion", session.Slots.Sentimiento)
	assert.Equal(t, 25, session.Slots.TiempoBloque)
	assert.True(t, session.metaBool("greeted"))

	out := session.ToState()
	assert.Equal(t, 4, out.Iteration())
	assert.Equal(t, PhaseExploration, out.Phase())
	assert.Equal(t, "borrador_feo", out["last_strategy"])
}

func TestSessionPreservesUnknownKeys(t *testing.T) {
	state := sessionstate.New()
	state["experiment_flags"] = map[string]any{"variant": "b"}
	state["client_version"] = "2.3.1"

	session := ParseSession(state)
	session.Iteration = 1
	session.Slots.Sentimiento = "aburrimiento"

	out := session.ToState()

	assert.Equal(t, "2.3.1", out["client_version"])
	flags, ok := out["experiment_flags"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b", flags["variant"])
}

func TestSessionReset(t *testing.T) {
	state := sessionstate.New()
	state.SetIteration(7)
	state["strategy_given"] = true
	state["last_strategy"] = "micro_meta"
	state["metadata"] = map[string]any{"strategy_rejections": float64(1)}

	session := ParseSession(state)
	session.Reset()

	assert.Equal(t, 0, session.Iteration)
	assert.Empty(t, session.LastStrategy)
	assert.False(t, session.StrategyGiven)
	assert.Equal(t, 0, session.metaInt("strategy_rejections"))

	out := session.ToState()
	assert.Equal(t, 0, out.Iteration())
	_, hasLast := out["last_strategy"]
	assert.False(t, hasLast)
}

func TestMetadataAccessorsTolerateJSONTypes(t *testing.T) {
	session := ParseSession(sessionstate.New())
	session.Metadata = map[string]any{
		"strategy_rejections": float64(2),
		"rejected_strategies": []any{"lluvia_sucia", "borrador_feo"},
		"greeted":             true,
	}

	assert.Equal(t, 2, session.metaInt("strategy_rejections"))
	assert.Equal(t, []string{"lluvia_sucia", "borrador_feo"}, session.metaStrings("rejected_strategies"))
	assert.True(t, session.metaBool("greeted"))
	assert.Equal(t, 0, session.metaInt("missing"))
	assert.Nil(t, session.metaStrings("missing"))
}
