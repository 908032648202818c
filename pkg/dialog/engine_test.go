package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flou-backend/pkg/llm"
	"flou-backend/pkg/sessionstate"
)

// stubLLM returns a fixed reply or error for every call.
type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func readySlotsState(tiempo int) sessionstate.State {
	state := sessionstate.New()
	state["metadata"] = map[string]any{"greeted": true}
	slots := map[string]any{
		"sentimiento": "frustracion",
		"tipo_tarea":  "ensayo",
		"plazo":       ">1_semana",
		"fase":        "ideacion",
	}
	if tiempo > 0 {
		slots["tiempo_bloque"] = tiempo
	}
	state[sessionstate.KeySlots] = slots
	return state
}

func someHistory() []HistoryEntry {
	return []HistoryEntry{
		{Sender: "user", Content: "hola"},
		{Sender: "ai", Content: "¡Hola! ¿Cómo va tu motivación?"},
	}
}

func TestHandleUserTurnGreetingCommand(t *testing.T) {
	engine := NewEngine(nil, nil, nil)

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: CommandGreeting,
		State:   sessionstate.New(),
	})

	assert.Equal(t, DecisionGreeting, res.Decision)
	assert.Equal(t, catalogs["es"].Greeting, res.Reply)
	assert.Len(t, res.QuickReplies, 4)

	session := ParseSession(res.State)
	assert.True(t, session.metaBool("greeted"))
}

func TestHandleUserTurnGreetsNewSession(t *testing.T) {
	engine := NewEngine(nil, nil, nil)

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "hola",
		State:   sessionstate.New(),
	})

	assert.Equal(t, DecisionGreeting, res.Decision)
}

func TestHandleUserTurnCrisisShortCircuits(t *testing.T) {
	engine := NewEngine(nil, nil, nil)

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "siento que quiero morir",
		State:   readySlotsState(25),
		History: someHistory(),
	})

	assert.True(t, res.Crisis)
	assert.Equal(t, DecisionCrisis, res.Decision)
	assert.Contains(t, res.Reply, "4141")
}

func TestHandleUserTurnRestart(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	state := readySlotsState(25)
	state.SetIteration(5)
	state["strategy_given"] = true

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "reiniciar",
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionRestart, res.Decision)

	session := ParseSession(res.State)
	assert.Equal(t, 0, session.Iteration)
	assert.False(t, session.StrategyGiven)
	assert.Empty(t, session.Slots.Sentimiento)
	assert.True(t, session.metaBool("greeted"))
}

func TestHandleUserTurnAsksForSentiment(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	state := sessionstate.New()
	state["metadata"] = map[string]any{"greeted": true}

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "tengo que avanzar un trabajo",
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionAskSentiment, res.Decision)
	assert.Len(t, res.QuickReplies, 4)

	session := ParseSession(res.State)
	assert.Equal(t, 1, session.Iteration)
}

func TestHandleUserTurnAsksForTime(t *testing.T) {
	engine := NewEngine(nil, nil, nil)

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "sigo igual con el ensayo",
		State:   readySlotsState(0),
		History: someHistory(),
	})

	assert.Equal(t, DecisionAskTime, res.Decision)
	require.Len(t, res.QuickReplies, 4)
	assert.Equal(t, "Tengo 10 minutos", res.QuickReplies[0].Value)
}

func TestHandleUserTurnProposesStrategy(t *testing.T) {
	engine := NewEngine(nil, nil, nil)

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "tengo 25 minutos",
		State:   readySlotsState(25),
		History: someHistory(),
	})

	assert.Equal(t, DecisionStrategyProposed, res.Decision)
	require.Len(t, res.QuickReplies, 2)
	assert.Equal(t, CommandAcceptStrategy, res.QuickReplies[0].Value)
	assert.Equal(t, CommandRejectStrategy, res.QuickReplies[1].Value)

	require.NotNil(t, res.Metadata)
	assert.NotEmpty(t, res.Metadata["strategy"])
	assert.NotEmpty(t, res.Metadata["strategy_steps"])

	session := ParseSession(res.State)
	assert.True(t, session.StrategyGiven)
	assert.NotEmpty(t, session.LastStrategy)
	assert.Equal(t, PhaseIntervention, session.ConversationPhase)
	assert.NotEmpty(t, session.Metadata["Q2"])
	assert.NotEmpty(t, session.Metadata["enfoque"])
}

func TestHandleUserTurnStrategyUsesModelReply(t *testing.T) {
	model := &stubLLM{reply: "Probemos algo entretenido para arrancar."}
	engine := NewEngine(model, nil, nil)

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "tengo 25 minutos",
		State:   readySlotsState(25),
		History: someHistory(),
	})

	assert.Equal(t, DecisionStrategyProposed, res.Decision)
	assert.Equal(t, "Probemos algo entretenido para arrancar.", res.Reply)
}

func TestHandleUserTurnStrategyFallsBackOnModelError(t *testing.T) {
	model := &stubLLM{err: errors.New("upstream timeout")}
	engine := NewEngine(model, nil, nil)

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "tengo 25 minutos",
		State:   readySlotsState(25),
		History: someHistory(),
	})

	assert.Equal(t, DecisionStrategyProposed, res.Decision)
	assert.Contains(t, res.Reply, "1.")
	assert.Contains(t, res.Reply, "¿Quieres intentarlo?")
}

func TestHandleUserTurnAcceptStrategy(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	state := readySlotsState(25)
	state["last_strategy"] = "borrador_feo"
	state["strategy_given"] = true
	state["metadata"] = map[string]any{
		"greeted":             true,
		"last_strategy_steps": []any{"paso uno", "paso dos"},
	}

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: CommandAcceptStrategy,
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionStrategyAccepted, res.Decision)
	assert.Contains(t, res.Reply, "Borrador Feo")
	assert.Contains(t, res.Reply, "25")

	require.NotNil(t, res.Metadata)
	assert.Equal(t, "Borrador Feo", res.Metadata["strategy"])
	assert.Equal(t, []string{"paso uno", "paso dos"}, res.Metadata["strategy_steps"])
	timer, ok := res.Metadata["timer_config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 25, timer["duration_minutes"])
	assert.Equal(t, "Borrador Feo", timer["label"])
}

func TestHandleUserTurnAcceptStrategyDefaultsTimer(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	state := readySlotsState(0)
	state["last_strategy"] = "borrador_feo"
	state["strategy_given"] = true

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: CommandAcceptStrategy,
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionStrategyAccepted, res.Decision)

	require.NotNil(t, res.Metadata)
	assert.Equal(t, []string{}, res.Metadata["strategy_steps"])
	timer, ok := res.Metadata["timer_config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 15, timer["duration_minutes"])
}

func TestHandleUserTurnRejectStrategyFirstTime(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	state := readySlotsState(25)
	state["last_strategy"] = "lluvia_sucia"
	state["strategy_given"] = true

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: CommandRejectStrategy,
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionStrategyRetry, res.Decision)
	assert.Len(t, res.QuickReplies, 3)

	session := ParseSession(res.State)
	assert.False(t, session.StrategyGiven)
	assert.Empty(t, session.LastStrategy)
	assert.Equal(t, 1, session.metaInt("strategy_rejections"))
	assert.Contains(t, session.metaStrings("rejected_strategies"), "lluvia_sucia")
}

func TestHandleUserTurnRejectStrategyRedirectsAfterTwo(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	state := readySlotsState(25)
	state["last_strategy"] = "borrador_feo"
	state["strategy_given"] = true
	state["metadata"] = map[string]any{
		"greeted":             true,
		"strategy_rejections": float64(1),
		"rejected_strategies": []any{"lluvia_sucia"},
	}

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: CommandRejectStrategy,
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionStrategyExhausted, res.Decision)
	require.NotNil(t, res.Metadata)
	assert.Equal(t, "wellness", res.Metadata["redirect"])

	session := ParseSession(res.State)
	assert.Equal(t, 0, session.metaInt("strategy_rejections"))
	assert.Empty(t, session.metaStrings("rejected_strategies"))
}

func TestHandleUserTurnRejectedStrategyNotReproposed(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	state := readySlotsState(25)
	state["metadata"] = map[string]any{
		"greeted":             true,
		"rejected_strategies": []any{"lluvia_sucia"},
	}

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "dame otra idea",
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionStrategyProposed, res.Decision)

	session := ParseSession(res.State)
	assert.NotEqual(t, "lluvia_sucia", session.LastStrategy)
}

func TestHandleUserTurnFreeConversationAfterStrategy(t *testing.T) {
	model := &stubLLM{reply: "¡Vas súper bien, sigue así!"}
	engine := NewEngine(model, nil, nil)
	state := readySlotsState(25)
	state["strategy_given"] = true
	state["last_strategy"] = "micro_meta"

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "ya terminé la primera parte",
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionFreeConversation, res.Decision)
	assert.Equal(t, "¡Vas súper bien, sigue así!", res.Reply)
}

func TestHandleUserTurnFreeConversationFallbackWithoutModel(t *testing.T) {
	engine := NewEngine(nil, nil, nil)
	state := readySlotsState(25)
	state["strategy_given"] = true

	res := engine.HandleUserTurn(context.Background(), TurnInput{
		Message: "ya voy avanzando",
		State:   state,
		History: someHistory(),
	})

	assert.Equal(t, DecisionFreeConversation, res.Decision)
	assert.Equal(t, catalogs["es"].FallbackError, res.Reply)
}

// fixedRetriever returns a preset ranking.
type fixedRetriever struct {
	ranking []string
}

func (f *fixedRetriever) Rank(ctx context.Context, query string, candidateIDs []string) ([]string, error) {
	return f.ranking, nil
}

func TestChooseStrategyHonorsRetrieverWithinTier(t *testing.T) {
	// futuro_yo and lluvia_sucia share category and level for these slots;
	// the retriever decides which of the two wins.
	retriever := &fixedRetriever{ranking: []string{"futuro_yo", "lluvia_sucia"}}
	engine := NewEngine(nil, retriever, nil)

	slots := Slots{
		Sentimiento:  "frustracion",
		TipoTarea:    "ensayo",
		Fase:         "ideacion",
		Plazo:        ">1_semana",
		TiempoBloque: 25,
	}

	strategy, _, _, _ := engine.chooseStrategy(context.Background(), "quiero motivarme", slots, nil)

	assert.Equal(t, "futuro_yo", strategy.ID)
}
