package dialog

import (
	"context"
	"fmt"
	"strings"

	"flou-backend/internal/pkg/logger"
	"flou-backend/pkg/llm"
	"flou-backend/pkg/sessionstate"
)

const logModule = "dialog_engine"

// Decision labels recorded per turn for later analysis.
const (
	DecisionGreeting          = "greeting"
	DecisionCrisis            = "crisis_detected"
	DecisionRestart           = "session_restart"
	DecisionAskSentiment      = "ask_sentiment"
	DecisionAskTime           = "ask_time"
	DecisionStrategyProposed  = "strategy_proposed"
	DecisionStrategyAccepted  = "strategy_accepted"
	DecisionStrategyRetry     = "strategy_rejected_retry"
	DecisionStrategyExhausted = "strategy_rejected_max"
	DecisionFreeConversation  = "free_conversation"
)

// TurnInput carries everything the engine needs to process one user message.
type TurnInput struct {
	Message string
	Locale  string
	State   sessionstate.State
	History []HistoryEntry
}

// TurnResult is the engine's answer for a turn. State is the updated
// continuity document to persist; Metadata is attached to the AI message
// (timer config, redirects, strategy payloads).
type TurnResult struct {
	Reply            string
	State            sessionstate.State
	QuickReplies     []QuickReply
	Metadata         map[string]any
	Crisis           bool
	CrisisConfidence float64
	Decision         string
}

// Engine runs the coaching conversation: guardrail commands, crisis
// screening, slot filling and strategy selection. The model and the semantic
// retriever are optional; without them the engine degrades to its rule-based
// and template behavior.
type Engine struct {
	llm       llm.LLMProvider
	retriever Retriever
	log       logger.ILogger
}

func NewEngine(provider llm.LLMProvider, retriever Retriever, log logger.ILogger) *Engine {
	return &Engine{llm: provider, retriever: retriever, log: log}
}

func (e *Engine) logWarn(message string, details map[string]interface{}) {
	if e.log != nil {
		e.log.Warn(logModule, message, details)
	}
}

// HandleUserTurn processes one message and always produces a reply; model
// failures degrade to canned responses instead of erroring the turn.
func (e *Engine) HandleUserTurn(ctx context.Context, in TurnInput) TurnResult {
	locale := in.Locale
	if locale != "en" {
		locale = "es"
	}
	c := catalogFor(locale)
	session := ParseSession(in.State)
	message := strings.TrimSpace(in.Message)

	switch message {
	case CommandGreeting:
		return e.handleGreeting(session, locale)
	case CommandAcceptStrategy:
		return e.handleAccept(session, locale)
	case CommandRejectStrategy:
		return e.handleReject(session, locale)
	}

	if isCrisis, confidence := e.detectCrisis(ctx, message); isCrisis {
		res := e.finish(session, c.CrisisMsg, nil, nil, DecisionCrisis)
		res.Crisis = true
		res.CrisisConfidence = confidence
		return res
	}

	lower := strings.ToLower(message)
	if lower == "reiniciar" || lower == "reset" {
		session.Reset()
		session.Metadata["greeted"] = true
		return e.finish(session, c.RestartMsg, greetingQuickReplies(locale), nil, DecisionRestart)
	}

	if len(in.History) == 0 && !session.metaBool("greeted") {
		return e.handleGreeting(session, locale)
	}

	session.Slots = e.extractSlotsWithLLM(ctx, message, session.Slots)
	session.Iteration++
	if session.ConversationPhase == PhaseInitial {
		session.ConversationPhase = PhaseExploration
	}

	slots := session.Slots
	if slots.Sentimiento == "" && session.Iteration <= 3 {
		return e.finish(session, c.AskSentiment, greetingQuickReplies(locale), nil, DecisionAskSentiment)
	}

	contextKnown := slots.Sentimiento != "" && slots.TipoTarea != "" && slots.Plazo != "" && slots.Fase != ""

	if contextKnown && slots.TiempoBloque == 0 && !session.StrategyGiven {
		return e.finish(session, askTimeMessage(locale), timeQuickReplies(locale), nil, DecisionAskTime)
	}

	if contextKnown && slots.TiempoBloque > 0 && !session.StrategyGiven {
		return e.handleStrategyTurn(ctx, session, locale, message, in.History)
	}

	return e.handleFreeConversation(ctx, session, locale, message, in.History)
}

func (e *Engine) handleGreeting(session *Session, locale string) TurnResult {
	c := catalogFor(locale)
	session.Metadata["greeted"] = true
	return e.finish(session, c.Greeting, greetingQuickReplies(locale), nil, DecisionGreeting)
}

func (e *Engine) handleAccept(session *Session, locale string) TurnResult {
	c := catalogFor(locale)

	name := session.LastStrategy
	if s, ok := StrategyByID(session.LastStrategy); ok {
		name = s.Name(locale)
	}
	if name == "" {
		// Accept without a pending proposal; nothing to start a timer for.
		return e.finish(session, c.FallbackError, nil, nil, DecisionFreeConversation)
	}

	minutes := session.Slots.TiempoBloque
	if minutes == 0 {
		minutes = 15
	}

	session.StrategyGiven = true
	session.ConversationPhase = PhaseIntervention

	steps := session.metaStrings("last_strategy_steps")
	if steps == nil {
		steps = []string{}
	}

	reply := fmt.Sprintf(c.StrategyAccepted, name, minutes)
	meta := map[string]any{
		"strategy":       name,
		"strategy_steps": steps,
		"timer_config": map[string]any{
			"duration_minutes": minutes,
			"label":            name,
		},
	}
	return e.finish(session, reply, nil, meta, DecisionStrategyAccepted)
}

func (e *Engine) handleReject(session *Session, locale string) TurnResult {
	c := catalogFor(locale)

	rejections := session.metaInt("strategy_rejections") + 1
	if rejections >= 2 {
		session.Metadata["strategy_rejections"] = 0
		session.Metadata["rejected_strategies"] = []string{}
		session.StrategyGiven = false
		session.LastStrategy = ""
		meta := map[string]any{"redirect": "wellness"}
		return e.finish(session, c.StrategyRejectedMax, nil, meta, DecisionStrategyExhausted)
	}

	session.Metadata["strategy_rejections"] = rejections
	if session.LastStrategy != "" {
		rejected := session.metaStrings("rejected_strategies")
		session.Metadata["rejected_strategies"] = append(rejected, session.LastStrategy)
	}
	session.StrategyGiven = false
	session.LastStrategy = ""
	return e.finish(session, c.StrategyRejectedRetry, rejectionQuickReplies(locale), nil, DecisionStrategyRetry)
}

func (e *Engine) handleStrategyTurn(ctx context.Context, session *Session, locale, message string, history []HistoryEntry) TurnResult {
	rejected := session.metaStrings("rejected_strategies")
	strategy, q2, q3, enfoque := e.chooseStrategy(ctx, message, session.Slots, rejected)
	steps := strategy.Steps(locale)

	session.LastStrategy = strategy.ID
	session.StrategyGiven = true
	session.ConversationPhase = PhaseIntervention
	session.Metadata["Q2"] = q2
	session.Metadata["Q3"] = q3
	session.Metadata["enfoque"] = enfoque
	session.Metadata["last_strategy_steps"] = steps

	reply := ""
	if e.llm != nil {
		prompt := buildStrategyPrompt(locale, strategy, session.Slots)
		generated, err := e.llm.Chat(ctx, buildLLMMessages(prompt, history, message),
			llm.WithTemperature(0.7), llm.WithMaxTokens(300))
		if err != nil {
			e.logWarn("strategy reply generation failed, using template", map[string]interface{}{
				"error":    err.Error(),
				"strategy": strategy.ID,
			})
		} else {
			reply = strings.TrimSpace(generated)
		}
	}
	if reply == "" {
		reply = templateStrategyReply(locale, strategy)
	}

	meta := map[string]any{
		"strategy":       strategy.Name(locale),
		"strategy_steps": steps,
	}
	return e.finish(session, reply, validationQuickReplies(locale), meta, DecisionStrategyProposed)
}

func (e *Engine) handleFreeConversation(ctx context.Context, session *Session, locale, message string, history []HistoryEntry) TurnResult {
	c := catalogFor(locale)

	reply := ""
	if e.llm != nil {
		prompt := buildFreeConversationPrompt(locale, session)
		generated, err := e.llm.Chat(ctx, buildLLMMessages(prompt, history, message),
			llm.WithTemperature(0.7), llm.WithMaxTokens(300))
		if err != nil {
			e.logWarn("free conversation reply failed", map[string]interface{}{"error": err.Error()})
		} else {
			reply = strings.TrimSpace(generated)
		}
	}
	if reply == "" {
		reply = c.FallbackError
	}
	return e.finish(session, reply, nil, nil, DecisionFreeConversation)
}

// chooseStrategy applies the rule-based cascade, letting the semantic
// retriever reorder candidates within the hard constraints when available.
func (e *Engine) chooseStrategy(ctx context.Context, query string, slots Slots, rejected []string) (Strategy, string, string, string) {
	q2, q3, enfoque, targetCategory, targetNivel := selectionTargets(slots)
	candidates := filterCandidates(slots, rejected)

	if e.retriever != nil && len(candidates) > 1 {
		ids := make([]string, len(candidates))
		for i, s := range candidates {
			ids[i] = s.ID
		}
		ranked, err := e.retriever.Rank(ctx, query, ids)
		if err != nil {
			e.logWarn("semantic ranking failed, keeping catalog order", map[string]interface{}{"error": err.Error()})
		} else if len(ranked) > 0 {
			candidates = reorderByIDs(candidates, ranked)
		}
	}

	return pickFromCandidates(candidates, targetCategory, targetNivel), q2, q3, enfoque
}

func reorderByIDs(candidates []Strategy, rankedIDs []string) []Strategy {
	byID := make(map[string]Strategy, len(candidates))
	for _, s := range candidates {
		byID[s.ID] = s
	}
	out := make([]Strategy, 0, len(candidates))
	seen := make(map[string]bool, len(rankedIDs))
	for _, id := range rankedIDs {
		if s, ok := byID[id]; ok && !seen[id] {
			out = append(out, s)
			seen[id] = true
		}
	}
	for _, s := range candidates {
		if !seen[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

func templateStrategyReply(locale string, s Strategy) string {
	var b strings.Builder
	if locale == "en" {
		fmt.Fprintf(&b, "I suggest trying **%s**:\n\n", s.Name(locale))
	} else {
		fmt.Fprintf(&b, "Te propongo probar **%s**:\n\n", s.Name(locale))
	}
	for i, step := range s.Steps(locale) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	if locale == "en" {
		b.WriteString("\nWant to give it a go?")
	} else {
		b.WriteString("\n¿Quieres intentarlo?")
	}
	return b.String()
}

func (e *Engine) finish(session *Session, reply string, quickReplies []QuickReply, metadata map[string]any, decision string) TurnResult {
	return TurnResult{
		Reply:        reply,
		State:        session.ToState(),
		QuickReplies: quickReplies,
		Metadata:     metadata,
		Decision:     decision,
	}
}
