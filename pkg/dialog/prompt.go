package dialog

import (
	"fmt"
	"strings"

	"flou-backend/pkg/llm"
)

// HistoryEntry is one prior turn of the conversation, oldest first.
type HistoryEntry struct {
	Sender  string
	Content string
}

const personaES = `Eres Flou, un compañero de bienestar para estudiantes universitarios chilenos.
Tono: cercano, breve y concreto, como un amigo que sabe de técnicas de estudio.
Usas español chileno informal (tuteo) sin exagerar los modismos.
Respuestas de máximo 3 frases salvo que entregues pasos de una estrategia.
Nunca diagnosticas ni das consejo médico. Si detectas angustia seria, sugieres
hablar con la línea de Salud Responde (600 360 7777).`

const personaEN = `You are Flou, a wellbeing companion for university students.
Tone: warm, brief and concrete, like a friend who knows study techniques.
Keep replies to 3 sentences unless you are giving strategy steps.
Never diagnose or give medical advice. If you detect serious distress,
suggest talking to a local helpline.`

func persona(locale string) string {
	if locale == "en" {
		return personaEN
	}
	return personaES
}

// buildStrategyPrompt frames a selected strategy so the model presents it
// naturally, keeping the steps intact.
func buildStrategyPrompt(locale string, s Strategy, slots Slots) string {
	steps := s.Steps(locale)
	var b strings.Builder
	b.WriteString(persona(locale))
	b.WriteString("\n\n")
	if locale == "en" {
		fmt.Fprintf(&b, "The student feels %q working on %q (phase %q, deadline %q).\n", slots.Sentimiento, slots.TipoTarea, slots.Fase, slots.Plazo)
		fmt.Fprintf(&b, "Propose the technique %q in an encouraging way and present these exact steps as a numbered list:\n", s.Name(locale))
	} else {
		fmt.Fprintf(&b, "El estudiante se siente %q trabajando en %q (fase %q, plazo %q).\n", slots.Sentimiento, slots.TipoTarea, slots.Fase, slots.Plazo)
		fmt.Fprintf(&b, "Propón la técnica %q de forma motivadora y presenta estos pasos exactos como lista numerada:\n", s.Name(locale))
	}
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	if locale == "en" {
		b.WriteString("\nClose by asking if they want to try it. Do not invent extra steps.")
	} else {
		b.WriteString("\nCierra preguntando si quiere intentarlo. No inventes pasos extra.")
	}
	return b.String()
}

// buildFreeConversationPrompt is used once a strategy was delivered or when
// the turn does not fit the structured flow.
func buildFreeConversationPrompt(locale string, session *Session) string {
	var b strings.Builder
	b.WriteString(persona(locale))
	b.WriteString("\n\n")
	if session.StrategyGiven && session.LastStrategy != "" {
		if locale == "en" {
			fmt.Fprintf(&b, "The student already accepted the technique %q. Support them while they work: answer doubts, keep them focused, celebrate progress.", session.LastStrategy)
		} else {
			fmt.Fprintf(&b, "El estudiante ya aceptó la técnica %q. Acompáñalo mientras trabaja: resuelve dudas, mantenlo enfocado, celebra avances.", session.LastStrategy)
		}
	} else {
		if locale == "en" {
			b.WriteString("Have a supportive conversation. Gently steer toward understanding what they are working on and how they feel about it.")
		} else {
			b.WriteString("Conversa de forma contenedora. Guía suavemente hacia entender en qué está trabajando y cómo se siente con eso.")
		}
	}
	return b.String()
}

// buildLLMMessages assembles system prompt plus the last turns of history and
// the current message. History is capped so the context stays small.
func buildLLMMessages(systemPrompt string, history []HistoryEntry, userMessage string) []llm.Message {
	const maxHistory = 6

	msgs := []llm.Message{{Role: "system", Content: systemPrompt}}
	start := 0
	if len(history) > maxHistory {
		start = len(history) - maxHistory
	}
	for _, h := range history[start:] {
		role := "user"
		if h.Sender == "ai" || h.Sender == "assistant" {
			role = "assistant"
		}
		msgs = append(msgs, llm.Message{Role: role, Content: h.Content})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: userMessage})
	return msgs
}
