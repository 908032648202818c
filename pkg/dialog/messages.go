package dialog

import "math/rand"

// QuickReply is a tappable suggestion rendered by the client under a message.
type QuickReply struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// Frontend command values recognized by the guardrail phase.
const (
	CommandGreeting       = "__greeting__"
	CommandAcceptStrategy = "__accept_strategy__"
	CommandRejectStrategy = "__reject_strategy__"
)

type messageCatalog struct {
	Greeting              string
	AskSentiment          string
	AskTimeVariations     []string
	AskTimePreTimer       string
	CrisisMsg             string
	RestartMsg            string
	StrategyAccepted      string // format args: strategy name, minutes
	StrategyRejectedRetry string
	StrategyRejectedMax   string
	FallbackError         string
	QuickReplies          map[string]string
}

var catalogs = map[string]messageCatalog{
	"es": {
		Greeting:     "Hola, soy Flou, tu asistente Task-Motivation. 😊 Para empezar, ¿por qué no me dices cómo está tu motivación hoy?",
		AskSentiment: "Te escucho. 💜 Antes de empezar, cuéntame: ¿cómo te sientes ahora mismo? Así puedo orientarte mejor.",
		AskTimeVariations: []string{
			"¡Me encanta que tengas eso claro! ⏱ Para armar algo que realmente funcione, **¿cuánto tiempo tienes disponible ahora mismo?**",
			"Entendido. 🕒 Para ajustar la estrategia a tu agenda, **¿de cuánto tiempo dispones en este momento?**",
			"¡Bien! Vamos a aterrizar esto. ⏳ **¿Cuántos minutos tienes libres para dedicarle a esto ahora?**",
			"Perfecto. Para ser realistas con el plan, **¿con cuánto tiempo cuentas ahora mismo?**",
		},
		AskTimePreTimer:       "¡Me parece excelente! 🚀 Una última cosa para configurar tu sesión: **¿Cuánto tiempo tienes disponible ahora mismo?**",
		CrisisMsg:             "Escucho que estás en un momento muy difícil. Por favor, busca apoyo inmediato: **llama al 4141** (línea gratuita y confidencial del MINSAL). No estás sola/o.",
		RestartMsg:            "¡Perfecto! Empecemos de nuevo. 🔄\n\n¿Cómo está tu motivación hoy?",
		StrategyAccepted:      "¡Genial! 🎯 Vamos con **%s**. Tu timer de %d minutos ya está corriendo. ¡Tú puedes! 💪",
		StrategyRejectedRetry: "Sin problema, busquemos otra opción. 🔄 ¿Hay algo en particular que te gustaría probar diferente?",
		StrategyRejectedMax:   "Entiendo que no hemos encontrado la estrategia ideal todavía. 🧘 A veces lo mejor es tomarse un momento para relajarse antes de volver al trabajo. Te recomiendo probar un ejercicio de bienestar. ¡Después volvemos con todo! 💜",
		FallbackError:         "Disculpa, tuve un momento de desconexión. 🌀 ¿Puedes repetirme lo último?",
		QuickReplies: map[string]string{
			"bored":          "😑 Aburrido/a",
			"frustrated":     "😤 Frustrado/a",
			"anxious":        "😰 Ansioso/a",
			"distracted":     "🌀 Distraído/a",
			"bored_val":      "Me siento aburrido",
			"frustrated_val": "Me siento frustrado",
			"anxious_val":    "Tengo ansiedad",
			"distracted_val": "Estoy distraído",
			"surprise_me":    "🔄 Sorpréndeme",
			"short_time":     "⏱ Tengo poco tiempo",
			"relaxed":        "🧘 Algo relajado",
			"surprise_val":   "Quiero otra estrategia diferente",
			"short_val":      "Dame algo rápido de hacer",
			"relaxed_val":    "Quiero algo tranquilo",
			"start":          "✅ Empezar",
			"other_option":   "🔄 Otra opción",
			"10_min":         "⚡ 10 min",
			"15_min":         "⏰ 15 min",
			"25_min":         "🕐 25 min",
			"45_min":         "🕑 45 min",
			"10_min_val":     "Tengo 10 minutos",
			"15_min_val":     "Tengo 15 minutos",
			"25_min_val":     "Tengo 25 minutos",
			"45_min_val":     "Tengo 45 minutos",
		},
	},
	"en": {
		Greeting:     "Hi, I'm Flou, your Task-Motivation assistant. 😊 To start, why don't you tell me how your motivation is today?",
		AskSentiment: "I hear you. 💜 Before we start, tell me: how are you feeling right now? That helps me guide you better.",
		AskTimeVariations: []string{
			"Love that you're clear on that! ⏱ To build something that really works, **how much time do you have available right now?**",
			"Got it. 🕒 To fit the strategy to your schedule, **how much time can you spare at this moment?**",
			"Great! Let's make this actionable. ⏳ **How many minutes do you have free to dedicate to this now?**",
			"Perfect. To be realistic with the plan, **how much time are you working with right now?**",
		},
		AskTimePreTimer:       "Sounds excellent! 🚀 One last thing to set up your session: **How much time do you have available right now?**",
		CrisisMsg:             "I hear you're going through a very difficult time. Please seek immediate support. You are not alone.",
		RestartMsg:            "Perfect! Let's start over. 🔄\n\nHow is your motivation today?",
		StrategyAccepted:      "Awesome! 🎯 Let's go with **%s**. Your %d minute timer is running. You got this! 💪",
		StrategyRejectedRetry: "No problem, let's find another option. 🔄 Is there anything specific you'd like to try differently?",
		StrategyRejectedMax:   "I understand we haven't found the ideal strategy yet. 🧘 Sometimes the best thing is to take a moment to relax before getting back to work. I recommend trying a wellness exercise. We'll come back stronger! 💜",
		FallbackError:         "Sorry, I had a disconnection moment. 🌀 Can you repeat that last part?",
		QuickReplies: map[string]string{
			"bored":          "😑 Bored",
			"frustrated":     "😤 Frustrated",
			"anxious":        "😰 Anxious",
			"distracted":     "🌀 Distracted",
			"bored_val":      "I feel bored",
			"frustrated_val": "I feel frustrated",
			"anxious_val":    "I feel anxious",
			"distracted_val": "I am distracted",
			"surprise_me":    "🔄 Surprise me",
			"short_time":     "⏱ Short on time",
			"relaxed":        "🧘 Something relaxed",
			"surprise_val":   "I want a different strategy",
			"short_val":      "Give me something quick",
			"relaxed_val":    "I want something chill",
			"start":          "✅ Start",
			"other_option":   "🔄 Other option",
			"10_min":         "⚡ 10 min",
			"15_min":         "⏰ 15 min",
			"25_min":         "🕐 25 min",
			"45_min":         "🕑 45 min",
			"10_min_val":     "I have 10 minutes",
			"15_min_val":     "I have 15 minutes",
			"25_min_val":     "I have 25 minutes",
			"45_min_val":     "I have 45 minutes",
		},
	},
}

// Greeting returns the opening message and its quick replies for a locale.
// Used when a session is created so the first AI message matches the engine's
// own greeting.
func Greeting(locale string) (string, []QuickReply) {
	return catalogFor(locale).Greeting, greetingQuickReplies(locale)
}

func catalogFor(locale string) messageCatalog {
	if c, ok := catalogs[locale]; ok {
		return c
	}
	return catalogs["es"]
}

func askTimeMessage(locale string) string {
	c := catalogFor(locale)
	return c.AskTimeVariations[rand.Intn(len(c.AskTimeVariations))]
}

func greetingQuickReplies(locale string) []QuickReply {
	qr := catalogFor(locale).QuickReplies
	return []QuickReply{
		{Label: qr["bored"], Value: qr["bored_val"]},
		{Label: qr["frustrated"], Value: qr["frustrated_val"]},
		{Label: qr["anxious"], Value: qr["anxious_val"]},
		{Label: qr["distracted"], Value: qr["distracted_val"]},
	}
}

func rejectionQuickReplies(locale string) []QuickReply {
	qr := catalogFor(locale).QuickReplies
	return []QuickReply{
		{Label: qr["surprise_me"], Value: qr["surprise_val"]},
		{Label: qr["short_time"], Value: qr["short_val"]},
		{Label: qr["relaxed"], Value: qr["relaxed_val"]},
	}
}

func timeQuickReplies(locale string) []QuickReply {
	qr := catalogFor(locale).QuickReplies
	return []QuickReply{
		{Label: qr["10_min"], Value: qr["10_min_val"], Icon: "⚡", Color: "mint"},
		{Label: qr["15_min"], Value: qr["15_min_val"], Icon: "⏰", Color: "sky"},
		{Label: qr["25_min"], Value: qr["25_min_val"], Icon: "🕐", Color: "lavender"},
		{Label: qr["45_min"], Value: qr["45_min_val"], Icon: "🕑", Color: "lavender"},
	}
}

func validationQuickReplies(locale string) []QuickReply {
	qr := catalogFor(locale).QuickReplies
	return []QuickReply{
		{Label: qr["start"], Value: CommandAcceptStrategy, Icon: "✅", Color: "mint"},
		{Label: qr["other_option"], Value: CommandRejectStrategy, Icon: "🔄", Color: "sky"},
	}
}
