package main

import (
	"context"
	"fmt"

	"flou-backend/pkg/dialog"
	"flou-backend/pkg/sessionstate"

	"github.com/fatih/color"
)

// Scripted walkthrough of the dialog engine without a database or model.
// Useful for checking the conversational flow end to end from a terminal.
func main() {
	color.Cyan("=== Flou Dialog Engine Simulation ===")
	color.Yellow("Running offline: heuristic slot extraction, template replies\n")

	engine := dialog.NewEngine(nil, nil, nil)
	state := sessionstate.New()
	var history []dialog.HistoryEntry

	script := []string{
		"__greeting__",
		"hola, tengo que entregar un ensayo y no he empezado",
		"me siento súper frustrado, es para esta semana",
		"estoy recién partiendo, puras ideas sueltas",
		"tengo como 25 minutos ahora",
		"__reject_strategy__",
		"__accept_strategy__",
	}

	ctx := context.Background()
	for _, message := range script {
		color.White("\nUSER: %s", message)

		result := engine.HandleUserTurn(ctx, dialog.TurnInput{
			Message: message,
			Locale:  "es",
			State:   state,
			History: history,
		})
		state = result.State

		color.Green("FLOU [%s]:", result.Decision)
		fmt.Println(result.Reply)
		if len(result.QuickReplies) > 0 {
			color.Yellow("Quick replies:")
			for _, qr := range result.QuickReplies {
				fmt.Printf("  - %s\n", qr.Label)
			}
		}
		if result.Crisis {
			color.Red("⚠ crisis flagged (confidence %.2f)", result.CrisisConfidence)
		}

		history = append(history,
			dialog.HistoryEntry{Sender: "user", Content: message},
			dialog.HistoryEntry{Sender: "ai", Content: result.Reply},
		)
	}

	parsed := dialog.ParseSession(state)
	color.Cyan("\n=== Final session state ===")
	fmt.Printf("iteration: %d\n", parsed.Iteration)
	fmt.Printf("phase:     %s\n", parsed.ConversationPhase)
	fmt.Printf("slots:     %+v\n", parsed.Slots)
}