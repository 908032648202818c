package main

import (
	"flou-backend/internal/model"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedEducationalCards loads the psychoeducational catalog shown in the info
// tab, in both languages. Card ids are stable so re-running updates nothing.
func SeedEducationalCards(db *gorm.DB) {
	color.Cyan("🌱 Seeding Educational Cards...")

	cards := []model.EducationalCard{
		{
			Id: "que_es_procrastinar", Language: "es",
			Title:       "¿Qué es procrastinar?",
			Category:    "fundamentos",
			Description: "Procrastinar no es flojera: es una respuesta emocional.",
			Content:     "Postergar una tarea suele ser una forma de regular emociones incómodas como la ansiedad, el aburrimiento o el miedo a fallar. Entender qué sientes frente a la tarea es el primer paso para cambiar el patrón.",
			Icon:        strPtr("🧠"), Color: strPtr("#7C6FF0"), SortOrder: 1,
		},
		{
			Id: "ciclo_culpa", Language: "es",
			Title:       "El ciclo de la culpa",
			Category:    "fundamentos",
			Description: "Postergar, sentir culpa y volver a postergar se alimentan entre sí.",
			Content:     "Cuando postergas aparece alivio inmediato, luego culpa, y la culpa hace la tarea aún más aversiva. Romper el ciclo no se logra con fuerza de voluntad sino bajando el costo emocional de empezar: bloques cortos, metas pequeñas, cero autocastigo.",
			Icon:        strPtr("🔄"), Color: strPtr("#F0A86F"), SortOrder: 2,
		},
		{
			Id: "empezar_pequeno", Language: "es",
			Title:       "Empieza ridículamente pequeño",
			Category:    "estrategias",
			Description: "La meta no es terminar, es empezar.",
			Content:     "El cerebro sobreestima el costo de las tareas grandes. Si defines un primer paso tan pequeño que da casi vergüenza (abrir el documento, escribir una línea), la fricción inicial cae y muchas veces la inercia hace el resto.",
			Icon:        strPtr("🌱"), Color: strPtr("#6FD98B"), SortOrder: 3,
		},
		{
			Id: "descanso_util", Language: "es",
			Title:       "Descansar también es avanzar",
			Category:    "autocuidado",
			Description: "El descanso planificado no es tiempo perdido.",
			Content:     "Estudiar con el estanque vacío multiplica la procrastinación. Dormir, moverse y desconectarse en horarios definidos mejora la concentración de los bloques que sí dedicas a estudiar.",
			Icon:        strPtr("😴"), Color: strPtr("#6FB8F0"), SortOrder: 4,
		},
		{
			Id: "que_es_procrastinar", Language: "en",
			Title:       "What is procrastination?",
			Category:    "fundamentos",
			Description: "Procrastination is not laziness: it is an emotional response.",
			Content:     "Putting off a task is usually a way of regulating uncomfortable emotions such as anxiety, boredom or fear of failure. Understanding what you feel about the task is the first step to changing the pattern.",
			Icon:        strPtr("🧠"), Color: strPtr("#7C6FF0"), SortOrder: 1,
		},
		{
			Id: "ciclo_culpa", Language: "en",
			Title:       "The guilt cycle",
			Category:    "fundamentos",
			Description: "Postponing, feeling guilty and postponing again feed each other.",
			Content:     "When you postpone, immediate relief appears, then guilt, and guilt makes the task even more aversive. Breaking the cycle is not about willpower but about lowering the emotional cost of starting: short blocks, small goals, no self-punishment.",
			Icon:        strPtr("🔄"), Color: strPtr("#F0A86F"), SortOrder: 2,
		},
		{
			Id: "empezar_pequeno", Language: "en",
			Title:       "Start ridiculously small",
			Category:    "estrategias",
			Description: "The goal is not to finish, it is to start.",
			Content:     "The brain overestimates the cost of big tasks. If you define a first step so small it is almost embarrassing (opening the document, writing one line), the initial friction drops and momentum often does the rest.",
			Icon:        strPtr("🌱"), Color: strPtr("#6FD98B"), SortOrder: 3,
		},
	}

	for _, c := range cards {
		var existing model.EducationalCard
		err := db.Where("id = ? AND language = ?", c.Id, c.Language).First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			color.Red("Error creating card '%s' [%s]: %v", c.Id, c.Language, err)
		} else {
			color.Green("Created card: %s [%s]", c.Id, c.Language)
		}
	}
}