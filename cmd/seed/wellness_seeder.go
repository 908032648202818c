package main

import (
	"encoding/json"

	"flou-backend/internal/model"

	"github.com/fatih/color"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func jsonList(items ...string) datatypes.JSON {
	data, _ := json.Marshal(items)
	return datatypes.JSON(data)
}

// SeedExercises loads the relaxation exercise catalog, one set per energy
// level. Existing (energy_level, language, exercise_type) rows are skipped.
func SeedExercises(db *gorm.DB) {
	color.Cyan("🌱 Seeding Relaxation Exercises...")

	exercises := []model.RelaxationExercise{
		{
			EnergyLevel: "rojo", Language: "es", ExerciseType: "respiracion_478",
			Title:       "Respiración 4-7-8",
			Description: "Una técnica de respiración que calma el sistema nervioso en momentos de mucha tensión.",
			Instructions: jsonList(
				"Siéntate con la espalda recta y cierra los ojos.",
				"Inhala por la nariz contando hasta 4.",
				"Mantén el aire contando hasta 7.",
				"Exhala lentamente por la boca contando hasta 8.",
				"Repite el ciclo 4 veces.",
			),
			DurationSeconds: 120, SortOrder: 1,
		},
		{
			EnergyLevel: "rojo", Language: "es", ExerciseType: "grounding_54321",
			Title:       "Anclaje 5-4-3-2-1",
			Description: "Un ejercicio de atención plena para volver al presente cuando la ansiedad aprieta.",
			Instructions: jsonList(
				"Nombra 5 cosas que puedas ver.",
				"Nombra 4 cosas que puedas tocar.",
				"Nombra 3 sonidos que puedas escuchar.",
				"Nombra 2 olores que puedas percibir.",
				"Nombra 1 sabor presente en tu boca.",
			),
			DurationSeconds: 180, SortOrder: 2,
		},
		{
			EnergyLevel: "ambar", Language: "es", ExerciseType: "pausa_activa",
			Title:       "Pausa activa de escritorio",
			Description: "Estiramientos breves para soltar la tensión acumulada mientras estudias.",
			Instructions: jsonList(
				"Ponte de pie y estira los brazos hacia el techo.",
				"Gira el cuello suavemente hacia cada lado.",
				"Encoge y suelta los hombros 5 veces.",
				"Camina un minuto, lejos de la pantalla.",
			),
			DurationSeconds: 180, SortOrder: 1,
		},
		{
			EnergyLevel: "ambar", Language: "es", ExerciseType: "respiracion_cuadrada",
			Title:       "Respiración cuadrada",
			Description: "Cuatro tiempos iguales para recuperar foco antes de retomar la tarea.",
			Instructions: jsonList(
				"Inhala contando hasta 4.",
				"Mantén el aire contando hasta 4.",
				"Exhala contando hasta 4.",
				"Espera contando hasta 4 y repite 5 ciclos.",
			),
			DurationSeconds: 120, SortOrder: 2,
		},
		{
			EnergyLevel: "verde", Language: "es", ExerciseType: "intencion_breve",
			Title:       "Intención del bloque",
			Description: "Un minuto para ponerle nombre a lo que viene y partir con claridad.",
			Instructions: jsonList(
				"Escribe en una frase qué quieres lograr en el próximo bloque.",
				"Decide cuánto va a durar el bloque.",
				"Silencia las notificaciones y parte.",
			),
			DurationSeconds: 60, SortOrder: 1,
		},
		{
			EnergyLevel: "rojo", Language: "en", ExerciseType: "respiracion_478",
			Title:       "4-7-8 Breathing",
			Description: "A breathing technique that calms the nervous system in high-tension moments.",
			Instructions: jsonList(
				"Sit up straight and close your eyes.",
				"Inhale through your nose for a count of 4.",
				"Hold your breath for a count of 7.",
				"Exhale slowly through your mouth for a count of 8.",
				"Repeat the cycle 4 times.",
			),
			DurationSeconds: 120, SortOrder: 1,
		},
		{
			EnergyLevel: "ambar", Language: "en", ExerciseType: "pausa_activa",
			Title:       "Desk reset break",
			Description: "Short stretches to release the tension that builds up while studying.",
			Instructions: jsonList(
				"Stand up and stretch your arms toward the ceiling.",
				"Gently roll your neck to each side.",
				"Shrug and release your shoulders 5 times.",
				"Walk for one minute, away from the screen.",
			),
			DurationSeconds: 180, SortOrder: 1,
		},
		{
			EnergyLevel: "verde", Language: "en", ExerciseType: "intencion_breve",
			Title:       "Block intention",
			Description: "One minute to name what comes next and start with clarity.",
			Instructions: jsonList(
				"Write in one sentence what you want to achieve in the next block.",
				"Decide how long the block will last.",
				"Silence notifications and start.",
			),
			DurationSeconds: 60, SortOrder: 1,
		},
	}

	for _, e := range exercises {
		var existing model.RelaxationExercise
		err := db.Where("energy_level = ? AND language = ? AND exercise_type = ?",
			e.EnergyLevel, e.Language, e.ExerciseType).First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.Create(&e).Error; err != nil {
			color.Red("Error creating exercise '%s': %v", e.Title, err)
		} else {
			color.Green("Created exercise: %s [%s/%s]", e.Title, e.EnergyLevel, e.Language)
		}
	}
}

// SeedMotivationalMessages loads the rotating motivational catalog.
func SeedMotivationalMessages(db *gorm.DB) {
	color.Cyan("🌱 Seeding Motivational Messages...")

	study := "estudio"
	selfCare := "autocuidado"

	messages := []model.MotivationalMessage{
		{Language: "es", Message: "No necesitas tener todo resuelto hoy. Un paso pequeño también cuenta.", Author: "Flou", Category: &study},
		{Language: "es", Message: "Equivocarse es parte de aprender. Lo que hiciste hoy ya suma.", Author: "Flou", Category: &study},
		{Language: "es", Message: "Tu descanso también es parte del plan. Dormir bien es estudiar mejor.", Author: "Flou", Category: &selfCare},
		{Language: "es", Message: "Compararte con otros no mide tu avance. Compárate con tu yo de ayer.", Author: "Flou", Category: &selfCare},
		{Language: "es", Message: "Un bloque corto y enfocado vale más que una tarde entera de culpa.", Author: "Flou", Category: &study},
		{Language: "en", Message: "You don't need to have it all figured out today. A small step counts too.", Author: "Flou", Category: &study},
		{Language: "en", Message: "Rest is part of the plan. Sleeping well is studying better.", Author: "Flou", Category: &selfCare},
		{Language: "en", Message: "One short, focused block beats a whole afternoon of guilt.", Author: "Flou", Category: &study},
	}

	for _, m := range messages {
		var existing model.MotivationalMessage
		err := db.Where("language = ? AND message = ?", m.Language, m.Message).First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			color.Red("Error creating message: %v", err)
		} else {
			color.Green("Created message [%s]: %.40s...", m.Language, m.Message)
		}
	}
}