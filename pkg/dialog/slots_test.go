package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessPlazo(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"today", "lo tengo que entregar hoy", "hoy"},
		{"tomorrow", "es para mañana en la mañana", "<24h"},
		{"this week", "tengo hasta esta semana", "esta_semana"},
		{"long term", "es para el próximo mes", ">1_semana"},
		{"unknown", "no sé bien cuándo", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, guessPlazo(tt.text))
		})
	}
}

func TestGuessTipoTarea(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"essay", "tengo que escribir un ensayo de historia", "ensayo"},
		{"presentation", "me toca una presentación con slides", "presentacion"},
		{"problems", "una guía de ejercicios de cálculo", "resolver_problemas"},
		{"reading", "tengo que leer un paper largo", "lectura_tecnica"},
		{"bugfix", "hay un bug en mi código que no encuentro", "bugfix"},
		{"unknown", "cosas de la universidad", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, guessTipoTarea(tt.text))
		})
	}
}

func TestGuessSentimiento(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"frustration", "estoy super frustrado con esto", "frustracion"},
		{"anxiety", "me da ansiedad no terminar a tiempo", "ansiedad_error"},
		{"boredom", "me da una lata infinita estudiar esto", "aburrimiento"},
		{"rumination", "estoy dando vueltas y no me concentro", "dispersion_rumiacion"},
		{"low efficacy", "siento que no soy capaz de hacerlo", "baja_autoeficacia"},
		{"neutral", "tengo que avanzar el informe", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, guessSentimiento(tt.text))
		})
	}
}

func TestGuessTiempoBloque(t *testing.T) {
	assert.Equal(t, 25, guessTiempoBloque("tengo 25 minutos libres"))
	assert.Equal(t, 10, guessTiempoBloque("solo diez minutos"))
	assert.Equal(t, 0, guessTiempoBloque("no tengo idea"))
}

func TestExtractSlotsHeuristicKeepsEarlierValues(t *testing.T) {
	current := Slots{Sentimiento: "frustracion", TipoTarea: "ensayo"}

	result := extractSlotsHeuristic("es para hoy y estoy revisando los últimos detalles", current)

	assert.Equal(t, "frustracion", result.Sentimiento)
	assert.Equal(t, "ensayo", result.TipoTarea)
	assert.Equal(t, "hoy", result.Plazo)
	assert.Equal(t, "revision", result.Fase)
}
