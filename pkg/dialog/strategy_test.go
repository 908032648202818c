package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferQ2Q3(t *testing.T) {
	tests := []struct {
		name            string
		slots           Slots
		expectedQ2      string
		expectedQ3      string
		expectedEnfoque string
	}{
		{
			name:            "revision phase goes vigilant",
			slots:           Slots{TipoTarea: "ensayo", Fase: "revision", Plazo: "esta_semana"},
			expectedQ2:      "B",
			expectedQ3:      "bajar",
			expectedEnfoque: "prevencion_vigilant",
		},
		{
			name:            "close deadline goes vigilant",
			slots:           Slots{TipoTarea: "coding", Fase: "ejecucion", Plazo: "hoy"},
			expectedQ2:      "B",
			expectedQ3:      "bajar",
			expectedEnfoque: "prevencion_vigilant",
		},
		{
			name:            "ideation goes promotion",
			slots:           Slots{TipoTarea: "esquema", Fase: "ideacion", Plazo: ">1_semana"},
			expectedQ2:      "A",
			expectedQ3:      "subir",
			expectedEnfoque: "promocion_eager",
		},
		{
			name:            "vigilant task type wins over execution phase",
			slots:           Slots{TipoTarea: "proofreading", Fase: "ejecucion", Plazo: "esta_semana"},
			expectedQ2:      "B",
			expectedQ3:      "bajar",
			expectedEnfoque: "prevencion_vigilant",
		},
		{
			name:            "early phase overrides vigilant task type",
			slots:           Slots{TipoTarea: "resumen", Fase: "planificacion"},
			expectedQ2:      "A",
			expectedQ3:      "subir",
			expectedEnfoque: "promocion_eager",
		},
		{
			name:            "early phase keeps construal exploratory under a close deadline",
			slots:           Slots{TipoTarea: "ensayo", Fase: "ideacion", Plazo: "hoy"},
			expectedQ2:      "A",
			expectedQ3:      "bajar",
			expectedEnfoque: "promocion_eager",
		},
		{
			name:            "essay in planning mixes direction",
			slots:           Slots{TipoTarea: "ensayo", Fase: "planificacion", Plazo: ">1_semana"},
			expectedQ2:      "A",
			expectedQ3:      "mixto",
			expectedEnfoque: "promocion_eager",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q2, q3, enfoque := InferQ2Q3(tt.slots)
			assert.Equal(t, tt.expectedQ2, q2)
			assert.Equal(t, tt.expectedQ3, q3)
			assert.Equal(t, tt.expectedEnfoque, enfoque)
		})
	}
}

func TestSelectStrategyAnxietyOverride(t *testing.T) {
	slots := Slots{
		Sentimiento:  "ansiedad_error",
		TipoTarea:    "coding",
		Fase:         "ejecucion",
		Plazo:        ">1_semana",
		TiempoBloque: 25,
	}

	strategy, q2, q3, enfoque := SelectStrategy(slots, nil)

	assert.Equal(t, "B", q2)
	assert.Equal(t, "bajar", q3)
	assert.Equal(t, "prevencion_vigilant", enfoque)
	assert.Equal(t, CategoryPrevencionVigilant, strategy.Categoria)
	assert.Equal(t, NivelConcreto, strategy.Nivel)
}

func TestSelectStrategyRespectsTimeBudget(t *testing.T) {
	slots := Slots{
		Sentimiento:  "frustracion",
		TipoTarea:    "ensayo",
		Fase:         "ejecucion",
		Plazo:        "esta_semana",
		TiempoBloque: 10,
	}

	strategy, _, _, _ := SelectStrategy(slots, nil)

	assert.LessOrEqual(t, strategy.TiempoMinimo, 10)
}

func TestSelectStrategyExcludesRejected(t *testing.T) {
	slots := Slots{
		Sentimiento:  "frustracion",
		TipoTarea:    "ensayo",
		Fase:         "ideacion",
		Plazo:        ">1_semana",
		TiempoBloque: 25,
	}

	first, _, _, _ := SelectStrategy(slots, nil)
	second, _, _, _ := SelectStrategy(slots, []string{first.ID})

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSelectStrategyFallsBackToGeneric(t *testing.T) {
	slots := Slots{
		Sentimiento:  "neutral",
		TipoTarea:    "mcq",
		Fase:         "revision",
		Plazo:        "hoy",
		TiempoBloque: 10,
	}

	var rejected []string
	for _, s := range strategyCatalog {
		rejected = append(rejected, s.ID)
	}

	strategy, _, _, _ := SelectStrategy(slots, rejected)

	assert.Equal(t, genericStrategy.ID, strategy.ID)
}

func TestStrategyByID(t *testing.T) {
	s, ok := StrategyByID("lluvia_sucia")
	require.True(t, ok)
	assert.Equal(t, "Lluvia Sucia", s.Nombre)

	_, ok = StrategyByID("does_not_exist")
	assert.False(t, ok)
}

func TestCatalogIncludesGenericFallback(t *testing.T) {
	catalog := Catalog()
	require.NotEmpty(t, catalog)
	assert.Equal(t, genericStrategy.ID, catalog[len(catalog)-1].ID)

	for _, s := range catalog {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Pasos, "strategy %s has no steps", s.ID)
		assert.Greater(t, s.TiempoMinimo, 0, "strategy %s has no minimum time", s.ID)
	}
}

func TestStrategyLocalizedName(t *testing.T) {
	s, ok := StrategyByID("borrador_feo")
	require.True(t, ok)
	assert.Equal(t, "Borrador Feo", s.Name("es"))
	assert.Equal(t, "Ugly Draft", s.Name("en"))
	assert.Len(t, s.Steps("en"), len(s.Pasos))
}
