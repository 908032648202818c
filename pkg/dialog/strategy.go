package dialog

// Strategy categories map regulatory focus to intervention style.
const (
	CategoryPromocionEager    = "PROMOCION_EAGER"
	CategoryPrevencionVigilant = "PREVENCION_VIGILANT"

	NivelAbstracto = "ABSTRACTO"
	NivelConcreto  = "CONCRETO"
)

// Strategy is a micro-intervention the coach can propose for a work block.
type Strategy struct {
	ID                string
	Nombre            string
	NombreEn          string
	Categoria         string
	Nivel             string
	TiempoMinimo      int
	Tareas            []string
	Fases             []string
	Tags              []string
	Pasos             []string
	PasosEn           []string
	PromptInstruction string
}

// Name returns the localized display name.
func (s Strategy) Name(locale string) string {
	if locale == "en" && s.NombreEn != "" {
		return s.NombreEn
	}
	return s.Nombre
}

// Steps returns the localized step list.
func (s Strategy) Steps(locale string) []string {
	if locale == "en" && len(s.PasosEn) > 0 {
		return s.PasosEn
	}
	return s.Pasos
}

// Document flattens the strategy for embedding and semantic retrieval.
func (s Strategy) Document() string {
	doc := s.Nombre + ". " + s.PromptInstruction
	for _, tag := range s.Tags {
		doc += " " + tag
	}
	return doc
}

var genericStrategy = Strategy{
	ID:           "bloque_simple",
	Nombre:       "Bloque Simple",
	NombreEn:     "Simple Block",
	Categoria:    CategoryPrevencionVigilant,
	Nivel:        NivelConcreto,
	TiempoMinimo: 10,
	Tags:         []string{"generico", "arranque"},
	Pasos: []string{
		"Elige la parte más pequeña de tu tarea.",
		"Pon el timer y trabaja solo en eso.",
		"Al sonar el timer, anota dónde quedaste.",
	},
	PasosEn: []string{
		"Pick the smallest piece of your task.",
		"Start the timer and work only on that.",
		"When it rings, note where you stopped.",
	},
	PromptInstruction: "Un bloque de trabajo corto sobre la parte más pequeña posible de la tarea, sin exigencias de calidad.",
}

// strategyCatalog is the built-in library of micro-interventions. Ordered so
// earlier entries win ties during selection.
var strategyCatalog = []Strategy{
	{
		ID:           "lluvia_sucia",
		Nombre:       "Lluvia Sucia",
		NombreEn:     "Messy Brainstorm",
		Categoria:    CategoryPromocionEager,
		Nivel:        NivelAbstracto,
		TiempoMinimo: 10,
		Tareas:       []string{"ensayo", "esquema", "borrador", "presentacion", "proyecto"},
		Fases:        []string{"ideacion", "planificacion"},
		Tags:         []string{"creatividad", "arranque", "hoja en blanco", "ideas"},
		Pasos: []string{
			"Escribe todas las ideas que se te ocurran, sin filtro ni orden.",
			"No borres ni corrijas nada mientras dure el timer.",
			"Al final, subraya las 2 o 3 ideas que más te sirvan.",
		},
		PasosEn: []string{
			"Write every idea that comes to mind, no filter, no order.",
			"Do not delete or fix anything while the timer runs.",
			"At the end, underline the 2 or 3 ideas that help most.",
		},
		PromptInstruction: "Generar ideas en bruto para vencer la hoja en blanco, prohibido editar.",
	},
	{
		ID:           "borrador_feo",
		Nombre:       "Borrador Feo",
		NombreEn:     "Ugly Draft",
		Categoria:    CategoryPromocionEager,
		Nivel:        NivelConcreto,
		TiempoMinimo: 15,
		Tareas:       []string{"ensayo", "borrador", "presentacion", "coding", "proyecto"},
		Fases:        []string{"ideacion", "planificacion", "ejecucion"},
		Tags:         []string{"perfeccionismo", "avance", "escritura"},
		Pasos: []string{
			"Escribe la peor versión posible de tu sección, a propósito.",
			"Prohibido releer o mejorar frases hasta que suene el timer.",
			"Guarda el borrador tal cual quedó.",
		},
		PasosEn: []string{
			"Write the worst possible version of your section, on purpose.",
			"No rereading or polishing sentences until the timer rings.",
			"Save the draft exactly as it came out.",
		},
		PromptInstruction: "Producir un primer borrador deliberadamente imperfecto para desactivar el perfeccionismo.",
	},
	{
		ID:           "mapa_tres_nodos",
		Nombre:       "Mapa de 3 Nodos",
		NombreEn:     "3-Node Map",
		Categoria:    CategoryPromocionEager,
		Nivel:        NivelAbstracto,
		TiempoMinimo: 10,
		Tareas:       []string{"esquema", "ensayo", "resumen", "presentacion"},
		Fases:        []string{"ideacion", "planificacion"},
		Tags:         []string{"estructura", "organizacion", "vision global"},
		Pasos: []string{
			"Dibuja 3 círculos: inicio, desarrollo y cierre de tu trabajo.",
			"Anota dentro de cada uno una sola frase que lo resuma.",
			"Conecta los círculos con flechas y una palabra por flecha.",
		},
		PasosEn: []string{
			"Draw 3 circles: opening, body and closing of your work.",
			"Inside each, write a single sentence that sums it up.",
			"Connect the circles with arrows, one word per arrow.",
		},
		PromptInstruction: "Construir la estructura mínima del trabajo con solo tres nodos conectados.",
	},
	{
		ID:           "micro_meta",
		Nombre:       "Micro-Meta",
		NombreEn:     "Micro-Goal",
		Categoria:    CategoryPrevencionVigilant,
		Nivel:        NivelConcreto,
		TiempoMinimo: 10,
		Tareas:       []string{"resolver_problemas", "mcq", "coding", "bugfix", "protocolo_lab", "proyecto"},
		Fases:        []string{"ejecucion"},
		Tags:         []string{"foco", "urgencia", "avance medible"},
		Pasos: []string{
			"Define una meta que quepa completa en el bloque: un ejercicio, una función, un ítem.",
			"Escribe la meta arriba de tu hoja o pantalla.",
			"Trabaja solo en esa meta hasta que suene el timer.",
		},
		PasosEn: []string{
			"Set a goal that fits entirely in the block: one exercise, one function, one item.",
			"Write the goal at the top of your page or screen.",
			"Work only on that goal until the timer rings.",
		},
		PromptInstruction: "Fijar una meta mínima y verificable que quepa completa en el bloque de tiempo.",
	},
	{
		ID:           "caza_errores",
		Nombre:       "Caza de Errores",
		NombreEn:     "Error Hunt",
		Categoria:    CategoryPrevencionVigilant,
		Nivel:        NivelConcreto,
		TiempoMinimo: 10,
		Tareas:       []string{"proofreading", "revision", "bugfix", "mcq", "ensayo", "borrador"},
		Fases:        []string{"revision"},
		Tags:         []string{"revision", "detalle", "precision"},
		Pasos: []string{
			"Elige un solo tipo de error para buscar: tildes, cálculos o nombres.",
			"Recorre el texto o código buscando solo ese tipo.",
			"Marca cada hallazgo sin corregirlo aún; corrige todo al final del bloque.",
		},
		PasosEn: []string{
			"Pick a single error type to hunt: typos, math or naming.",
			"Scan the text or code looking only for that type.",
			"Mark each find without fixing it yet; fix them all at the end.",
		},
		PromptInstruction: "Revisar en pasadas monotemáticas buscando un solo tipo de error por bloque.",
	},
	{
		ID:           "lectura_flash",
		Nombre:       "Lectura Flash",
		NombreEn:     "Flash Reading",
		Categoria:    CategoryPrevencionVigilant,
		Nivel:        NivelConcreto,
		TiempoMinimo: 10,
		Tareas:       []string{"lectura_tecnica", "resumen", "mcq"},
		Fases:        []string{"ejecucion", "revision"},
		Tags:         []string{"lectura", "comprension", "sintesis"},
		Pasos: []string{
			"Lee solo títulos, primeras frases de párrafo y figuras.",
			"Anota 3 ideas clave con tus propias palabras.",
			"Vuelve solo a las secciones que respondan tus dudas.",
		},
		PasosEn: []string{
			"Read only headings, first sentences of paragraphs and figures.",
			"Write down 3 key ideas in your own words.",
			"Return only to the sections that answer your questions.",
		},
		PromptInstruction: "Lectura selectiva en capas para extraer las ideas clave sin leer todo lineal.",
	},
	{
		ID:           "futuro_yo",
		Nombre:       "Carta al Futuro Yo",
		NombreEn:     "Letter to Future Me",
		Categoria:    CategoryPromocionEager,
		Nivel:        NivelAbstracto,
		TiempoMinimo: 10,
		Tareas:       []string{"ensayo", "proyecto", "esquema", "otro"},
		Fases:        []string{"ideacion", "planificacion"},
		Tags:         []string{"motivacion", "proposito", "sentido"},
		Pasos: []string{
			"Escribe 3 líneas a tu yo de la próxima semana contándole qué lograste hoy.",
			"Anota el primer paso concreto que haría real esa carta.",
			"Empieza ese paso durante el resto del bloque.",
		},
		PasosEn: []string{
			"Write 3 lines to next-week you telling them what you achieved today.",
			"Note the first concrete step that would make the letter true.",
			"Start that step for the rest of the block.",
		},
		PromptInstruction: "Conectar la tarea con una meta personal futura para recuperar motivación.",
	},
	{
		ID:           "checklist_cierre",
		Nombre:       "Checklist de Cierre",
		NombreEn:     "Closing Checklist",
		Categoria:    CategoryPrevencionVigilant,
		Nivel:        NivelConcreto,
		TiempoMinimo: 10,
		Tareas:       []string{"ensayo", "presentacion", "protocolo_lab", "proyecto", "proofreading"},
		Fases:        []string{"revision"},
		Tags:         []string{"entrega", "urgencia", "verificacion"},
		Pasos: []string{
			"Lista los requisitos de la entrega: formato, largo, secciones.",
			"Revisa tu trabajo contra la lista marcando cada ítem.",
			"Corrige solo lo que falte de la lista, nada más.",
		},
		PasosEn: []string{
			"List the delivery requirements: format, length, sections.",
			"Check your work against the list, ticking each item.",
			"Fix only what the list is missing, nothing else.",
		},
		PromptInstruction: "Verificar la entrega contra una lista cerrada de requisitos antes de enviar.",
	},
	{
		ID:           "cambio_formato",
		Nombre:       "Cambio de Formato",
		NombreEn:     "Format Switch",
		Categoria:    CategoryPromocionEager,
		Nivel:        NivelConcreto,
		TiempoMinimo: 12,
		Tareas:       []string{"resumen", "lectura_tecnica", "esquema", "mcq"},
		Fases:        []string{"ejecucion"},
		Tags:         []string{"aburrimiento", "novedad", "variedad"},
		Pasos: []string{
			"Toma el contenido que estás trabajando y cámbialo de formato: texto a tabla, apuntes a dibujo, lista a audio.",
			"Trabaja en el nuevo formato durante todo el bloque.",
			"Compara al final qué entendiste mejor en cada formato.",
		},
		PasosEn: []string{
			"Take the content you are working on and switch its format: text to table, notes to drawing, list to audio.",
			"Work in the new format for the whole block.",
			"Compare at the end what you understood better in each format.",
		},
		PromptInstruction: "Reprocesar el mismo contenido en otro formato para romper la monotonía.",
	},
	{
		ID:           "paso_uno_visible",
		Nombre:       "Paso Uno Visible",
		NombreEn:     "Visible First Step",
		Categoria:    CategoryPrevencionVigilant,
		Nivel:        NivelConcreto,
		TiempoMinimo: 10,
		Tareas:       []string{"coding", "bugfix", "resolver_problemas", "protocolo_lab", "proyecto", "otro"},
		Fases:        []string{"ideacion", "planificacion", "ejecucion"},
		Tags:         []string{"autoeficacia", "arranque", "confianza"},
		Pasos: []string{
			"Escribe el paso más fácil y pequeño con el que puedes partir.",
			"Hazlo de inmediato, aunque parezca trivial.",
			"Anota el siguiente paso antes de que termine el bloque.",
		},
		PasosEn: []string{
			"Write the easiest, smallest step you could start with.",
			"Do it right away, even if it feels trivial.",
			"Write down the next step before the block ends.",
		},
		PromptInstruction: "Partir por el paso trivial garantizado para reconstruir sensación de capacidad.",
	},
}

// Catalog returns the full strategy library including the generic fallback.
func Catalog() []Strategy {
	out := make([]Strategy, 0, len(strategyCatalog)+1)
	out = append(out, strategyCatalog...)
	out = append(out, genericStrategy)
	return out
}

var vigilantTasks = map[string]bool{
	"proofreading":       true,
	"mcq":                true,
	"protocolo_lab":      true,
	"resolver_problemas": true,
	"bugfix":             true,
	"lectura_tecnica":    true,
	"resumen":            true,
}

// InferQ2Q3 derives construal level (Q2) and regulatory direction (Q3) from
// the task context. Q2 is "A" (promotion, exploratory) or "B" (prevention,
// vigilant); Q3 is "subir", "bajar" or "mixto".
func InferQ2Q3(slots Slots) (q2 string, q3 string, enfoque string) {
	deadlineClose := slots.Plazo == "hoy" || slots.Plazo == "<24h"
	earlyPhase := slots.Fase == "ideacion" || slots.Fase == "planificacion"

	q2 = "A"
	if vigilantTasks[slots.TipoTarea] {
		q2 = "B"
	}
	if slots.Fase == "revision" || deadlineClose {
		q2 = "B"
	}
	// An early work phase keeps the exploratory construal even for vigilant
	// task types or a close deadline.
	if earlyPhase {
		q2 = "A"
	}

	q3 = "bajar"
	if earlyPhase {
		q3 = "subir"
	}
	if slots.Fase == "revision" || deadlineClose {
		q3 = "bajar"
	}
	if slots.TipoTarea == "ensayo" && (slots.Fase == "planificacion" || slots.Fase == "ejecucion") {
		q3 = "mixto"
	}

	if q2 == "A" {
		enfoque = "promocion_eager"
	} else {
		enfoque = "prevencion_vigilant"
	}
	return q2, q3, enfoque
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// selectionTargets resolves the preferred category and construal level for
// the given slots, applying the emotional override.
func selectionTargets(slots Slots) (q2, q3, enfoque, targetCategory, targetNivel string) {
	q2, q3, enfoque = InferQ2Q3(slots)

	// Anxious or low-efficacy students get the calmer, concrete track
	// regardless of what the task context suggests.
	if slots.Sentimiento == "ansiedad_error" || slots.Sentimiento == "baja_autoeficacia" {
		q2, q3, enfoque = "B", "bajar", "prevencion_vigilant"
	}

	targetCategory = CategoryPromocionEager
	if enfoque == "prevencion_vigilant" {
		targetCategory = CategoryPrevencionVigilant
	}
	targetNivel = NivelConcreto
	if q3 == "subir" {
		targetNivel = NivelAbstracto
	}
	return q2, q3, enfoque, targetCategory, targetNivel
}

// SelectStrategy picks the best-fitting strategy for the session context.
// Rejected ids are excluded so a retry never re-proposes the same strategy.
func SelectStrategy(slots Slots, rejected []string) (Strategy, string, string, string) {
	q2, q3, enfoque, targetCategory, targetNivel := selectionTargets(slots)

	candidates := filterCandidates(slots, rejected)
	return pickFromCandidates(candidates, targetCategory, targetNivel), q2, q3, enfoque
}

// filterCandidates applies the hard constraints: available time, task type,
// work phase and previously rejected ids.
func filterCandidates(slots Slots, rejected []string) []Strategy {
	var candidates []Strategy
	for _, s := range strategyCatalog {
		if contains(rejected, s.ID) {
			continue
		}
		if slots.TiempoBloque > 0 && s.TiempoMinimo > slots.TiempoBloque {
			continue
		}
		if slots.TipoTarea != "" && len(s.Tareas) > 0 && !contains(s.Tareas, slots.TipoTarea) {
			continue
		}
		if slots.Fase != "" && len(s.Fases) > 0 && !contains(s.Fases, slots.Fase) {
			continue
		}
		candidates = append(candidates, s)
	}
	return candidates
}

func pickFromCandidates(candidates []Strategy, targetCategory, targetNivel string) Strategy {
	for _, s := range candidates {
		if s.Categoria == targetCategory && s.Nivel == targetNivel {
			return s
		}
	}
	for _, s := range candidates {
		if s.Categoria == targetCategory {
			return s
		}
	}
	for _, s := range candidates {
		if s.Nivel == targetNivel {
			return s
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return genericStrategy
}

// StrategyByID looks up a catalog entry; ok is false for unknown ids.
func StrategyByID(id string) (Strategy, bool) {
	for _, s := range Catalog() {
		if s.ID == id {
			return s, true
		}
	}
	return Strategy{}, false
}
