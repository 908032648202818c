package dialog

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"flou-backend/pkg/llm"
)

// Regex heuristics used when the LLM is unavailable or fails. Patterns follow
// the Chilean-Spanish phrasing of the student population.

var (
	rePlazoHoy    = regexp.MustCompile(`hoy|hoy día|ahora|en el día|para la noche`)
	rePlazo24h    = regexp.MustCompile(`mañana|24\s*h|en un día`)
	rePlazoSemana = regexp.MustCompile(`próxima semana|la otra semana|esta semana|en estos días|antes del finde`)
	rePlazoLargo  = regexp.MustCompile(`mes|semanas|>\s*1|próximo mes|largo plazo`)

	reTareaEnsayo       = regexp.MustCompile(`ensayo|essay|informe|reporte|escrito`)
	reTareaEsquema      = regexp.MustCompile(`esquema|outline|mapa conceptual|diagrama`)
	reTareaBorrador     = regexp.MustCompile(`borrador|draft|avance`)
	reTareaPresentacion = regexp.MustCompile(`presentaci(ón|on)|slides|powerpoint|discurso`)
	reTareaProof        = regexp.MustCompile(`proof|corregir|correcci(ón|on)|edita(r|ción)|feedback`)
	reTareaMcq          = regexp.MustCompile(`mcq|alternativa(s)?|test|prueba|examen`)
	reTareaLab          = regexp.MustCompile(`protocolo|laboratorio|lab`)
	reTareaProblemas    = regexp.MustCompile(`problema(s)?|ejercicio(s)?|cálculo|guía`)
	reTareaLectura      = regexp.MustCompile(`lectura|paper|art[ií]culo|leer|texto`)
	reTareaResumen      = regexp.MustCompile(`resumen|sintetizar|síntesis`)
	reTareaCoding       = regexp.MustCompile(`c(ó|o)digo|programar`)
	reTareaBug          = regexp.MustCompile(`bug|error|debug`)

	reFaseIdeacion  = regexp.MustCompile(`ide(a|ación)|brainstorm|empezando|inicio`)
	reFasePlan      = regexp.MustCompile(`plan|organizar|estructura`)
	reFaseEjecucion = regexp.MustCompile(`escribir|redacci(ón|on)|hacer|resolver|desarrollar|avanzando`)
	reFaseRevision  = regexp.MustCompile(`revis(ar|ión)|editar|proof|corregir|finalizando|últimos detalles`)

	reSentFrustracion = regexp.MustCompile(`frustra|enojado|molesto|rabia|irritado|impotencia|bloqueado|estancado`)
	reSentAnsiedad    = regexp.MustCompile(`ansiedad|miedo a equivocarme|nervios|preocupado|estresado|tenso|pánico|abrumado|agobiado`)
	reSentAburrido    = regexp.MustCompile(`aburri|lata|paja|sin ganas|monótono|repetitivo|tedioso|desinterés`)
	reSentDispersion  = regexp.MustCompile(`dispers|distraído|rumi|dando vueltas|no me concentro|mente en blanco|divago|perdido`)
	reSentBajaAuto    = regexp.MustCompile(`autoeficacia baja|no puedo|no soy capaz|difícil|superado|inseguro|incapaz|no lo voy a lograr`)
)

func guessPlazo(text string) string {
	t := strings.ToLower(text)
	switch {
	case rePlazoHoy.MatchString(t):
		return "hoy"
	case rePlazo24h.MatchString(t):
		return "<24h"
	case rePlazoSemana.MatchString(t):
		return "esta_semana"
	case rePlazoLargo.MatchString(t):
		return ">1_semana"
	}
	return ""
}

func guessTipoTarea(text string) string {
	t := strings.ToLower(text)
	switch {
	case reTareaEnsayo.MatchString(t):
		return "ensayo"
	case reTareaEsquema.MatchString(t):
		return "esquema"
	case reTareaBorrador.MatchString(t):
		return "borrador"
	case reTareaPresentacion.MatchString(t):
		return "presentacion"
	case reTareaProof.MatchString(t):
		return "proofreading"
	case reTareaMcq.MatchString(t):
		return "mcq"
	case reTareaLab.MatchString(t):
		return "protocolo_lab"
	case reTareaProblemas.MatchString(t):
		return "resolver_problemas"
	case reTareaLectura.MatchString(t):
		return "lectura_tecnica"
	case reTareaResumen.MatchString(t):
		return "resumen"
	case reTareaCoding.MatchString(t) && !reTareaBug.MatchString(t):
		return "coding"
	case reTareaBug.MatchString(t):
		return "bugfix"
	}
	return ""
}

func guessFase(text string) string {
	t := strings.ToLower(text)
	switch {
	case reFaseIdeacion.MatchString(t):
		return "ideacion"
	case reFasePlan.MatchString(t):
		return "planificacion"
	case reFaseEjecucion.MatchString(t):
		return "ejecucion"
	case reFaseRevision.MatchString(t):
		return "revision"
	}
	return ""
}

func guessSentimiento(text string) string {
	t := strings.ToLower(text)
	switch {
	case reSentFrustracion.MatchString(t):
		return "frustracion"
	case reSentAnsiedad.MatchString(t):
		return "ansiedad_error"
	case reSentAburrido.MatchString(t):
		return "aburrimiento"
	case reSentDispersion.MatchString(t):
		return "dispersion_rumiacion"
	case reSentBajaAuto.MatchString(t):
		return "baja_autoeficacia"
	}
	return ""
}

func guessTiempoBloque(text string) int {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "10") || strings.Contains(t, "diez"):
		return 10
	case strings.Contains(t, "12") || strings.Contains(t, "doce"):
		return 12
	case strings.Contains(t, "15") || strings.Contains(t, "quince"):
		return 15
	case strings.Contains(t, "25") || strings.Contains(t, "veinticinco"):
		return 25
	case strings.Contains(t, "45") || strings.Contains(t, "cuarenta y cinco"):
		return 45
	}
	return 0
}

// extractSlotsHeuristic merges regex guesses over the current slots. A guess
// never clears a value learned earlier.
func extractSlotsHeuristic(freeText string, current Slots) Slots {
	out := current
	if v := guessSentimiento(freeText); v != "" {
		out.Sentimiento = v
	}
	if v := guessTipoTarea(freeText); v != "" {
		out.TipoTarea = v
	}
	if v := guessPlazo(freeText); v != "" {
		out.Plazo = v
	}
	if v := guessFase(freeText); v != "" {
		out.Fase = v
	}
	if v := guessTiempoBloque(freeText); v != 0 {
		out.TiempoBloque = v
	}
	return out
}

const slotExtractionPrompt = `Extrae como JSON los campos del texto del usuario.
Reglas Flexibles:
1. 'tipo_tarea': Mapea lo que el usuario quiere hacer a la categoría más cercana.
   - coding: programar, hacer una ia, código, desarrollo, bug, script.
   - ensayo: escribir, redacción, texto largo.
   - resumen: estudiar, leer, sintetizar.
   - presentacion: diapositivas, ppt, slide.
   - resolver_problemas: ejercicios, matemáticas, lógica.
   - proyecto: avanzar proyecto, trabajo grupal.
2. 'sentimiento': Infiere la emoción subyacente.
   - Si dice "estoy bien", "normal" o solo enuncia la tarea, usa "neutral".
   - Si muestra entusiasmo, usa "positivo".
   - Solo negativos (ansiedad, frustracion) con evidencia clara.
3. 'fase' (CRITICO): Infiere la etapa del trabajo.
   - "Tengo que empezar", "no se de que hacer", "hoja en blanco" -> ideacion
   - "Tengo esquema", "organizandome" -> planificacion
   - "Estoy escribiendo", "haciendo", "programando" -> ejecucion
   - "Revisar", "corregir", "terminar detalles" -> revision
   - Si no hay pistas, asume "ejecucion".
4. 'plazo' (CRITICO): Infiere urgencia.
   - "Para hoy", "urgente", "ya", "en un rato" -> hoy
   - "Mañana", "mañana temprano" -> <24h
   - "Esta semana", "jueves" -> esta_semana
   - "Próxima semana", "mes" -> >1_semana
   - Si no menciona nada, asume "esta_semana".
5. 'tiempo_bloque': Si menciona duración ("20 min"), extráela.
6. INPUTS CORTOS: "Ensayo" -> tarea=ensayo, sentimiento=neutral, fase=ejecucion, plazo=esta_semana.

Campos validos:
- sentimiento: aburrimiento|frustracion|ansiedad_error|dispersion_rumiacion|baja_autoeficacia|neutral|positivo|otro
- sentimiento_otro: texto libre
- tipo_tarea: ensayo|esquema|borrador|lectura_tecnica|resumen|resolver_problemas|protocolo_lab|mcq|presentacion|coding|bugfix|proofreading|proyecto|otro
- plazo: hoy|<24h|esta_semana|>1_semana
- fase: ideacion|planificacion|ejecucion|revision
- tiempo_bloque: entero (minutos)

Responde SOLO JSON. Si un campo no está claro, usa null.`

type extractedSlots struct {
	Sentimiento     string `json:"sentimiento"`
	SentimientoOtro string `json:"sentimiento_otro"`
	TipoTarea       string `json:"tipo_tarea"`
	Ramo            string `json:"ramo"`
	Plazo           string `json:"plazo"`
	Fase            string `json:"fase"`
	TiempoBloque    int    `json:"tiempo_bloque"`
}

// extractSlotsWithLLM asks the model in JSON mode, falling back to the regex
// heuristics on any failure.
func (e *Engine) extractSlotsWithLLM(ctx context.Context, freeText string, current Slots) Slots {
	if e.llm == nil {
		return extractSlotsHeuristic(freeText, current)
	}

	currentJSON, err := json.Marshal(current)
	if err != nil {
		return extractSlotsHeuristic(freeText, current)
	}

	userPrompt := fmt.Sprintf("Texto: %q\nSlots actuales: %s", freeText, string(currentJSON))
	reply, err := e.llm.Chat(ctx, []llm.Message{
		{Role: "system", Content: slotExtractionPrompt},
		{Role: "user", Content: userPrompt},
	}, llm.WithJSONMode(), llm.WithTemperature(0.1), llm.WithMaxTokens(200))
	if err != nil {
		e.logWarn("slot extraction via llm failed", map[string]interface{}{"error": err.Error()})
		return extractSlotsHeuristic(freeText, current)
	}

	var parsed extractedSlots
	if err := json.Unmarshal([]byte(reply), &parsed); err != nil {
		e.logWarn("slot extraction returned invalid json", map[string]interface{}{"error": err.Error()})
		return extractSlotsHeuristic(freeText, current)
	}

	out := current
	if parsed.Sentimiento != "" {
		out.Sentimiento = parsed.Sentimiento
	}
	if parsed.SentimientoOtro != "" {
		out.SentimientoOtro = parsed.SentimientoOtro
	}
	if parsed.TipoTarea != "" {
		out.TipoTarea = parsed.TipoTarea
	}
	if parsed.Ramo != "" {
		out.Ramo = parsed.Ramo
	}
	if parsed.Plazo != "" {
		out.Plazo = parsed.Plazo
	}
	if parsed.Fase != "" {
		out.Fase = parsed.Fase
	}
	if parsed.TiempoBloque > 0 {
		out.TiempoBloque = parsed.TiempoBloque
	}
	return out
}
