package dialog

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"flou-backend/pkg/llm"
)

// crisisPattern covers explicit self-harm phrasing in Chilean Spanish. A
// regex hit alone does not flag the turn; the model confirms intent so venting
// about an exam ("esto me mata") does not trigger the protocol.
var crisisPattern = regexp.MustCompile(`suicid|quitarme la vida|no quiero vivir|hacerme daño|matarme|terminar con todo|autolesión|autolesion|cortarme|acabar con esto|quiero morir|sin salida`)

// CrisisAssessment is the model's judgement on a flagged message.
type CrisisAssessment struct {
	IsCrisis   bool    `json:"is_crisis"`
	Confidence float64 `json:"confidence"`
}

const crisisConfirmPrompt = `Eres un clasificador de riesgo para un chat de apoyo estudiantil.
Analiza el mensaje y decide si expresa ideación suicida o intención de autolesión REAL,
no frustración académica figurada ("esta prueba me mata" NO es crisis).
Responde SOLO JSON: {"is_crisis": true|false, "confidence": 0.0-1.0}`

// detectCrisis returns true when the message matches the risk pattern and the
// model confirms with confidence above 0.7. Without a model the pattern match
// alone decides, erring on the side of flagging.
func (e *Engine) detectCrisis(ctx context.Context, message string) (bool, float64) {
	if !crisisPattern.MatchString(strings.ToLower(message)) {
		return false, 0
	}
	if e.llm == nil {
		return true, 1
	}

	reply, err := e.llm.Chat(ctx, []llm.Message{
		{Role: "system", Content: crisisConfirmPrompt},
		{Role: "user", Content: message},
	}, llm.WithJSONMode(), llm.WithTemperature(0), llm.WithMaxTokens(100))
	if err != nil {
		e.logWarn("crisis confirmation failed, flagging on pattern alone", map[string]interface{}{"error": err.Error()})
		return true, 1
	}

	var assessment CrisisAssessment
	if err := json.Unmarshal([]byte(reply), &assessment); err != nil {
		return true, 1
	}
	return assessment.IsCrisis && assessment.Confidence > 0.7, assessment.Confidence
}
