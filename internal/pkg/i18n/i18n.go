package i18n

import "strings"

const DefaultLanguage = "es"

var supportedLanguages = map[string]bool{
	"es": true,
	"en": true,
}

// translations maps message keys to per-language texts.
var translations = map[string]map[string]string{
	"generic_error": {
		"es": "Ha ocurrido un error inesperado.",
		"en": "An unexpected error occurred.",
	},
	"not_found": {
		"es": "Recurso no encontrado.",
		"en": "Resource not found.",
	},
	"unauthorized": {
		"es": "No autorizado. Por favor inicie sesión.",
		"en": "Unauthorized. Please log in.",
	},
	"forbidden": {
		"es": "No tiene permisos para realizar esta acción.",
		"en": "You do not have permission to perform this action.",
	},
	"profile_update_success": {
		"es": "Preferencias actualizadas correctamente.",
		"en": "Preferences updated successfully.",
	},
	"validation_error": {
		"es": "Error de validación en los datos enviados.",
		"en": "Validation error in the submitted data.",
	},
}

func IsSupported(lang string) bool {
	return supportedLanguages[lang]
}

// T returns the translated text for a key. Unknown languages fall back to the
// default language; unknown keys return the key itself.
func T(key, lang string) string {
	texts, ok := translations[key]
	if !ok {
		return key
	}
	if text, ok := texts[lang]; ok {
		return text
	}
	if text, ok := texts[DefaultLanguage]; ok {
		return text
	}
	return key
}

// Resolve picks the user language with the priority: stored preference,
// Accept-Language header, default.
func Resolve(preference, acceptLanguage string) string {
	if IsSupported(preference) {
		return preference
	}

	if acceptLanguage != "" {
		// 'en-US,en;q=0.9' style values reduce to the first two characters.
		code := strings.Split(acceptLanguage, ",")[0]
		code = strings.TrimSpace(code)
		if len(code) >= 2 {
			code = strings.ToLower(code[:2])
			if IsSupported(code) {
				return code
			}
		}
	}

	return DefaultLanguage
}
