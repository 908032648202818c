package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Recurso no encontrado.", T("not_found", "es"))
	assert.Equal(t, "Resource not found.", T("not_found", "en"))

	// Unknown language falls back to the default
	assert.Equal(t, "Recurso no encontrado.", T("not_found", "fr"))

	// Unknown key returns the key
	assert.Equal(t, "does_not_exist", T("does_not_exist", "es"))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		preference     string
		acceptLanguage string
		expected       string
	}{
		{"stored preference wins", "en", "es-MX,es;q=0.9", "en"},
		{"header used when no preference", "", "en-US,en;q=0.9", "en"},
		{"header with plain code", "", "es", "es"},
		{"unsupported preference ignored", "fr", "en-GB", "en"},
		{"unsupported everything defaults", "fr", "de-DE", "es"},
		{"empty inputs default", "", "", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.preference, tt.acceptLanguage))
		})
	}
}
