package transliterate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatinFolder(t *testing.T) {
	folder := NewLatinFolder()

	tests := []struct {
		name     string
		input    string
		expected string
		requires bool
	}{
		{"accented first name", "José", "Jose", true},
		{"accented last name", "Nuñez", "Nunez", true},
		{"plain ascii", "John", "John", false},
		{"german sharp s", "Straße", "Strasse", true},
		{"nordic o", "Sørensen", "Sorensen", true},
		{"empty", "", "", false},
		{"mixed words", "María do Carmo", "Maria do Carmo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := folder.Transliterate(tt.input)
			assert.Equal(t, tt.expected, result.Transliterated)
			assert.Equal(t, tt.requires, result.RequiresTransliteration)
		})
	}
}
