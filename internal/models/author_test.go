package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ab, Cd", "Ab"},
		{"  Le Guin , Ursula K.", "Le Guin"},
		{"Plato", "Plato"},
		{"", ""},
		{"Dumas, Alexandre, fils", "Dumas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FamilyName(tt.name))
			assert.Equal(t, tt.want, Author{Name: tt.name}.FamilyName())
		})
	}
}
