package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// La búsqueda no distingue mayúsculas ni acentos: "perez" encuentra "Pérez".
func TestCoincide_InsensibleAAcentos(t *testing.T) {
	casos := []struct {
		consulta string
		campo    string
		espera   bool
	}{
		{"perez", "Ana Pérez", true},
		{"pérez", "Ana Perez", true},
		{"PEREZ", "ana pérez", true},
		{"jose", "José García", true},
		{"garcia", "José García", true},
		{"martinez", "Ana Pérez", false},
		{"nunez", "Núñez", true},
	}
	for _, c := range casos {
		assert.Equal(t, c.espera, Coincide(c.consulta, c.campo),
			"Coincide(%q, %q)", c.consulta, c.campo)
	}
}

func TestCoincide_ConsultaVaciaCoincideSiempre(t *testing.T) {
	assert.True(t, Coincide("", "cualquier cosa"))
	assert.True(t, Coincide("   ", "cualquier cosa"), "espacios en blanco cuentan como consulta vacía")
	assert.True(t, Coincide(""), "incluso sin campos")
}

func TestCoincide_BuscaEnTodosLosCampos(t *testing.T) {
	assert.True(t, Coincide("555", "Ana Pérez", "ana@example.com", "555-0101"),
		"la consulta debe probarse contra cada campo")
	assert.False(t, Coincide("zzz", "Ana Pérez", "ana@example.com", "555-0101"))
}

func TestCoincide_SubcadenaParcial(t *testing.T) {
	assert.True(t, Coincide("rez", "Ana Pérez"), "coincide por subcadena, no por prefijo")
}
