package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos descompone, elimina marcas combinantes y recompone:
// "Pérez" y "Perez" quedan iguales para la búsqueda.
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizar(s string) string {
	out, _, err := transform.String(quitarDiacriticos, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Coincide indica si la consulta (insensible a mayúsculas y acentos) aparece
// como subcadena en alguno de los campos. Consulta vacía coincide siempre.
func Coincide(consulta string, campos ...string) bool {
	q := normalizar(strings.TrimSpace(consulta))
	if q == "" {
		return true
	}
	for _, campo := range campos {
		if strings.Contains(normalizar(campo), q) {
			return true
		}
	}
	return false
}
