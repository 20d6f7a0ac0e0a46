// Package textutil ofrece normalización de texto para búsquedas libres:
// minúsculas y sin diacríticos, de modo que "Pasión" encuentre "pasion".
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var removeMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve s en minúsculas y sin marcas diacríticas.
// Si la transformación falla (entrada no UTF-8 válida) se degrada a lowercase simple.
func Fold(s string) string {
	out, _, err := transform.String(removeMarks, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si s contiene substr ignorando mayúsculas y acentos.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
