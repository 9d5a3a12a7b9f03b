package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var noAlfanumerico = regexp.MustCompile(`[^a-z0-9]+`)

// quitarAcentos descompone (NFD) y elimina las marcas diacríticas, de modo que
// "Remodelación" pase a "Remodelacion". La ñ se conserva como n.
var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate convierte un título en un slug URL-safe: minúsculas, sin acentos,
// separadores colapsados a guiones.
func Generate(titulo string) string {
	plano, _, err := transform.String(quitarAcentos, titulo)
	if err != nil {
		plano = titulo
	}
	s := noAlfanumerico.ReplaceAllString(strings.ToLower(plano), "-")
	return strings.Trim(s, "-")
}
