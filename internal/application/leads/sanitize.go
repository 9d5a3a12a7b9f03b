package leads

import (
	"regexp"
	"strings"
)

var (
	espaciosRe = regexp.MustCompile(`\s+`)
	noDigitoRe = regexp.MustCompile(`\D`)
	angulosRe  = regexp.MustCompile(`[<>]`)
)

// LimpiarTexto colapsa espacios en blanco y elimina ángulos para neutralizar
// HTML incrustado en los campos libres.
func LimpiarTexto(s string) string {
	s = angulosRe.ReplaceAllString(s, "")
	s = espaciosRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizarTelefono deja el número en formato +57XXXXXXXXXX. Acepta entradas
// con o sin prefijo de país y con separadores. Cadena vacía queda vacía.
func NormalizarTelefono(s string) string {
	d := noDigitoRe.ReplaceAllString(s, "")
	if d == "" {
		return ""
	}
	if strings.HasPrefix(d, "57") && len(d) > 10 {
		d = d[2:]
	}
	return "+57" + d
}
