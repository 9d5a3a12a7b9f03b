package leads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
)

func TestLimpiarTexto(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"  hola   mundo  ", "hola mundo"},
		{"sin cambios", "sin cambios"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"línea\nuno\tdos", "línea uno dos"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, leads.LimpiarTexto(c.entrada))
	}
}

func TestNormalizarTelefono(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"3001234567", "+573001234567"},
		{"300 123 4567", "+573001234567"},
		{"+57 300-123-4567", "+573001234567"},
		{"573001234567", "+573001234567"},
		{"(601) 555-1234", "+576015551234"},
		{"", ""},
		{"  -  ", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, leads.NormalizarTelefono(c.entrada))
	}
}
