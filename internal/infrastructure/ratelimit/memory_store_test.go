package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeConReloj(inicio time.Time) (*MemoryStore, *time.Time) {
	reloj := inicio
	s := NewMemoryStore()
	s.now = func() time.Time { return reloj }
	return s, &reloj
}

func TestMemoryStore_CuentaDentroDeLaVentana(t *testing.T) {
	s, _ := storeConReloj(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))

	for i := 1; i <= 3; i++ {
		n, _, err := s.Incr("contacto_1.2.3.4", 10*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
}

func TestMemoryStore_ClavesIndependientes(t *testing.T) {
	s, _ := storeConReloj(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))

	s.Incr("contacto_1.2.3.4", 10*time.Minute)
	s.Incr("contacto_1.2.3.4", 10*time.Minute)
	n, _, _ := s.Incr("cotizacion_1.2.3.4", 10*time.Minute)

	assert.Equal(t, 1, n, "cada formulario e IP llevan su propio contador")
}

// La ventana desliza: eventos más viejos que la ventana dejan de contar.
func TestMemoryStore_EventosViejosExpiran(t *testing.T) {
	inicio := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	s, reloj := storeConReloj(inicio)

	s.Incr("k", 10*time.Minute)
	s.Incr("k", 10*time.Minute)

	*reloj = inicio.Add(10*time.Minute + time.Second)
	n, _, err := s.Incr("k", 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// El barrido periódico descarta claves cuya ventana completa expiró: el mapa
// no crece sin tope con IPs distintas a lo largo del uptime.
func TestMemoryStore_BarridoDeClavesExpiradas(t *testing.T) {
	inicio := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	s, reloj := storeConReloj(inicio)

	s.Incr("contacto_1.2.3.4", 10*time.Minute)
	s.Incr("contacto_5.6.7.8", 10*time.Minute)

	*reloj = inicio.Add(25 * time.Minute)
	s.Incr("contacto_9.9.9.9", 10*time.Minute)

	_, quedo1 := s.hits["contacto_1.2.3.4"]
	_, quedo2 := s.hits["contacto_5.6.7.8"]
	assert.False(t, quedo1)
	assert.False(t, quedo2)
	assert.Contains(t, s.hits, "contacto_9.9.9.9")
}

// El barrido no toca claves con eventos todavía vigentes.
func TestMemoryStore_BarridoConservaClavesVigentes(t *testing.T) {
	inicio := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	s, reloj := storeConReloj(inicio)

	s.Incr("contacto_1.2.3.4", 10*time.Minute)
	*reloj = inicio.Add(9 * time.Minute)
	s.Incr("contacto_1.2.3.4", 10*time.Minute)

	*reloj = inicio.Add(12 * time.Minute)
	n, _, err := s.Incr("contacto_1.2.3.4", 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, 2, n, "el evento del minuto 9 sigue dentro de la ventana")
}

func TestMemoryStore_ResetEsDelEventoMasAntiguo(t *testing.T) {
	inicio := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	s, reloj := storeConReloj(inicio)

	s.Incr("k", 10*time.Minute)
	*reloj = inicio.Add(3 * time.Minute)
	_, reset, err := s.Incr("k", 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, inicio.Add(10*time.Minute), reset)
}
