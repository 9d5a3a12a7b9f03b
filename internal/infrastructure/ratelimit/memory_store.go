package ratelimit

import (
	"sync"
	"time"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
)

// Verificar en tiempo de compilación que MemoryStore implementa RateLimitStore.
var _ leads.RateLimitStore = (*MemoryStore)(nil)

// MemoryStore contador de ventana deslizante en memoria de proceso.
// Suficiente para un despliegue de una sola instancia; con varias réplicas el
// puerto admite un adaptador respaldado en un almacén compartido.
type MemoryStore struct {
	mu        sync.Mutex
	hits      map[string][]time.Time
	maxWindow time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore construye el almacén.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{hits: make(map[string][]time.Time), now: time.Now}
}

// Incr registra un evento para la clave y devuelve cuántos caen dentro de la
// ventana y cuándo se libera el cupo más antiguo. Nunca falla; la política
// fail-open del middleware existe para adaptadores remotos.
func (s *MemoryStore) Incr(key string, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if window > s.maxWindow {
		s.maxWindow = window
	}
	if s.lastSweep.IsZero() {
		s.lastSweep = now
	} else if now.Sub(s.lastSweep) >= s.maxWindow {
		s.sweep(now)
		s.lastSweep = now
	}

	corte := now.Add(-window)
	kept := s.hits[key][:0]
	for _, t := range s.hits[key] {
		if t.After(corte) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	s.hits[key] = kept

	return len(kept), kept[0].Add(window), nil
}

// sweep descarta las claves cuya ventana completa ya expiró. Sin esto el mapa
// crece sin tope con cada {formulario}_{IP} distinto visto durante el uptime.
func (s *MemoryStore) sweep(now time.Time) {
	corte := now.Add(-s.maxWindow)
	for k, ts := range s.hits {
		if len(ts) == 0 || !ts[len(ts)-1].After(corte) {
			delete(s.hits, k)
		}
	}
}
