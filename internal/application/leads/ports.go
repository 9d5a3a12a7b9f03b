package leads

import (
	"context"
	"time"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
)

// CaptchaResult respuesta del endpoint de verificación. Score y Action solo
// vienen en el desafío invisible; el interactivo reporta únicamente Success.
type CaptchaResult struct {
	Success bool
	Score   float64
	Action  string
}

// CaptchaVerifier puerto hacia el endpoint de verificación de desafíos.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (CaptchaResult, error)
}

// Mailer puerto de notificaciones por correo. Ambos envíos son independientes
// y su falla nunca revierte la solicitud ya persistida.
type Mailer interface {
	SendAdminNotification(s *entity.Solicitud) error
	SendAcknowledgment(s *entity.Solicitud) error
}

// RateLimitStore contador de ventana deslizante compartido entre peticiones.
// Incr registra el evento y devuelve el conteo dentro de la ventana y el
// instante en que la ventana se reinicia.
type RateLimitStore interface {
	Incr(key string, window time.Duration) (count int, resetAt time.Time, err error)
}
