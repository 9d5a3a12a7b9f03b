package http

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/logger"
)

// FormRateLimiter limita los POST de formularios con ventana deslizante,
// clave {tipoFormulario}_{IP}. Política fail-open: si el almacén de conteo no
// responde, la petición pasa y la falla se registra; disponibilidad por encima
// de control de abuso estricto. El rechazo lleva retryAfter en segundos y los
// headers X-RateLimit-* para que el cliente calcule su reintento.
func FormRateLimiter(store leads.RateLimitStore, tipoFormulario string, max int, window time.Duration, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := tipoFormulario + "_" + c.IP()

		count, resetAt, err := store.Incr(key, window)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("almacén de rate limit no disponible; dejando pasar")
			return c.Next()
		}

		restantes := max - count
		if restantes < 0 {
			restantes = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(max))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(restantes))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if count > max {
			retry := int(math.Ceil(time.Until(resetAt).Seconds()))
			if retry < 0 {
				retry = 0
			}
			c.Set("Retry-After", strconv.Itoa(retry))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.RateLimitResponse{
				Error:      dto.RazonRateLimited,
				Message:    "demasiados envíos desde esta dirección, intenta más tarde",
				RetryAfter: retry,
			})
		}
		return c.Next()
	}
}

// GlobalRateLimiter tope general por IP para el resto de la API. Ventana fija
// del middleware de Fiber: aquí no hay contrato de retryAfter.
func GlobalRateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error:   dto.RazonRateLimited,
				Message: "demasiadas peticiones, intenta más tarde",
			})
		},
	})
}
