package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/logger"
)

// fakeStore contador en memoria que registra las claves consultadas.
type fakeStore struct {
	counts map[string]int
	keys   []string
	err    error
}

func newFakeStore() *fakeStore { return &fakeStore{counts: map[string]int{}} }

func (f *fakeStore) Incr(key string, window time.Duration) (int, time.Time, error) {
	if f.err != nil {
		return 0, time.Time{}, f.err
	}
	f.counts[key]++
	f.keys = append(f.keys, key)
	return f.counts[key], time.Now().Add(window), nil
}

func appConLimiter(store *fakeStore, tipo string, max int, window time.Duration) *fiber.App {
	app := fiber.New()
	app.Post("/f", FormRateLimiter(store, tipo, max, window, logger.Nop()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestFormRateLimiter_TercerEnvioPasaCuartoRechaza(t *testing.T) {
	app := appConLimiter(newFakeStore(), "contacto", 3, 10*time.Minute)

	for i := 1; i <= 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/f", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "envío %d debe pasar", i)
		assert.Equal(t, "3", resp.Header.Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(3-i), resp.Header.Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Reset"))
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/f", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	body, _ := io.ReadAll(resp.Body)
	var out dto.RateLimitResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.RazonRateLimited, out.Error)
	assert.Greater(t, out.RetryAfter, 0)
	assert.LessOrEqual(t, out.RetryAfter, 600)
}

// La clave lleva el tipo de formulario: contacto y cotización no comparten cupo.
func TestFormRateLimiter_ClavePorTipoEIP(t *testing.T) {
	store := newFakeStore()
	app := appConLimiter(store, "cotizacion", 3, 10*time.Minute)

	_, err := app.Test(httptest.NewRequest("POST", "/f", nil))
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	assert.Equal(t, "cotizacion_0.0.0.0", store.keys[0])
}

// Fail-open: con el almacén caído la petición pasa sin headers de cuota.
func TestFormRateLimiter_AlmacenCaidoDejaPasar(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("almacén no disponible")
	app := appConLimiter(store, "contacto", 3, 10*time.Minute)

	resp, err := app.Test(httptest.NewRequest("POST", "/f", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("X-RateLimit-Limit"))
}
