package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/jwt"
)

const secretPrueba = "secreto-de-prueba"

func appProtegida(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/admin", AuthMiddleware(secretPrueba), RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	return app
}

func tokenCon(t *testing.T, secret, rol string) string {
	t.Helper()
	tok, err := jwt.Generate(secret, "u-1", rol, "api-test", 5)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware_AdminAccede(t *testing.T) {
	app := appProtegida(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenCon(t, secretPrueba, "admin"))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_RolSinAcceso(t *testing.T) {
	app := appProtegida(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenCon(t, secretPrueba, "editor"))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := appProtegida(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := appProtegida(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaAjena(t *testing.T) {
	app := appProtegida(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenCon(t, "otro-secreto", "admin"))
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenBasura(t *testing.T) {
	app := appProtegida(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer no.es.jwt")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
