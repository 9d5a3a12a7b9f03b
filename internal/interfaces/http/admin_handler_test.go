package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/triage"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
)

func appAdmin(solicitudes ...*entity.Solicitud) (*fiber.App, *memRepo) {
	repo := &memRepo{creadas: solicitudes}
	h := NewAdminHandler(triage.NewUseCase(adminRepo{repo}))

	app := fiber.New()
	app.Get("/api/admin/solicitudes", h.List)
	app.Patch("/api/admin/solicitudes/:id/estado", h.CambiarEstado)
	return app, repo
}

// adminRepo complementa memRepo con búsqueda por ID sobre el slice.
type adminRepo struct{ *memRepo }

func (r adminRepo) GetByID(id string) (*entity.Solicitud, error) {
	for _, s := range r.creadas {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r adminRepo) UpdateEstado(id, estado string, updatedAt time.Time) error {
	for _, s := range r.creadas {
		if s.ID == id {
			s.Estado = estado
			s.UpdatedAt = updatedAt
			return nil
		}
	}
	return nil
}

func solicitudPendiente(id string) *entity.Solicitud {
	return &entity.Solicitud{
		ID:        id,
		Tipo:      entity.TipoContacto,
		Nombre:    "Ana",
		Email:     "ana@example.com",
		Mensaje:   "Quiero una cotización de obra gris.",
		Estado:    entity.EstadoPendiente,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAdminList_Solicitudes(t *testing.T) {
	app, _ := appAdmin(solicitudPendiente("s-1"), solicitudPendiente("s-2"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/solicitudes?estado=pendiente", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var lista []map[string]any
	require.NoError(t, json.Unmarshal(body, &lista))
	assert.Len(t, lista, 2)
}

func TestAdminList_EstadoDesconocido(t *testing.T) {
	app, _ := appAdmin()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/solicitudes?estado=archivada", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func patchEstado(t *testing.T, app *fiber.App, id, estado string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest("PATCH", "/api/admin/solicitudes/"+id+"/estado",
		strings.NewReader(`{"estado":"`+estado+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAdminCambiarEstado_Avanza(t *testing.T) {
	app, repo := appAdmin(solicitudPendiente("s-1"))

	resp := patchEstado(t, app, "s-1", entity.EstadoProcesada)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.EstadoProcesada, repo.creadas[0].Estado)
}

func TestAdminCambiarEstado_Errores(t *testing.T) {
	app, _ := appAdmin(solicitudPendiente("s-1"))

	// Retroceder desde pendiente no existe como transición.
	resp := patchEstado(t, app, "s-1", entity.EstadoPendiente)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = patchEstado(t, app, "no-existe", entity.EstadoProcesada)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = patchEstado(t, app, "s-1", "archivada")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
