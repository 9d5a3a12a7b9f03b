package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/content"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de contenido
// ──────────────────────────────────────────────────────────────────────────────

type serviciosFijos struct {
	lista []*entity.Servicio
	err   error
}

func (f serviciosFijos) ListActivos(_ string) ([]*entity.Servicio, error) { return f.lista, f.err }
func (f serviciosFijos) GetBySlug(slug, idioma string) (*entity.Servicio, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.lista {
		if s.Slug == slug && s.Idioma == idioma {
			return s, nil
		}
	}
	return nil, nil
}

type proyectosFijos struct{ lista []*entity.Proyecto }

func (f proyectosFijos) ListActivos() ([]*entity.Proyecto, error) { return f.lista, nil }
func (f proyectosFijos) GetBySlug(slug string) (*entity.Proyecto, error) {
	for _, p := range f.lista {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}
func (f proyectosFijos) ListHuerfanos() ([]*entity.Proyecto, error) { return nil, nil }

type quienesFijo struct{ fila *entity.QuienesSomos }

func (f quienesFijo) GetActivo() (*entity.QuienesSomos, error) { return f.fila, nil }

type parametrosFijos struct{ valores map[string]string }

func (f parametrosFijos) GetByClave(clave string) (*entity.Parametro, error) {
	v, ok := f.valores[clave]
	if !ok {
		return nil, nil
	}
	return &entity.Parametro{Clave: clave, Valor: v}, nil
}
func (f parametrosFijos) List() ([]*entity.Parametro, error) { return nil, nil }

func appContenido(s serviciosFijos, p proyectosFijos, q quienesFijo, pa parametrosFijos) *fiber.App {
	uc := content.NewUseCase(s, p, q, pa, logger.Nop())
	h := NewContentHandler(uc)

	app := fiber.New()
	app.Get("/api/servicios", h.ListServicios)
	app.Get("/api/servicios/:slug", h.GetServicio)
	app.Get("/api/proyectos", h.ListProyectos)
	app.Get("/api/proyectos/:slug", h.GetProyecto)
	app.Get("/api/quienes-somos", h.GetQuienesSomos)
	app.Get("/api/parametros/:clave", h.GetParametro)
	return app
}

func getJSON(t *testing.T, app *fiber.App, ruta string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", ruta, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de contenido
// ──────────────────────────────────────────────────────────────────────────────

func TestGetServicios_ListadoYDetalle(t *testing.T) {
	app := appContenido(serviciosFijos{lista: []*entity.Servicio{{
		Slug:      "remodelacion-de-cocinas",
		Idioma:    entity.IdiomaES,
		Titulo:    "Remodelación de Cocinas",
		Contenido: "cuerpo completo",
		Etiquetas: []string{"cocinas"},
	}}}, proyectosFijos{}, quienesFijo{}, parametrosFijos{})

	status, body := getJSON(t, app, "/api/servicios?idioma=ES")
	assert.Equal(t, fiber.StatusOK, status)
	var lista []map[string]any
	require.NoError(t, json.Unmarshal(body, &lista))
	require.Len(t, lista, 1)
	assert.Equal(t, "remodelacion-de-cocinas", lista[0]["slug"])

	status, body = getJSON(t, app, "/api/servicios/remodelacion-de-cocinas?idioma=ES")
	assert.Equal(t, fiber.StatusOK, status)
	var detalle map[string]any
	require.NoError(t, json.Unmarshal(body, &detalle))
	assert.Equal(t, "cuerpo completo", detalle["contenido"])

	status, _ = getJSON(t, app, "/api/servicios/no-existe")
	assert.Equal(t, fiber.StatusNotFound, status)
}

// Con el almacén caído el listado responde 200 con arreglo vacío, nunca null.
func TestGetServicios_AlmacenCaido(t *testing.T) {
	app := appContenido(serviciosFijos{err: errors.New("conexión perdida")},
		proyectosFijos{}, quienesFijo{}, parametrosFijos{})

	status, body := getJSON(t, app, "/api/servicios")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "[]", string(body))
}

// El detalle con el almacén caído responde 404, jamás 500: las lecturas de
// contenido privilegian disponibilidad y tratan el error como vacío.
func TestGetServicio_AlmacenCaido(t *testing.T) {
	app := appContenido(serviciosFijos{err: errors.New("conexión perdida")},
		proyectosFijos{}, quienesFijo{}, parametrosFijos{})

	status, _ := getJSON(t, app, "/api/servicios/remodelacion-de-cocinas")

	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetProyectos_Listado(t *testing.T) {
	app := appContenido(serviciosFijos{}, proyectosFijos{lista: []*entity.Proyecto{
		{Slug: "casa-campestre", Titulo: "Casa Campestre"},
	}}, quienesFijo{}, parametrosFijos{})

	status, body := getJSON(t, app, "/api/proyectos")
	assert.Equal(t, fiber.StatusOK, status)
	var lista []map[string]any
	require.NoError(t, json.Unmarshal(body, &lista))
	require.Len(t, lista, 1)
	assert.NotNil(t, lista[0]["galeria"], "la galería vacía serializa como arreglo")
}

func TestGetQuienesSomos_SinFila(t *testing.T) {
	app := appContenido(serviciosFijos{}, proyectosFijos{}, quienesFijo{}, parametrosFijos{})

	status, _ := getJSON(t, app, "/api/quienes-somos")

	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetParametro_AllowList(t *testing.T) {
	app := appContenido(serviciosFijos{}, proyectosFijos{}, quienesFijo{}, parametrosFijos{
		valores: map[string]string{
			"telefono_contacto": "+57 300 123 4567",
			"smtp_password":     "secreto",
		},
	})

	status, body := getJSON(t, app, "/api/parametros/telefono_contacto")
	assert.Equal(t, fiber.StatusOK, status)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "+57 300 123 4567", out["valor"])

	status, _ = getJSON(t, app, "/api/parametros/smtp_password")
	assert.Equal(t, fiber.StatusForbidden, status, "clave fuera del allow-list aunque exista")

	status, _ = getJSON(t, app, "/api/parametros/whatsapp")
	assert.Equal(t, fiber.StatusNotFound, status)
}
