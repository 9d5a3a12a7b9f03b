package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/content"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
)

// ContentHandler expone las lecturas públicas de contenido del sitio.
type ContentHandler struct {
	uc *content.UseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(uc *content.UseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// ListServicios GET /api/servicios?idioma=ES|EN
func (h *ContentHandler) ListServicios(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListServicios(c.Query("idioma", "ES")))
}

// GetServicio GET /api/servicios/:slug?idioma=ES|EN
func (h *ContentHandler) GetServicio(c *fiber.Ctx) error {
	s, err := h.uc.GetServicio(c.Params("slug"), c.Query("idioma", "ES"))
	if err != nil {
		return responderErrorLectura(c, err)
	}
	return c.JSON(s)
}

// ListProyectos GET /api/proyectos
func (h *ContentHandler) ListProyectos(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListProyectos())
}

// GetProyecto GET /api/proyectos/:slug
func (h *ContentHandler) GetProyecto(c *fiber.Ctx) error {
	p, err := h.uc.GetProyecto(c.Params("slug"))
	if err != nil {
		return responderErrorLectura(c, err)
	}
	return c.JSON(p)
}

// GetQuienesSomos GET /api/quienes-somos
func (h *ContentHandler) GetQuienesSomos(c *fiber.Ctx) error {
	q, err := h.uc.GetQuienesSomos()
	if err != nil {
		return responderErrorLectura(c, err)
	}
	return c.JSON(q)
}

// GetParametro GET /api/parametros/:clave
// Solo claves del allow-list; fuera de él 403, permitida pero inexistente 404.
func (h *ContentHandler) GetParametro(c *fiber.Ctx) error {
	p, err := h.uc.GetParametroPublico(c.Params("clave"))
	if err != nil {
		return responderErrorLectura(c, err)
	}
	return c.JSON(p)
}

func responderErrorLectura(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "forbidden", Message: "clave no publicable"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "not_found", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.RazonInternal})
	}
}
