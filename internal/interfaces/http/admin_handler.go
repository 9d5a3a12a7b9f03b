package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/triage"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
)

// AdminHandler triage de solicitudes (rutas protegidas).
type AdminHandler struct {
	uc *triage.UseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *triage.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// List GET /api/admin/solicitudes?estado=pendiente&limit=20&offset=0
func (h *AdminHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(c.Query("estado"), limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.RazonInvalidInput, Message: "estado desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.RazonInternal})
	}
	return c.JSON(list)
}

// CambiarEstado PATCH /api/admin/solicitudes/:id/estado
func (h *AdminHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.RazonInvalidInput, Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CambiarEstado(c.Params("id"), in.Estado)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.RazonInvalidInput, Message: "estado desconocido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "not_found", Message: "solicitud no encontrada"})
		case errors.Is(err, domain.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "invalid_transition", Message: "la solicitud no puede pasar a ese estado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.RazonInternal})
		}
	}
	return c.JSON(resp)
}
