package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
)

// LeadsHandler maneja los POST públicos de contacto y cotización.
type LeadsHandler struct {
	uc *leads.SubmitUseCase
}

// NewLeadsHandler construye el handler.
func NewLeadsHandler(uc *leads.SubmitUseCase) *LeadsHandler {
	return &LeadsHandler{uc: uc}
}

// Contacto POST /api/contacto
func (h *LeadsHandler) Contacto(c *fiber.Ctx) error {
	var in dto.ContactoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.RazonInvalidInput, Message: "cuerpo inválido"})
	}
	resp, err := h.uc.SubmitContacto(c.UserContext(), in, c.IP())
	if err != nil {
		return responderErrorPipeline(c, err)
	}
	return c.JSON(resp)
}

// Cotizacion POST /api/cotizacion
func (h *LeadsHandler) Cotizacion(c *fiber.Ctx) error {
	var in dto.CotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.RazonInvalidInput, Message: "cuerpo inválido"})
	}
	resp, err := h.uc.SubmitCotizacion(c.UserContext(), in, c.IP())
	if err != nil {
		return responderErrorPipeline(c, err)
	}
	return c.JSON(resp)
}

// responderErrorPipeline traduce los errores del pipeline a HTTP. El rechazo
// anti-spam se responde genérico adrede: no se revela qué tier falló ni por qué.
func responderErrorPipeline(c *fiber.Ctx, err error) error {
	var ve leads.ValidationErrors
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   dto.RazonInvalidInput,
			Message: "revisa los campos marcados",
			Details: ve.Campos(),
		})
	case errors.Is(err, domain.ErrVerificationFailed):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   dto.RazonSpamRejected,
			Message: "no pudimos verificar tu envío, intenta de nuevo",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.RazonInternal})
	}
}
