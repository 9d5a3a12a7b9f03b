package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/auth"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
)

// AuthHandler login del acceso administrativo.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.RazonInvalidInput, Message: "cuerpo inválido"})
	}
	if errs := leads.Validar(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   dto.RazonInvalidInput,
			Message: "revisa los campos marcados",
			Details: errs.Campos(),
		})
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.RazonInternal})
	}
	return c.JSON(resp)
}
