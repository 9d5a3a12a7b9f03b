package leads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/logger"
)

// SubmitUseCase pipeline de recepción de formularios:
// validar -> tiers anti-spam -> sanear -> persistir -> notificar.
// El rate limit corre antes, como middleware, y es independiente del resto.
type SubmitUseCase struct {
	solicitudes repository.SolicitudRepository
	guard       *SpamGuard
	mailer      Mailer
	log         *logger.Logger
}

// NewSubmitUseCase construye el pipeline con sus dependencias.
func NewSubmitUseCase(solicitudes repository.SolicitudRepository, guard *SpamGuard, mailer Mailer, log *logger.Logger) *SubmitUseCase {
	return &SubmitUseCase{solicitudes: solicitudes, guard: guard, mailer: mailer, log: log}
}

// SubmitContacto procesa un envío del formulario de contacto.
// Devuelve ValidationErrors, domain.ErrVerificationFailed o un error de
// persistencia; solo este último debe traducirse a 500.
func (uc *SubmitUseCase) SubmitContacto(ctx context.Context, in dto.ContactoRequest, ip string) (*dto.SubmitResponse, error) {
	if errs := Validar(in); errs != nil {
		return nil, errs
	}
	score, err := uc.guard.Check(ctx, entity.TipoContacto, in.CaptchaToken, in.CaptchaTokenV2)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &entity.Solicitud{
		ID:          uuid.New().String(),
		Tipo:        entity.TipoContacto,
		Nombre:      LimpiarTexto(in.Nombre),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Telefono:    NormalizarTelefono(in.Telefono),
		Mensaje:     LimpiarTexto(in.Mensaje),
		IPOrigen:    ip,
		PuntajeSpam: score,
		Estado:      entity.EstadoPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return uc.persistirYNotificar(s)
}

// SubmitCotizacion procesa un envío del formulario de cotización.
func (uc *SubmitUseCase) SubmitCotizacion(ctx context.Context, in dto.CotizacionRequest, ip string) (*dto.SubmitResponse, error) {
	if errs := Validar(in); errs != nil {
		return nil, errs
	}
	score, err := uc.guard.Check(ctx, entity.TipoCotizacion, in.CaptchaToken, in.CaptchaTokenV2)
	if err != nil {
		return nil, err
	}

	var fechaInicio *time.Time
	if in.FechaInicio != "" {
		f, err := time.Parse("2006-01-02", in.FechaInicio)
		if err != nil {
			return nil, ValidationErrors{{Campo: "fechaInicio", Mensaje: "formato de fecha inválido"}}
		}
		fechaInicio = &f
	}

	now := time.Now()
	s := &entity.Solicitud{
		ID:           uuid.New().String(),
		Tipo:         entity.TipoCotizacion,
		Nombre:       LimpiarTexto(in.Nombre),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Telefono:     NormalizarTelefono(in.Telefono),
		Mensaje:      LimpiarTexto(in.Descripcion),
		TipoServicio: LimpiarTexto(in.TipoServicio),
		Presupuesto:  LimpiarTexto(in.Presupuesto),
		FechaInicio:  fechaInicio,
		IPOrigen:     ip,
		PuntajeSpam:  score,
		Estado:       entity.EstadoPendiente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.persistirYNotificar(s)
}

// persistirYNotificar guarda la solicitud y despacha los dos correos. La falla
// de cualquiera de los correos se registra y se reporta en EmailsSent, pero
// jamás revierte la escritura ni convierte la respuesta en error: un lead
// persistido no se pierde por una notificación caída.
func (uc *SubmitUseCase) persistirYNotificar(s *entity.Solicitud) (*dto.SubmitResponse, error) {
	if err := uc.solicitudes.Create(s); err != nil {
		return nil, fmt.Errorf("persistir solicitud: %w", err)
	}

	resp := &dto.SubmitResponse{Success: true, ID: s.ID}

	if err := uc.mailer.SendAdminNotification(s); err != nil {
		uc.log.Error().Err(err).Str("solicitud_id", s.ID).Msg("notificación interna falló")
	} else {
		resp.EmailsSent.Admin = true
	}
	if err := uc.mailer.SendAcknowledgment(s); err != nil {
		uc.log.Error().Err(err).Str("solicitud_id", s.ID).Msg("confirmación al remitente falló")
	} else {
		resp.EmailsSent.User = true
	}

	uc.log.Info().
		Str("solicitud_id", s.ID).
		Str("tipo", s.Tipo).
		Bool("email_admin", resp.EmailsSent.Admin).
		Bool("email_user", resp.EmailsSent.User).
		Msg("solicitud recibida")
	return resp, nil
}
