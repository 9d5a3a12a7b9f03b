package triage

import (
	"time"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
)

// UseCase triage administrativo de solicitudes: listados filtrados y avance
// de estado pendiente -> procesada -> respondida.
type UseCase struct {
	solicitudes repository.SolicitudRepository
}

// NewUseCase construye el caso de uso de triage.
func NewUseCase(solicitudes repository.SolicitudRepository) *UseCase {
	return &UseCase{solicitudes: solicitudes}
}

// List devuelve solicitudes filtradas por estado (vacío = todas).
func (uc *UseCase) List(estado string, limit, offset int) ([]*dto.SolicitudResponse, error) {
	if estado != "" && !estadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.solicitudes.List(estado, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SolicitudResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSolicitudResponse(s))
	}
	return out, nil
}

// CambiarEstado avanza el estado de una solicitud. Transiciones hacia atrás o
// repetidas devuelven ErrInvalidTransition.
func (uc *UseCase) CambiarEstado(id, nuevo string) (*dto.SolicitudResponse, error) {
	if !estadoValido(nuevo) {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.solicitudes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if !s.PuedeTransicionar(nuevo) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if err := uc.solicitudes.UpdateEstado(id, nuevo, now); err != nil {
		return nil, err
	}
	s.Estado = nuevo
	s.UpdatedAt = now
	return toSolicitudResponse(s), nil
}

func estadoValido(estado string) bool {
	switch estado {
	case entity.EstadoPendiente, entity.EstadoProcesada, entity.EstadoRespondida:
		return true
	}
	return false
}

func toSolicitudResponse(s *entity.Solicitud) *dto.SolicitudResponse {
	out := &dto.SolicitudResponse{
		ID:           s.ID,
		Tipo:         s.Tipo,
		Nombre:       s.Nombre,
		Email:        s.Email,
		Telefono:     s.Telefono,
		Mensaje:      s.Mensaje,
		TipoServicio: s.TipoServicio,
		Presupuesto:  s.Presupuesto,
		IPOrigen:     s.IPOrigen,
		PuntajeSpam:  s.PuntajeSpam,
		Estado:       s.Estado,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
	if s.FechaInicio != nil {
		out.FechaInicio = s.FechaInicio.Format("2006-01-02")
	}
	return out
}
