package repository

import (
	"time"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
)

// SolicitudRepository define el puerto de persistencia de solicitudes de
// contacto y cotización.
type SolicitudRepository interface {
	Create(s *entity.Solicitud) error
	GetByID(id string) (*entity.Solicitud, error)
	// List filtra por estado si no está vacío; más reciente primero.
	List(estado string, limit, offset int) ([]*entity.Solicitud, error)
	UpdateEstado(id, estado string, updatedAt time.Time) error
}
