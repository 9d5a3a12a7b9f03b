package repository

import "github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"

// ProyectoRepository define el puerto de lectura del portafolio de proyectos.
type ProyectoRepository interface {
	// ListActivos devuelve los proyectos activos, más reciente primero.
	ListActivos() ([]*entity.Proyecto, error)
	// GetBySlug devuelve el proyecto activo o (nil, nil) si no existe.
	GetBySlug(slug string) (*entity.Proyecto, error)
	// ListHuerfanos devuelve proyectos activos cuyo ServicioSlug no resuelve a
	// un servicio activo. Chequeo informativo de integridad, no un constraint.
	ListHuerfanos() ([]*entity.Proyecto, error)
}
