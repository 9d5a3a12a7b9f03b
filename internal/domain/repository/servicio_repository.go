package repository

import "github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"

// ServicioRepository define el puerto de lectura de servicios publicados.
type ServicioRepository interface {
	// ListActivos devuelve los servicios activos del idioma, ordenados por Orden.
	ListActivos(idioma string) ([]*entity.Servicio, error)
	// GetBySlug devuelve el servicio activo (slug, idioma) o (nil, nil) si no existe.
	GetBySlug(slug, idioma string) (*entity.Servicio, error)
}
