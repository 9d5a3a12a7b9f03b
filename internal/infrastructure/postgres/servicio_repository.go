package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
)

var _ repository.ServicioRepository = (*ServicioRepo)(nil)

// ServicioRepo implementación de ServicioRepository (usable con pool o tx).
type ServicioRepo struct {
	q Querier
}

// NewServicioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServicioRepository(q Querier) *ServicioRepo {
	return &ServicioRepo{q: q}
}

const servicioColumns = `slug, idioma, titulo, descripcion_corta, contenido, imagen_url, etiquetas, orden, activo, created_at, updated_at`

// ListActivos lista los servicios activos del idioma en orden de despliegue.
func (r *ServicioRepo) ListActivos(idioma string) ([]*entity.Servicio, error) {
	query := `
		SELECT ` + servicioColumns + `
		FROM servicios WHERE activo = TRUE AND idioma = $1
		ORDER BY orden ASC, slug ASC`
	rows, err := r.q.Query(context.Background(), query, idioma)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Servicio
	for rows.Next() {
		s, err := scanServicio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetBySlug obtiene el servicio activo por (slug, idioma); (nil, nil) si no existe.
func (r *ServicioRepo) GetBySlug(slug, idioma string) (*entity.Servicio, error) {
	query := `
		SELECT ` + servicioColumns + `
		FROM servicios WHERE slug = $1 AND idioma = $2 AND activo = TRUE`
	s, err := scanServicio(r.q.QueryRow(context.Background(), query, slug, idioma))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	return s, nil
}

func scanServicio(row pgx.Row) (*entity.Servicio, error) {
	var s entity.Servicio
	var etiquetas string
	err := row.Scan(
		&s.Slug, &s.Idioma, &s.Titulo, &s.DescripcionCorta, &s.Contenido,
		&s.ImagenURL, &etiquetas, &s.Orden, &s.Activo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Etiquetas = decodeStringList(etiquetas)
	return &s, nil
}
