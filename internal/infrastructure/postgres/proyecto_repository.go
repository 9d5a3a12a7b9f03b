package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
)

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)

// ProyectoRepo implementación de ProyectoRepository (usable con pool o tx).
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

const proyectoColumns = `slug, titulo, contenido, imagen_portada_url, galeria, servicio_slug, fecha_finalizacion, activo, created_at, updated_at`

// ListActivos lista los proyectos activos, más reciente primero.
func (r *ProyectoRepo) ListActivos() ([]*entity.Proyecto, error) {
	query := `
		SELECT ` + proyectoColumns + `
		FROM proyectos WHERE activo = TRUE
		ORDER BY fecha_finalizacion DESC NULLS LAST, slug ASC`
	return r.list(query)
}

// GetBySlug obtiene el proyecto activo por slug; (nil, nil) si no existe.
func (r *ProyectoRepo) GetBySlug(slug string) (*entity.Proyecto, error) {
	query := `
		SELECT ` + proyectoColumns + `
		FROM proyectos WHERE slug = $1 AND activo = TRUE`
	p, err := scanProyecto(r.q.QueryRow(context.Background(), query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proyecto: %w", err)
	}
	return p, nil
}

// ListHuerfanos lista proyectos activos cuya referencia de servicio no
// resuelve a un servicio activo. La referencia es blanda: esto es un chequeo
// de mantenimiento, no un constraint.
func (r *ProyectoRepo) ListHuerfanos() ([]*entity.Proyecto, error) {
	query := `
		SELECT ` + proyectoColumns + `
		FROM proyectos p
		WHERE p.activo = TRUE AND p.servicio_slug <> ''
		  AND NOT EXISTS (
			SELECT 1 FROM servicios s
			WHERE s.slug = p.servicio_slug AND s.activo = TRUE
		  )
		ORDER BY p.slug ASC`
	return r.list(query)
}

func (r *ProyectoRepo) list(query string, args ...any) ([]*entity.Proyecto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proyecto
	for rows.Next() {
		p, err := scanProyecto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProyecto(row pgx.Row) (*entity.Proyecto, error) {
	var p entity.Proyecto
	var galeria string
	err := row.Scan(
		&p.Slug, &p.Titulo, &p.Contenido, &p.ImagenPortadaURL, &galeria,
		&p.ServicioSlug, &p.FechaFinalizacion, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Galeria = decodeStringList(galeria)
	return &p, nil
}
