package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación de SolicitudRepository.
type SolicitudRepo struct {
	q Querier
}

// NewSolicitudRepository construye el adaptador.
func NewSolicitudRepository(q Querier) *SolicitudRepo {
	return &SolicitudRepo{q: q}
}

const solicitudColumns = `id, tipo, nombre, email, telefono, mensaje, tipo_servicio, presupuesto, fecha_inicio, ip_origen, puntaje_spam, estado, created_at, updated_at`

// Create persiste una nueva solicitud.
func (r *SolicitudRepo) Create(s *entity.Solicitud) error {
	query := `
		INSERT INTO solicitudes (` + solicitudColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Tipo, s.Nombre, s.Email, s.Telefono, s.Mensaje, s.TipoServicio,
		s.Presupuesto, s.FechaInicio, s.IPOrigen, s.PuntajeSpam, s.Estado,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert solicitud: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID; (nil, nil) si no existe.
func (r *SolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	query := `SELECT ` + solicitudColumns + ` FROM solicitudes WHERE id = $1`
	s, err := scanSolicitud(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud: %w", err)
	}
	return s, nil
}

// List lista solicitudes filtradas por estado (vacío = todas), más reciente primero.
func (r *SolicitudRepo) List(estado string, limit, offset int) ([]*entity.Solicitud, error) {
	query := `
		SELECT ` + solicitudColumns + `
		FROM solicitudes
		WHERE ($1 = '' OR estado = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Solicitud
	for rows.Next() {
		s, err := scanSolicitud(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateEstado actualiza el estado de triage de una solicitud.
func (r *SolicitudRepo) UpdateEstado(id, estado string, updatedAt time.Time) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE solicitudes SET estado = $2, updated_at = $3 WHERE id = $1`,
		id, estado, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update estado solicitud: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSolicitud(row pgx.Row) (*entity.Solicitud, error) {
	var s entity.Solicitud
	err := row.Scan(
		&s.ID, &s.Tipo, &s.Nombre, &s.Email, &s.Telefono, &s.Mensaje,
		&s.TipoServicio, &s.Presupuesto, &s.FechaInicio, &s.IPOrigen,
		&s.PuntajeSpam, &s.Estado, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
