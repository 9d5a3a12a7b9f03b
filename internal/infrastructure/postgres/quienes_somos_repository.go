package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
)

var _ repository.QuienesSomosRepository = (*QuienesSomosRepo)(nil)

// QuienesSomosRepo implementación de QuienesSomosRepository.
type QuienesSomosRepo struct {
	q Querier
}

// NewQuienesSomosRepository construye el adaptador.
func NewQuienesSomosRepository(q Querier) *QuienesSomosRepo {
	return &QuienesSomosRepo{q: q}
}

// GetActivo devuelve la fila activa más antigua; (nil, nil) si no hay.
// Se espera una sola activa, pero si hay varias el resultado es estable.
func (r *QuienesSomosRepo) GetActivo() (*entity.QuienesSomos, error) {
	query := `
		SELECT id, titulo, contenido, imagen_equipo_url, activo
		FROM quienes_somos WHERE activo = TRUE
		ORDER BY id ASC LIMIT 1`
	var q entity.QuienesSomos
	err := r.q.QueryRow(context.Background(), query).Scan(
		&q.ID, &q.Titulo, &q.Contenido, &q.ImagenEquipoURL, &q.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quienes_somos: %w", err)
	}
	return &q, nil
}
