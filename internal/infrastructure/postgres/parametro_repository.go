package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
)

var _ repository.ParametroRepository = (*ParametroRepo)(nil)

// ParametroRepo implementación de ParametroRepository.
type ParametroRepo struct {
	q Querier
}

// NewParametroRepository construye el adaptador.
func NewParametroRepository(q Querier) *ParametroRepo {
	return &ParametroRepo{q: q}
}

// GetByClave obtiene un parámetro por clave; (nil, nil) si no existe.
func (r *ParametroRepo) GetByClave(clave string) (*entity.Parametro, error) {
	query := `SELECT clave, valor, descripcion FROM parametros WHERE clave = $1`
	var p entity.Parametro
	err := r.q.QueryRow(context.Background(), query, clave).Scan(&p.Clave, &p.Valor, &p.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parametro: %w", err)
	}
	return &p, nil
}

// List lista todos los parámetros (uso administrativo y de mantenimiento).
func (r *ParametroRepo) List() ([]*entity.Parametro, error) {
	rows, err := r.q.Query(context.Background(), `SELECT clave, valor, descripcion FROM parametros ORDER BY clave`)
	if err != nil {
		return nil, fmt.Errorf("list parametros: %w", err)
	}
	defer rows.Close()
	var list []*entity.Parametro
	for rows.Next() {
		var p entity.Parametro
		if err := rows.Scan(&p.Clave, &p.Valor, &p.Descripcion); err != nil {
			return nil, fmt.Errorf("scan parametro: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
