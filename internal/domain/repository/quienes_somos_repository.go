package repository

import "github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"

// QuienesSomosRepository define el puerto de lectura de la página institucional.
type QuienesSomosRepository interface {
	// GetActivo devuelve la fila activa o (nil, nil) si no hay ninguna.
	GetActivo() (*entity.QuienesSomos, error)
}
