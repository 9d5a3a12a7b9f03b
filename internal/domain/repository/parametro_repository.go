package repository

import "github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"

// ParametroRepository define el puerto de lectura del almacén clave/valor.
type ParametroRepository interface {
	GetByClave(clave string) (*entity.Parametro, error)
	List() ([]*entity.Parametro, error)
}
