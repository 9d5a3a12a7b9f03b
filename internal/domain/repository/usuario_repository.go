package repository

import "github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia de cuentas administrativas.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	FindByEmail(email string) (*entity.Usuario, error)
}
