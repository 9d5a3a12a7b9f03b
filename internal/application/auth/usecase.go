package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase login administrativo. Las cuentas se crean con cmd/seed, no hay
// registro público.
type UseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Credenciales malas y usuario inexistente devuelven ambos ErrUnauthorized
// para no filtrar qué cuentas existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarios.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Activo {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		UserID: user.ID,
		Nombre: user.Nombre,
		Rol:    user.Rol,
	}, nil
}
