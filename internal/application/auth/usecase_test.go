package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/auth"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/jwt"
)

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) Create(_ *entity.Usuario) error { return nil }

func (f *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return f.porEmail[email], nil
}

func cfgPrueba() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "api-test"}
}

func usuarioCon(t *testing.T, password string, activo bool) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Usuario{
		ID:           "u-1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Nombre:       "Admin",
		Rol:          entity.RolAdmin,
		Activo:       activo,
	}
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := &fakeUsuarioRepo{porEmail: map[string]*entity.Usuario{
		"admin@example.com": usuarioCon(t, "clave-segura", true),
	}}
	uc := auth.NewUseCase(repo, cfgPrueba())

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: "clave-segura"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, entity.RolAdmin, resp.Rol)

	userID, role, err := jwt.Parse("secreto-de-prueba", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, entity.RolAdmin, role)
}

// Usuario inexistente, contraseña mala y cuenta inactiva devuelven el mismo
// error: el login no revela qué cuentas existen.
func TestLogin_RechazosIndistinguibles(t *testing.T) {
	repo := &fakeUsuarioRepo{porEmail: map[string]*entity.Usuario{
		"admin@example.com":    usuarioCon(t, "clave-segura", true),
		"inactivo@example.com": usuarioCon(t, "clave-segura", false),
	}}
	uc := auth.NewUseCase(repo, cfgPrueba())

	casos := []dto.LoginRequest{
		{Email: "nadie@example.com", Password: "clave-segura"},
		{Email: "admin@example.com", Password: "clave-mala"},
		{Email: "inactivo@example.com", Password: "clave-segura"},
	}
	for _, in := range casos {
		_, err := uc.Login(in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "email=%s", in.Email)
	}
}
