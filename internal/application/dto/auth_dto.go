package dto

// LoginRequest credenciales del acceso administrativo.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido y datos básicos del usuario.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}
