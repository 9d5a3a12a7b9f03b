package entity

import "time"

// RolAdmin único rol con acceso al triage de solicitudes.
const RolAdmin = "admin"

// Usuario cuenta administrativa del sitio (triage de solicitudes).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
