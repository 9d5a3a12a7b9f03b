package dto

// Razones legibles por máquina para rechazos del pipeline de formularios.
const (
	RazonRateLimited  = "rate_limited"
	RazonInvalidInput = "invalid_input"
	RazonSpamRejected = "spam_rejected"
	RazonInternal     = "internal_error"
)

// FieldError error de validación a nivel de campo.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// ErrorResponse cuerpo de error HTTP. Details solo se llena para errores de
// validación; el rechazo anti-spam nunca revela qué tier falló ni por qué.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// RateLimitResponse cuerpo del 429 con el tiempo de reintento en segundos.
type RateLimitResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter"`
}
