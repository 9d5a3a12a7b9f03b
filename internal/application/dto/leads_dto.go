package dto

// ContactoRequest cuerpo del formulario de contacto.
// Telefono es opcional aquí; en cotización es obligatorio.
type ContactoRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2,max=100,nombre_persona"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Telefono string `json:"telefono" validate:"omitempty,telefono_co"`
	Mensaje  string `json:"mensaje" validate:"required,min=10,max=2000"`
	// Tokens reCAPTCHA: el invisible (v3) viaja siempre; el interactivo (v2)
	// solo si el cliente tuvo que renderizar el desafío de respaldo.
	CaptchaToken   string `json:"captchaToken"`
	CaptchaTokenV2 string `json:"captchaTokenV2"`
}

// CotizacionRequest cuerpo del formulario de cotización.
type CotizacionRequest struct {
	Nombre       string `json:"nombre" validate:"required,min=2,max=100,nombre_persona"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Telefono     string `json:"telefono" validate:"required,telefono_co"`
	TipoServicio string `json:"tipoServicio" validate:"required,max=100"`
	Descripcion  string `json:"descripcion" validate:"required,min=20,max=3000"`
	Presupuesto  string `json:"presupuesto" validate:"omitempty,max=100"`
	// FechaInicio formato YYYY-MM-DD; si viene, no puede estar en el pasado.
	FechaInicio    string `json:"fechaInicio" validate:"omitempty,fecha_no_pasada"`
	CaptchaToken   string `json:"captchaToken"`
	CaptchaTokenV2 string `json:"captchaTokenV2"`
}

// EmailFlags resultado de los dos despachos de correo, informativo.
type EmailFlags struct {
	Admin bool `json:"admin"`
	User  bool `json:"user"`
}

// SubmitResponse respuesta de aceptación de un formulario.
type SubmitResponse struct {
	Success    bool       `json:"success"`
	ID         string     `json:"id"`
	EmailsSent EmailFlags `json:"emailsSent"`
}

// SolicitudResponse vista administrativa de una solicitud.
type SolicitudResponse struct {
	ID           string  `json:"id"`
	Tipo         string  `json:"tipo"`
	Nombre       string  `json:"nombre"`
	Email        string  `json:"email"`
	Telefono     string  `json:"telefono,omitempty"`
	Mensaje      string  `json:"mensaje"`
	TipoServicio string  `json:"tipoServicio,omitempty"`
	Presupuesto  string  `json:"presupuesto,omitempty"`
	FechaInicio  string  `json:"fechaInicio,omitempty"`
	IPOrigen     string  `json:"ipOrigen"`
	PuntajeSpam  float64 `json:"puntajeSpam"`
	Estado       string  `json:"estado"`
	CreatedAt    string  `json:"createdAt"`
}

// CambiarEstadoRequest cuerpo del PATCH de triage.
type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente procesada respondida"`
}
