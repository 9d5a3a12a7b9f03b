package entity

import "time"

// Tipos de solicitud recibidos por los formularios públicos.
const (
	TipoContacto   = "contacto"
	TipoCotizacion = "cotizacion"
)

// Estados de triage de una solicitud. Solo avanzan hacia adelante:
// pendiente -> procesada -> respondida.
const (
	EstadoPendiente  = "pendiente"
	EstadoProcesada  = "procesada"
	EstadoRespondida = "respondida"
)

// Solicitud envío validado de un formulario de contacto o cotización.
// La crea únicamente el pipeline de envíos; el triage administrativo solo
// muta Estado. Nunca se borra fuera de tests.
type Solicitud struct {
	ID           string // UUID
	Tipo         string // TipoContacto | TipoCotizacion
	Nombre       string
	Email        string
	Telefono     string // normalizado con prefijo +57
	Mensaje      string // mensaje de contacto o descripción del proyecto
	TipoServicio string // solo cotización
	Presupuesto  string // rango libre, solo cotización
	FechaInicio  *time.Time
	IPOrigen     string
	PuntajeSpam  float64 // score del desafío invisible; -1 si solo pasó el interactivo
	Estado       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PuedeTransicionar indica si el paso de estado solicitado es un avance válido.
func (s *Solicitud) PuedeTransicionar(nuevo string) bool {
	switch s.Estado {
	case EstadoPendiente:
		return nuevo == EstadoProcesada || nuevo == EstadoRespondida
	case EstadoProcesada:
		return nuevo == EstadoRespondida
	default:
		return false
	}
}
