package entity

import "time"

// Idiomas soportados para el contenido del sitio.
const (
	IdiomaES = "ES"
	IdiomaEN = "EN"
)

// Servicio servicio ofrecido por la empresa (remodelación, obra gris, etc.).
// El contenido se duplica por idioma: la pareja (Slug, Idioma) es única.
// Nunca se borra; se desactiva con Activo.
type Servicio struct {
	Slug             string
	Idioma           string // "ES" | "EN"
	Titulo           string
	DescripcionCorta string
	Contenido        string // cuerpo largo en markdown/HTML
	ImagenURL        string
	Etiquetas        []string // persistidas como JSON en una columna de texto
	Orden            int      // orden de despliegue explícito
	Activo           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
