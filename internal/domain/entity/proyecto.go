package entity

import "time"

// Proyecto obra terminada publicada en el portafolio. Slug único global.
// ServicioSlug es una referencia blanda: puede apuntar a un servicio
// inexistente o desactivado sin romper las lecturas públicas (el chequeo de
// huérfanos es informativo, no estructural).
type Proyecto struct {
	Slug              string
	Titulo            string
	Contenido         string
	ImagenPortadaURL  string
	Galeria           []string // URLs, persistidas como JSON en texto
	ServicioSlug      string   // vacío = sin servicio asociado
	FechaFinalizacion *time.Time
	Activo            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
