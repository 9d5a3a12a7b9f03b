package dto

// ServicioResponse servicio publicado, listo para render.
type ServicioResponse struct {
	Slug             string   `json:"slug"`
	Idioma           string   `json:"idioma"`
	Titulo           string   `json:"titulo"`
	DescripcionCorta string   `json:"descripcionCorta"`
	Contenido        string   `json:"contenido,omitempty"`
	ImagenURL        string   `json:"imagenUrl"`
	Etiquetas        []string `json:"etiquetas"`
	Orden            int      `json:"orden"`
}

// ProyectoResponse proyecto del portafolio, listo para render.
type ProyectoResponse struct {
	Slug              string   `json:"slug"`
	Titulo            string   `json:"titulo"`
	Contenido         string   `json:"contenido,omitempty"`
	ImagenPortadaURL  string   `json:"imagenPortadaUrl"`
	Galeria           []string `json:"galeria"`
	ServicioSlug      string   `json:"servicioSlug,omitempty"`
	FechaFinalizacion string   `json:"fechaFinalizacion,omitempty"`
}

// QuienesSomosResponse contenido de la página institucional.
type QuienesSomosResponse struct {
	Titulo          string `json:"titulo"`
	Contenido       string `json:"contenido"`
	ImagenEquipoURL string `json:"imagenEquipoUrl,omitempty"`
}

// ParametroResponse valor público de configuración.
type ParametroResponse struct {
	Clave string `json:"clave"`
	Valor string `json:"valor"`
}
