package entity

// QuienesSomos contenido de la página "quiénes somos". Se espera una sola
// fila activa a la vez.
type QuienesSomos struct {
	ID              int64
	Titulo          string
	Contenido       string
	ImagenEquipoURL string
	Activo          bool
}
