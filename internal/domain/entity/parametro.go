package entity

// Parametro valor de configuración publicable del sitio (teléfono de contacto,
// horario, etc.). Se siembra al desplegar y se lee con frecuencia.
type Parametro struct {
	Clave       string
	Valor       string
	Descripcion string
}
