package content

import (
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/repository"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/logger"
)

// parametrosPublicos allow-list de claves expuestas por la API pública.
// Cualquier clave fuera de esta lista es 403, exista o no.
var parametrosPublicos = map[string]struct{}{
	"telefono_contacto": {},
	"email_contacto":    {},
	"whatsapp":          {},
	"direccion_oficina": {},
	"horario_atencion":  {},
}

// UseCase lecturas de contenido del sitio. Todas las lecturas son fail-empty:
// un error de almacenamiento se registra y se devuelve como listado vacío o
// como no encontrado, nunca como error hacia arriba. Para los llamadores
// "vacío" es ambiguo entre sin datos y almacén caído.
type UseCase struct {
	servicios  repository.ServicioRepository
	proyectos  repository.ProyectoRepository
	quienes    repository.QuienesSomosRepository
	parametros repository.ParametroRepository
	log        *logger.Logger
}

// NewUseCase construye las lecturas de contenido.
func NewUseCase(
	servicios repository.ServicioRepository,
	proyectos repository.ProyectoRepository,
	quienes repository.QuienesSomosRepository,
	parametros repository.ParametroRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{servicios: servicios, proyectos: proyectos, quienes: quienes, parametros: parametros, log: log}
}

// normalizarIdioma acepta ES/EN en cualquier capitalización; default ES.
func normalizarIdioma(idioma string) string {
	if idioma == entity.IdiomaEN || idioma == "en" {
		return entity.IdiomaEN
	}
	return entity.IdiomaES
}

// ListServicios devuelve los servicios activos del idioma, en orden de despliegue.
func (uc *UseCase) ListServicios(idioma string) []*dto.ServicioResponse {
	list, err := uc.servicios.ListActivos(normalizarIdioma(idioma))
	if err != nil {
		uc.log.Error().Err(err).Str("idioma", idioma).Msg("listar servicios falló; devolviendo vacío")
		return []*dto.ServicioResponse{}
	}
	out := make([]*dto.ServicioResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServicioResponse(s, false))
	}
	return out
}

// GetServicio devuelve el servicio activo con cuerpo completo o domain.ErrNotFound.
func (uc *UseCase) GetServicio(slug, idioma string) (*dto.ServicioResponse, error) {
	s, err := uc.servicios.GetBySlug(slug, normalizarIdioma(idioma))
	if err != nil {
		uc.log.Error().Err(err).Str("slug", slug).Msg("leer servicio falló; respondiendo no encontrado")
		return nil, domain.ErrNotFound
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toServicioResponse(s, true), nil
}

// ListProyectos devuelve el portafolio activo, más reciente primero.
func (uc *UseCase) ListProyectos() []*dto.ProyectoResponse {
	list, err := uc.proyectos.ListActivos()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar proyectos falló; devolviendo vacío")
		return []*dto.ProyectoResponse{}
	}
	out := make([]*dto.ProyectoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProyectoResponse(p, false))
	}
	return out
}

// GetProyecto devuelve el proyecto activo con cuerpo completo o domain.ErrNotFound.
func (uc *UseCase) GetProyecto(slug string) (*dto.ProyectoResponse, error) {
	p, err := uc.proyectos.GetBySlug(slug)
	if err != nil {
		uc.log.Error().Err(err).Str("slug", slug).Msg("leer proyecto falló; respondiendo no encontrado")
		return nil, domain.ErrNotFound
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProyectoResponse(p, true), nil
}

// GetQuienesSomos devuelve la página institucional activa o domain.ErrNotFound.
func (uc *UseCase) GetQuienesSomos() (*dto.QuienesSomosResponse, error) {
	q, err := uc.quienes.GetActivo()
	if err != nil {
		uc.log.Error().Err(err).Msg("leer quiénes somos falló; respondiendo no encontrado")
		return nil, domain.ErrNotFound
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.QuienesSomosResponse{
		Titulo:          q.Titulo,
		Contenido:       q.Contenido,
		ImagenEquipoURL: q.ImagenEquipoURL,
	}, nil
}

// GetParametroPublico devuelve el valor de una clave del allow-list.
// Clave fuera del allow-list: domain.ErrForbidden. Clave permitida pero sin
// fila: domain.ErrNotFound.
func (uc *UseCase) GetParametroPublico(clave string) (*dto.ParametroResponse, error) {
	if _, ok := parametrosPublicos[clave]; !ok {
		return nil, domain.ErrForbidden
	}
	p, err := uc.parametros.GetByClave(clave)
	if err != nil {
		uc.log.Error().Err(err).Str("clave", clave).Msg("leer parámetro falló; respondiendo no encontrado")
		return nil, domain.ErrNotFound
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ParametroResponse{Clave: p.Clave, Valor: p.Valor}, nil
}

func toServicioResponse(s *entity.Servicio, conCuerpo bool) *dto.ServicioResponse {
	out := &dto.ServicioResponse{
		Slug:             s.Slug,
		Idioma:           s.Idioma,
		Titulo:           s.Titulo,
		DescripcionCorta: s.DescripcionCorta,
		ImagenURL:        s.ImagenURL,
		Etiquetas:        s.Etiquetas,
		Orden:            s.Orden,
	}
	if out.Etiquetas == nil {
		out.Etiquetas = []string{}
	}
	if conCuerpo {
		out.Contenido = s.Contenido
	}
	return out
}

func toProyectoResponse(p *entity.Proyecto, conCuerpo bool) *dto.ProyectoResponse {
	out := &dto.ProyectoResponse{
		Slug:             p.Slug,
		Titulo:           p.Titulo,
		ImagenPortadaURL: p.ImagenPortadaURL,
		Galeria:          p.Galeria,
		ServicioSlug:     p.ServicioSlug,
	}
	if out.Galeria == nil {
		out.Galeria = []string{}
	}
	if p.FechaFinalizacion != nil {
		out.FechaFinalizacion = p.FechaFinalizacion.Format("2006-01-02")
	}
	if conCuerpo {
		out.Contenido = p.Contenido
	}
	return out
}
