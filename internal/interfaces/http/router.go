package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/auth"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/content"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/triage"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ContentUC  *content.UseCase
	SubmitUC   *leads.SubmitUseCase
	TriageUC   *triage.UseCase
	AuthUC     *auth.UseCase
	Store      leads.RateLimitStore
	FormMax    int
	FormWindow time.Duration
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Contenido (público, solo lectura)
	contentHandler := NewContentHandler(deps.ContentUC)
	api.Get("/servicios", contentHandler.ListServicios)
	api.Get("/servicios/:slug", contentHandler.GetServicio)
	api.Get("/proyectos", contentHandler.ListProyectos)
	api.Get("/proyectos/:slug", contentHandler.GetProyecto)
	api.Get("/quienes-somos", contentHandler.GetQuienesSomos)
	api.Get("/parametros/:clave", contentHandler.GetParametro)

	// Formularios (público, con ventana deslizante por tipo e IP)
	leadsHandler := NewLeadsHandler(deps.SubmitUC)
	api.Post("/contacto",
		FormRateLimiter(deps.Store, entity.TipoContacto, deps.FormMax, deps.FormWindow, deps.Log),
		leadsHandler.Contacto,
	)
	api.Post("/cotizacion",
		FormRateLimiter(deps.Store, entity.TipoCotizacion, deps.FormMax, deps.FormWindow, deps.Log),
		leadsHandler.Cotizacion,
	)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Triage administrativo (requiere Bearer Token con rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RolAdmin))
	adminHandler := NewAdminHandler(deps.TriageUC)
	admin.Get("/solicitudes", adminHandler.List)
	admin.Patch("/solicitudes/:id/estado", adminHandler.CambiarEstado)
}
