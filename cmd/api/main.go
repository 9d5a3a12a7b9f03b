package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/ferchoba/ProyRemodelacion-sub000/internal/application/auth"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/content"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/triage"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/infrastructure/captcha"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/infrastructure/mailer"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/infrastructure/postgres"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/infrastructure/ratelimit"
	httpRouter "github.com/ferchoba/ProyRemodelacion-sub000/internal/interfaces/http"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/config"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	parametroRepo := postgres.NewParametroRepository(pool)
	servicioRepo := postgres.NewServicioRepository(pool)
	proyectoRepo := postgres.NewProyectoRepository(pool)
	quienesRepo := postgres.NewQuienesSomosRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	// Lecturas de contenido
	contentUC := content.NewUseCase(servicioRepo, proyectoRepo, quienesRepo, parametroRepo, log)

	// Pipeline de formularios: dos tiers reCAPTCHA + SMTP
	verificadorInvisible := captcha.NewClient(cfg.Captcha.SecretV3, cfg.Captcha.VerifyURL)
	verificadorInteractivo := captcha.NewClient(cfg.Captcha.SecretV2, cfg.Captcha.VerifyURL)
	guard := leads.NewSpamGuard(verificadorInvisible, verificadorInteractivo, cfg.Captcha.MinScore, log)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	submitUC := leads.NewSubmitUseCase(solicitudRepo, guard, smtpMailer, log)

	// Triage y auth administrativos
	triageUC := triage.NewUseCase(solicitudRepo)
	authUC := appauth.NewUseCase(usuarioRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	store := ratelimit.NewMemoryStore()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(httpRouter.GlobalRateLimiter(
		cfg.RateLimit.GlobalMax,
		time.Duration(cfg.RateLimit.GlobalWindowSecs)*time.Second,
	))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ContentUC:  contentUC,
		SubmitUC:   submitUC,
		TriageUC:   triageUC,
		AuthUC:     authUC,
		Store:      store,
		FormMax:    cfg.RateLimit.FormMax,
		FormWindow: time.Duration(cfg.RateLimit.FormWindowSeconds) * time.Second,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
