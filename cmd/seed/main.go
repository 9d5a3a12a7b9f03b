// seed aplica el esquema y siembra el contenido inicial del sitio.
//
// Uso: go run ./cmd/seed [-dir internal/infrastructure/postgres/migrations]
// Idempotente: el esquema usa IF NOT EXISTS y los datos ON CONFLICT DO NOTHING.
// Si están definidos ADMIN_EMAIL y ADMIN_PASSWORD crea además la cuenta de
// triage. Al final reporta proyectos con referencia de servicio huérfana
// (chequeo informativo, nunca falla por eso).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/infrastructure/postgres"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/config"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/slug"
)

// servicioSeed fixture de servicio; el slug se deriva del título en español
// para que ambos idiomas compartan la misma URL.
type servicioSeed struct {
	TituloES, TituloEN string
	CortaES, CortaEN   string
	Imagen             string
	Etiquetas          []string
	Orden              int
}

var serviciosSeed = []servicioSeed{
	{
		TituloES:  "Remodelación de Cocinas",
		TituloEN:  "Kitchen Remodeling",
		CortaES:   "Diseño y ejecución integral de cocinas modernas.",
		CortaEN:   "End-to-end design and build of modern kitchens.",
		Imagen:    "/images/servicios/cocinas.jpg",
		Etiquetas: []string{"cocinas", "acabados", "mobiliario"},
		Orden:     1,
	},
	{
		TituloES:  "Remodelación de Baños",
		TituloEN:  "Bathroom Remodeling",
		CortaES:   "Renovación completa de baños con enchapes y griferías.",
		CortaEN:   "Full bathroom renovation, tiling and fixtures.",
		Imagen:    "/images/servicios/banos.jpg",
		Etiquetas: []string{"baños", "enchapes"},
		Orden:     2,
	},
	{
		TituloES:  "Obra Gris y Estructura",
		TituloEN:  "Structural Work",
		CortaES:   "Ampliaciones, muros y reforzamiento estructural.",
		CortaEN:   "Extensions, walls and structural reinforcement.",
		Imagen:    "/images/servicios/obra-gris.jpg",
		Etiquetas: []string{"estructura", "ampliaciones"},
		Orden:     3,
	},
}

var parametrosSeed = map[string]string{
	"telefono_contacto": "+573001234567",
	"email_contacto":    "contacto@remodelacion.example",
	"whatsapp":          "+573001234567",
	"direccion_oficina": "Cra 7 # 71-21, Bogotá",
	"horario_atencion":  "Lun-Vie 8:00-17:00",
}

func main() {
	dir := flag.String("dir", "internal/infrastructure/postgres/migrations", "directorio con los .sql de esquema")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := aplicarEsquema(ctx, pool, *dir); err != nil {
		fail("aplicar esquema: %v", err)
	}
	if err := sembrarContenido(ctx, pool); err != nil {
		fail("sembrar contenido: %v", err)
	}
	if err := crearAdmin(pool); err != nil {
		fail("crear cuenta admin: %v", err)
	}
	reportarHuerfanos(pool)

	fmt.Println("seed completado")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// aplicarEsquema ejecuta los .sql del directorio en orden de nombre.
func aplicarEsquema(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(paths)
	for _, p := range paths {
		sql, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("leer %s: %w", p, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("ejecutar %s: %w", p, err)
		}
		fmt.Printf("aplicado %s\n", filepath.Base(p))
	}
	return nil
}

func sembrarContenido(ctx context.Context, pool *pgxpool.Pool) error {
	for clave, valor := range parametrosSeed {
		_, err := pool.Exec(ctx, `
			INSERT INTO parametros (clave, valor) VALUES ($1, $2)
			ON CONFLICT (clave) DO NOTHING`, clave, valor)
		if err != nil {
			return fmt.Errorf("parametro %s: %w", clave, err)
		}
	}

	for _, s := range serviciosSeed {
		sl := slug.Generate(s.TituloES)
		filas := []struct {
			idioma, titulo, corta string
		}{
			{entity.IdiomaES, s.TituloES, s.CortaES},
			{entity.IdiomaEN, s.TituloEN, s.CortaEN},
		}
		for _, f := range filas {
			_, err := pool.Exec(ctx, `
				INSERT INTO servicios (slug, idioma, titulo, descripcion_corta, imagen_url, etiquetas, orden)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (slug, idioma) DO NOTHING`,
				sl, f.idioma, f.titulo, f.corta, s.Imagen, encodeEtiquetas(s.Etiquetas), s.Orden)
			if err != nil {
				return fmt.Errorf("servicio %s (%s): %w", sl, f.idioma, err)
			}
		}
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO quienes_somos (titulo, contenido, imagen_equipo_url)
		SELECT 'Quiénes Somos',
		       'Somos una empresa de remodelación con más de una década transformando hogares y oficinas.',
		       '/images/equipo.jpg'
		WHERE NOT EXISTS (SELECT 1 FROM quienes_somos WHERE activo = TRUE)`)
	if err != nil {
		return fmt.Errorf("quienes_somos: %w", err)
	}
	return nil
}

// encodeEtiquetas serializa la lista al JSON de la columna de texto.
func encodeEtiquetas(etiquetas []string) string {
	out := "["
	for i, e := range etiquetas {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", e)
	}
	return out + "]"
}

// crearAdmin crea la cuenta de triage si ADMIN_EMAIL y ADMIN_PASSWORD existen.
func crearAdmin(pool *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("ADMIN_EMAIL/ADMIN_PASSWORD no definidos; omitiendo cuenta admin")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	repo := postgres.NewUsuarioRepository(pool)
	err = repo.Create(&entity.Usuario{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       "Administrador",
		Rol:          entity.RolAdmin,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == domain.ErrDuplicate {
		fmt.Printf("cuenta admin %s ya existe\n", email)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("cuenta admin %s creada\n", email)
	return nil
}

// reportarHuerfanos lista proyectos cuya referencia de servicio no resuelve.
func reportarHuerfanos(pool *pgxpool.Pool) {
	repo := postgres.NewProyectoRepository(pool)
	huerfanos, err := repo.ListHuerfanos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chequeo de huérfanos falló: %v\n", err)
		return
	}
	if len(huerfanos) == 0 {
		fmt.Println("sin proyectos huérfanos")
		return
	}
	for _, p := range huerfanos {
		fmt.Printf("proyecto huérfano: %s -> servicio %q inexistente o inactivo\n", p.Slug, p.ServicioSlug)
	}
}
