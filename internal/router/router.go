package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "dog-licensing/docs"
	mem "dog-licensing/internal/adapters/storage/memory"
	pg "dog-licensing/internal/adapters/storage/postgres"
	"dog-licensing/internal/domain/dogs"
	"dog-licensing/internal/domain/licensing"
	"dog-licensing/internal/domain/owners"
	"dog-licensing/internal/middleware"
	"dog-licensing/internal/platform/logger"
	"dog-licensing/internal/platform/metrics"
	"dog-licensing/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: política tarifaria; cero => DefaultFeeSchedule.
	Fees licensing.FeeSchedule

	// Opcional: nil => logger desde env.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.HTTPMetricsMiddleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		ownersRepo   owners.Repository
		dogsRepo     dogs.Repository
		licensesRepo licensing.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to in-memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		ownersRepo = pg.NewOwnersRepo(db)
		dogsRepo = pg.NewDogsRepo(db)
		licensesRepo = pg.NewLicensesRepo(db)
		log.Info("storage ready", map[string]any{"adapter": "postgres"})
	} else {
		ownersRepo = mem.NewOwnersRepo()
		dogsRepo = mem.NewDogsRepo()
		licensesRepo = mem.NewLicensesRepo()
		log.Info("storage ready", map[string]any{"adapter": "memory"})
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownersRepo)
	dogsSvc := dogs.NewService(dogsRepo)
	licensingSvc := licensing.NewService(licensesRepo, dogsSvc, ownersSvc, opts.Fees)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc)
	licensing.RegisterRoutes(r, licensingSvc)

	return r
}
