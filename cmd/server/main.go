package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"belegplan/internal/audit"
	"belegplan/internal/catalog"
	"belegplan/internal/extraction/handler"
	householdservice "belegplan/internal/household/service"
	householdstore "belegplan/internal/household/store"
	plancache "belegplan/internal/planner/cache"
	planservice "belegplan/internal/planner/service"
	"belegplan/internal/platform/config"
	"belegplan/internal/platform/httpserver"
	"belegplan/internal/platform/logger"
	"belegplan/internal/platform/metrics"
	"belegplan/internal/platform/middleware"
	platformredis "belegplan/internal/platform/redis"
	"belegplan/internal/platform/token"
	structservice "belegplan/internal/structure/service"
	structstore "belegplan/internal/structure/store"
)

// main wires the planning engine together: rule table, household stores,
// planner, structure lifecycle, and the HTTP surface. Business logic lives in
// the internal packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	table, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Error("loading rule table failed", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("opening database failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connecting to redis failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	auditor := audit.NewPublisher(audit.NewPostgresStore(db), audit.WithLogger(log))

	loader := householdservice.NewLoader(
		householdstore.NewPostgresRosterStore(db),
		householdstore.NewPostgresProfileStore(db),
		householdservice.WithLogger(log),
		householdservice.WithMetrics(m),
	)

	planOpts := []planservice.Option{
		planservice.WithLogger(log),
		planservice.WithMetrics(m),
		planservice.WithAuditPublisher(auditor),
	}
	if redisClient != nil {
		planOpts = append(planOpts, planservice.WithCache(plancache.NewRedisCache(redisClient.Client, cfg.PlanCacheTTL)))
	} else {
		planOpts = append(planOpts, planservice.WithCache(plancache.NewInMemoryCache(cfg.PlanCacheTTL)))
	}
	planner := planservice.New(loader, table, planOpts...)

	structures := structservice.New(
		planner,
		table,
		structstore.NewPostgresStructureStore(db),
		structstore.NewPostgresInventoryStore(db),
		structservice.WithLogger(log),
		structservice.WithMetrics(m),
		structservice.WithAuditPublisher(auditor),
	)

	tokens := token.NewService(cfg.JWTSigningKey, "belegplan")
	extractionHandler := handler.New(planner, structures, log)

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(tokens, log))
		extractionHandler.Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting belegplan", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("belegplan stopped")
}

// loadCatalog uses the file-based rule table when configured and falls back
// to the built-in one.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.MustDefault(), nil
	}
	return catalog.Load(path)
}
