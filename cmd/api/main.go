package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avelychko/users-api/internal/modules/user"
	"github.com/avelychko/users-api/internal/platform/config"
	"github.com/avelychko/users-api/internal/platform/httpserver"
	"github.com/avelychko/users-api/internal/platform/logger"
	"github.com/avelychko/users-api/internal/platform/metrics"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	var userRepo user.Repository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open database connection")
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("failed to ping database")
		}
		log.Info().Msg("connected to the database")
		userRepo = user.NewPostgresRepository(db)
	} else {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
		userRepo = user.NewInMemoryRepository()
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	m := metrics.New()
	userService := user.NewService(userRepo, cfg.MinUserAge)
	user.NewHandler(userService, m, log).RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info().Str("addr", cfg.Addr).Int("min_age", cfg.MinUserAge).Msg("users API server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
}
