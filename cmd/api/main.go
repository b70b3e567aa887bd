package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaughan-dsouza/jobboard/internal/config"
	"github.com/vaughan-dsouza/jobboard/internal/db"
	"github.com/vaughan-dsouza/jobboard/internal/function"
	"github.com/vaughan-dsouza/jobboard/internal/handlers"
	"github.com/vaughan-dsouza/jobboard/internal/logger"
	"github.com/vaughan-dsouza/jobboard/internal/middleware"
	"github.com/vaughan-dsouza/jobboard/internal/repository/postgres"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// logger needs the environment, so report config problems plainly
		zap.Must(zap.NewProduction()).Fatal("load config", zap.Error(err))
	}

	log := logger.New(cfg.Environment)
	defer log.Sync()

	if envErr != nil {
		log.Debug("no .env file found")
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, db.PoolOptions{
		MaxOpen:     cfg.DBMaxOpen,
		MaxIdle:     cfg.DBMaxIdle,
		MaxLifetime: cfg.DBMaxLifetime,
	})
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer dbConn.Close()

	h := handlers.NewHandler(postgres.NewRepositories(dbConn, cfg.Schema), handlers.Options{
		JWTSecret:    cfg.JWTSecret,
		MaxPageSize:  cfg.MaxPageSize,
		ExposeErrors: !cfg.IsProduction(),
	}, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(h, dbConn, reg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("schema", cfg.Schema))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

func newRouter(h *handlers.Handler, dbConn *sqlx.DB, reg *prometheus.Registry, log *zap.Logger) http.Handler {
	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := dbConn.PingContext(ctx); err != nil {
			function.Write(w, function.Error(http.StatusServiceUnavailable, "database unavailable"))
			return
		}
		function.Write(w, function.JSON(http.StatusOK, map[string]any{"success": true}, nil))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Functions
	r.Group(func(r chi.Router) {
		r.Use(metrics.Instrument)

		r.Handle("/api", function.NewAdapter(h.API.Handle, log))
		r.Handle("/auth", function.NewAdapter(h.Accounts.Handle, log))
	})

	return r
}
