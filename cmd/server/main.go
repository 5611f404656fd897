package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erkebulan/recipeshare/config"
	"github.com/erkebulan/recipeshare/internal/auth"
	"github.com/erkebulan/recipeshare/internal/health"
	"github.com/erkebulan/recipeshare/internal/infrastructure/postgres"
	ctxlog "github.com/erkebulan/recipeshare/internal/log"
	"github.com/erkebulan/recipeshare/internal/metrics"
	httptransport "github.com/erkebulan/recipeshare/internal/transport/http"
	"github.com/erkebulan/recipeshare/internal/transport/http/handler"
	"github.com/erkebulan/recipeshare/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		stop()
		log.Fatalf("migrations: %v", err)
	}

	connector := postgres.NewConnector(cfg.DatabaseURL)
	pool, err := connector.Pool(ctx)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer connector.Close()

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret))

	// Users
	userRepo := postgres.NewUserRepository(pool)
	authUsecase := usecase.NewAuthUsecase(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Recipes
	recipeRepo := postgres.NewRecipeRepository(pool)
	recipeUsecase := usecase.NewRecipeUsecase(recipeRepo)
	recipeHandler := handler.NewRecipeHandler(recipeUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authHandler, recipeHandler, tokens),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
