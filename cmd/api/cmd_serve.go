package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutriguide/internal/advice"
	"nutriguide/internal/handler"
	"nutriguide/internal/session"
	"nutriguide/internal/storage"
	"nutriguide/internal/wellness"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// serveCmd runs the web server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form, dashboard and JSON API",
	Long: `Starts the HTTP server on PORT and stops gracefully on SIGINT/SIGTERM.

Settings:
  APP_ENV                development | production
  PORT                   listen port (8080)
  DB_PATH                SQLite file (./nutriguide.db)
  SESSION_SECRET         HMAC key for session tokens (random when unset)
  ALLOWED_ORIGINS        comma separated CORS origins (*)
  DEBUG_KEY              enables GET /api/profiles when set
  BACKGROUND_IMAGE       optional page background (./assets/background.jpg)
  ADVICE_CATALOG_PATH    optional YAML advice catalog overriding the built-in one
  LOG_LEVEL              debug | info | warn | error (info)
  RATE_LIMIT_PER_MINUTE  submissions per client IP per minute (30)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := session.NewManager(cfg.SessionSecret, session.DefaultTTL)
	if err != nil {
		return err
	}
	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}

	svc := wellness.NewService(store, advice.NewEngine(loadCatalog(cfg.AdviceCatalogPath)), logger)
	h := handler.New(handler.Options{
		Service:         svc,
		Sessions:        sessions,
		DB:              store,
		Logger:          logger,
		BackgroundImage: cfg.BackgroundImage,
		SecureCookie:    cfg.IsProduction(),
	})
	router := handler.NewRouter(h, handler.RouterOptions{
		AllowedOrigins:     cfg.Origins(),
		DebugKey:           cfg.DebugKey,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// loadCatalog returns the override catalog at path, or nil (the built-in
// catalog) when no override is configured or it cannot be used.
func loadCatalog(path string) *advice.Catalog {
	if path == "" {
		return nil
	}
	c, err := advice.LoadCatalogFile(path)
	if err != nil {
		logger.Warn("advice catalog override not usable, using built-in catalog",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	logger.Info("advice catalog loaded", zap.String("path", path))
	return c
}
