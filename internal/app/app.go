package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/plantify/plantify-backend/internal/adapter/captioner"
	"github.com/plantify/plantify-backend/internal/adapter/postgres"
	notificationrepo "github.com/plantify/plantify-backend/internal/adapter/postgres/notification"
	postrepo "github.com/plantify/plantify-backend/internal/adapter/postgres/post"
	profilerepo "github.com/plantify/plantify-backend/internal/adapter/postgres/profile"
	"github.com/plantify/plantify-backend/internal/config"
	"github.com/plantify/plantify-backend/internal/service/enrichment"
	"github.com/plantify/plantify-backend/internal/service/notification"
	"github.com/plantify/plantify-backend/internal/transport/middleware"
	"github.com/plantify/plantify-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, wires services and handlers, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting plantify backend",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	posts := postrepo.New(pool)
	profiles := profilerepo.New(pool)
	notifications := notificationrepo.New(pool)

	captionClient := captioner.New(cfg.Caption, logger)

	enrichSvc := enrichment.NewService(logger, captionClient, posts, profiles, notifications)
	notifSvc := notification.NewService(logger, notifications)

	processHandler := rest.NewProcessPostHandler(enrichSvc, logger)
	notifHandler := rest.NewNotificationHandler(notifSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /functions/v1/process-new-post", processHandler.ProcessNewPost)
	mux.HandleFunc("GET /notifications", notifHandler.List)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	// CORS sits before the rate limiter so preflight requests are never
	// counted against the caller's budget.
	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RatePerMinute > 0 {
		mws = append(mws, limiter.Limit(cfg.Server.RatePerMinute))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("http server listening", slog.String("addr", srv.Addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
