// Command server runs the Plantify backend: the post-enrichment pipeline
// exposed over HTTP plus health and notification read endpoints.
//
// Configuration comes from ENV (and an optional CONFIG_PATH YAML file);
// see internal/config. Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/plantify/plantify-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
