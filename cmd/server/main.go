// Command server runs the community HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables. SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/workchatseattle/community-backend/internal/app"
	"github.com/workchatseattle/community-backend/internal/config"
)

func main() {
	flag.Usage = config.Usage(os.Stderr, "Usage: server\n\nEnvironment:")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
