// Command server runs the standardization HTTP API. It serves spreadsheet
// upload endpoints and shuts down gracefully on SIGINT/SIGTERM.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ohana-solucoes/padroniza-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
