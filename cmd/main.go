package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dnf_market/internal/application"
	"dnf_market/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		slog.Default().Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}
