package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/page-router/internal/config"
)

func main() {
	boot := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		boot.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	srv, err := NewServer(cfg, os.Stdout)
	if err != nil {
		boot.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		boot.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		boot.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
