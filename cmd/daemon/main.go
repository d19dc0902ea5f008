package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/paso/internal/config"
	"github.com/thenoetrevino/paso/internal/daemon"
	"github.com/thenoetrevino/paso/internal/events"
	"github.com/thenoetrevino/paso/internal/logging"
)

func main() {
	socketPath := flag.String("socket", events.DefaultSocketPath(), "Unix socket to listen on")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	// Share the log level with the CLI but write to stderr, where systemd collects it
	level := "info"
	if cfg, err := config.Load(); err == nil {
		level = cfg.Logging.Level
	}
	logger := logging.New(os.Stderr, level)

	server, err := daemon.NewServer(*socketPath, logger)
	if err != nil {
		logger.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	logger.Info("paso daemon starting", "socket_path", *socketPath, "pid", os.Getpid())

	if err := server.Start(ctx); err != nil {
		logger.Error("daemon error", "error", err)
		os.Exit(1)
	}

	logger.Info("paso daemon stopped", "metrics", server.Metrics().Snapshot())
}
