package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"guestchat/backend/internal/app"
	"guestchat/backend/internal/cli"
	"guestchat/backend/internal/config"
	"guestchat/backend/internal/telemetry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var logFile string
	flag.StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "History store (sqlite|bolt)")
	flag.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database path")
	flag.StringVar(&cfg.BoltPath, "bolt", cfg.BoltPath, "Bolt database path")
	flag.StringVar(&cfg.TunnelURL, "tunnel", cfg.TunnelURL, "Base URL of the chat tunnel")
	flag.BoolVar(&cfg.SyntheticFallback, "synthetic", cfg.SyntheticFallback, "Answer locally when the tunnel is unreachable")
	flag.StringVar(&logFile, "log-file", "logs/guestchat-cli.log", "Log file (the terminal is kept for the chat)")
	flag.Parse()
	cfg.TunnelURL = strings.TrimRight(cfg.TunnelURL, "/")

	// Log only to file, not to the terminal.
	logWriter := telemetry.RotatingFile(logFile)
	defer logWriter.Close()
	slog.SetDefault(slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: slog.LevelInfo})))

	a, err := app.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize guest chat: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewREPL(a.Service, os.Stdin, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
