package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"guestchat/backend/internal/api"
	"guestchat/backend/internal/config"
	"guestchat/backend/internal/database"
	"guestchat/backend/internal/repository"
	"guestchat/backend/internal/service"
	"guestchat/backend/internal/telemetry"
	"guestchat/backend/internal/tunnel"
)

const tunnelProbeInterval = 3 * time.Second

// App holds the wired gateway. Close releases the store.
type App struct {
	Config  *config.Config
	Store   io.Closer
	Cascade *tunnel.Cascade
	Service *service.GuestChatService
	Server  *http.Server
}

// NewApp opens the configured store and builds the service and HTTP server on
// top of it.
func NewApp(cfg *config.Config) (*App, error) {
	repo, store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	cascade := tunnel.NewClient(tunnel.Options{
		BaseURL:            cfg.TunnelURL,
		ChatPath:           cfg.TunnelChatPath,
		FallbackPath:       cfg.TunnelFallbackPath,
		Origin:             cfg.TunnelOrigin,
		Timeout:            cfg.TunnelTimeout,
		FlushInterval:      cfg.StreamFlushInterval,
		SyntheticFallback:  cfg.SyntheticFallback,
		SyntheticWordDelay: cfg.SyntheticWordDelay,
	})
	slog.Info("Tunnel cascade configured", "url", cfg.TunnelURL, "strategies", cascade.Strategies())

	guestService := service.NewGuestChatService(repo, cascade, cfg.WelcomeMessage)
	router := api.NewRouter(api.NewGuestHandler(guestService))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{
		Config:  cfg,
		Store:   store,
		Cascade: cascade,
		Service: guestService,
		Server:  server,
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	closeLog := setupLogger(cfg.LogLevel, cfg.LogFile, os.Stdout)
	defer closeLog()

	logConfigSource()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{Dir: cfg.TelemetryDir})
		if err != nil {
			slog.Error("Failed to initialize telemetry", "error", err)
			return 1
		}
		defer shutdown()
		slog.Info("Telemetry enabled", "dir", cfg.TelemetryDir)
	}

	a, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("Failed to close store", "error", err)
		}
	}()

	go probeTunnel(ctx, cfg.TunnelURL, tunnelProbeInterval)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "store", cfg.StoreDriver)
		serveErr <- a.Server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

// openStore opens the store selected by STORE_DRIVER.
func openStore(cfg *config.Config) (repository.Repository, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.DriverBolt:
		db, err := database.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open bolt store: %w", err)
		}
		repo, err := repository.NewBoltRepository(db, cfg.HistoryLimit)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		slog.Info("Successfully opened bolt store.", "path", cfg.BoltPath)
		return repo, db, nil
	default:
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		return repository.NewSQLiteRepository(db, cfg.HistoryLimit), db, nil
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

// setupLogger installs a JSON logger on out, mirrored to a rotated file when
// logFile is set. The returned func closes that file.
func setupLogger(logLevel, logFile string, out io.Writer) func() {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	closeFn := func() {}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o750); err != nil {
			slog.Warn("Failed to create log directory, logging to stdout only", "file", logFile, "error", err)
		} else {
			file := telemetry.RotatingFile(logFile)
			out = io.MultiWriter(out, file)
			closeFn = func() { _ = file.Close() }
		}
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return closeFn
}

// probeTunnel logs once the tunnel answers. It never blocks startup: the
// cascade copes with an unreachable endpoint on every send.
func probeTunnel(ctx context.Context, tunnelURL string, interval time.Duration) bool {
	slog.Info("Probing chat tunnel...", "url", tunnelURL)
	client := &http.Client{Timeout: 2 * time.Second}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, tunnelURL, nil)
		if err != nil {
			slog.Warn("Invalid tunnel URL, probe stopped", "url", tunnelURL, "error", err)
			return false
		}
		req.Header.Set("ngrok-skip-browser-warning", "true")

		resp, err := client.Do(req)
		if err == nil {
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in tunnel probe", "error", bErr)
			}
			slog.Info("Chat tunnel is reachable.", "status", resp.StatusCode)
			return true
		}
		slog.Debug("Chat tunnel not reachable yet, retrying...", "url", tunnelURL, "error", err)

		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}
