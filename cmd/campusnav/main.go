// Command campusnav serves campus routes over HTTP.
//
// Configuration comes from the environment (see package config); an optional
// .env file in the working directory is read first.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/api"
	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/logger"
	"github.com/katalvlaran/campusnav/navigator"
)

const shutdownTimeout = 15 * time.Second

var version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns its exit status: 0 on success, 1 when
// the service fails and 2 for usage or configuration errors. Deferred
// cleanup has run by the time it returns.
func execute(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("campusnav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "show command version")
	envFile := fs.String("env", ".env", "dotenv file to load before reading the environment")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logger.New(cfg.LogLevel, logger.WithConsole(logger.IsTerminal(os.Stderr)))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("application error", zap.Error(err))
		return 1
	}

	return 0
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	// ----------------------------------------------------------------------------
	// Initialization

	g, err := loadGraph(cfg.MapFile)
	if err != nil {
		return err
	}
	stats := g.Stats()
	log.Info("campus map loaded",
		zap.String("source", mapSource(cfg.MapFile)),
		zap.Int("locations", stats.VertexCount),
		zap.Int("paths", stats.EdgeCount),
		zap.Int("isolated", stats.IsolatedCount))

	nav := navigator.New(g,
		navigator.WithLogger(log.Named("navigator")),
		navigator.WithMaxDepth(cfg.MaxDepth))
	if _, err := nav.Backbone(); errors.Is(err, navigator.ErrDisconnected) {
		log.Warn("campus map is not connected; some routes will not exist")
	}

	// ----------------------------------------------------------------------------
	// Server Setup

	gin.SetMode(cfg.GinMode)
	sessions := navigator.NewSessions(
		navigator.WithMaxSessions(cfg.MaxSessions),
		navigator.WithSessionTTL(cfg.SessionTTL),
		navigator.WithHistoryLimit(cfg.HistoryLimit))
	handler := api.NewRouter(api.NewHandlers(nav, sessions, log.Named("http")))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrs := make(chan error, 1)
	go func() {
		defer close(serverErrs)

		log.Info("starting http server", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrs <- fmt.Errorf("server error: %w", err)
		}
	}()

	// ----------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrs:
		return fmt.Errorf("received server error: %w", err)
	case <-ctx.Done():
		log.Info("shutting down application")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func loadGraph(path string) (*core.Graph, error) {
	m := campusmap.Default()
	if path != "" {
		var err error
		if m, err = campusmap.LoadFile(path); err != nil {
			return nil, err
		}
	}

	return m.Build()
}

func mapSource(path string) string {
	if path == "" {
		return "embedded"
	}

	return path
}
