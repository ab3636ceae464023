package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/config"
	"github.com/open-pam/console/internal/metrics"
	"github.com/open-pam/console/internal/web"
)

const serveReadHeaderTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:         "serve",
	Short:       "Host the built console bundle over HTTP.",
	Args:        cobra.NoArgs,
	Annotations: structuredLogAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.LoadOptional()
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	// The metrics server shuts itself down when ctx is canceled; a nil
	// error channel (metrics disabled) blocks its select case forever.
	_, metricsErr := metrics.StartServer(ctx, cfg.MetricsAddr)

	srv := web.NewEchoServer(cfg)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: serveReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr, "static_dir", cfg.StaticDir)
		errCh <- srv.StartServer(httpServer)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-metricsErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
