package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/qudous44/tiktok-server/internal/config"
	"github.com/qudous44/tiktok-server/internal/port/secondary"
)

const appName = "tiktok-server"

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	c, err := buildContainer()
	if err != nil {
		return fmt.Errorf("building container: %w", err)
	}

	return c.Invoke(func(
		router http.Handler,
		cfg *config.Config,
		logger *zap.Logger,
		forwarder secondary.EventForwarder,
		mirror secondary.EventMirror,
	) error {
		defer func() {
			if err := forwarder.Close(); err != nil {
				logger.Error("error closing forwarder", zap.Error(err))
			}
			if err := mirror.Close(); err != nil {
				logger.Error("error closing mirror", zap.Error(err))
			}
			_ = logger.Sync()
		}()

		// Missing credentials stop the process before it serves traffic,
		// except in local mode where nothing leaves the machine anyway.
		if err := cfg.Validate(); err != nil {
			if !cfg.IsLocal() {
				return err
			}
			logger.Warn("running with incomplete configuration; local mode only", zap.Error(err))
		}

		logger.Info("starting application",
			zap.String("app", appName),
			zap.String("version", version),
			zap.String("environment", cfg.Environment),
			zap.String("http_addr", cfg.HTTPAddr),
			zap.Bool("signatures_enforced", cfg.EnforceSignatures()),
			zap.Bool("outbound_enabled", cfg.OutboundEnabled()),
		)

		server := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			if srvErr := server.ListenAndServe(); srvErr != nil && srvErr != http.ErrServerClosed {
				errCh <- fmt.Errorf("http server: %w", srvErr)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		case srvErr := <-errCh:
			if srvErr != nil {
				logger.Error("service error", zap.Error(srvErr))
			}
		}

		logger.Info("shutting down gracefully")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", zap.Error(err))
		}

		logger.Info("shutdown complete")
		return nil
	})
}
