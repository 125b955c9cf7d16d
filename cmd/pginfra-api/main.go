package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edvin/pginfra/internal/api"
	"github.com/edvin/pginfra/internal/catalog"
	"github.com/edvin/pginfra/internal/config"
	"github.com/edvin/pginfra/internal/core"
	"github.com/edvin/pginfra/internal/logging"
	"github.com/edvin/pginfra/internal/render"
	"github.com/edvin/pginfra/internal/store"
	"github.com/edvin/pginfra/internal/uploader"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	cat := catalog.Default()
	if cfg.InstanceTypesFile != "" {
		cat, err = catalog.LoadFile(cfg.InstanceTypesFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load instance types")
		}
		logger.Info().Str("file", cfg.InstanceTypesFile).Int("types", len(cat.List())).Msg("loaded instance type catalog")
	}

	var history *store.History
	if cfg.HistoryFile != "" {
		history = store.NewHistory(cfg.HistoryFile)
		logger.Info().Str("file", cfg.HistoryFile).Msg("generation history enabled")
	}

	var up core.Uploader
	if cfg.S3Bucket != "" {
		up = uploader.NewS3(logger, cfg.S3Endpoint, cfg.AWSRegion, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
		logger.Info().Str("bucket", cfg.S3Bucket).Msg("artifact upload enabled")
	}

	renderer := render.New(render.Options{Region: cfg.AWSRegion, AMI: cfg.AMIID})
	services := core.NewServices(cat, renderer, cfg.OutputDir, history, up)

	srv := api.NewServer(logger, services)

	httpServer := &http.Server{
		Addr:         cfg.HTTPListenAddr,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPListenAddr).Str("output_dir", cfg.OutputDir).Msg("starting pginfra API server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
}
