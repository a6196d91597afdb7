package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/raffaelramalhorosa/feedbridge/internal/api"
	"github.com/raffaelramalhorosa/feedbridge/internal/config"
	"github.com/raffaelramalhorosa/feedbridge/internal/feed"
	"github.com/raffaelramalhorosa/feedbridge/internal/fetcher"
	"github.com/raffaelramalhorosa/feedbridge/internal/logger"
	"github.com/raffaelramalhorosa/feedbridge/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// --- Dependencies ---
	st := store.New()
	fetch := fetcher.New(st, fetcher.Options{
		Interval:   cfg.Fetch.Interval,
		Timeout:    cfg.Fetch.Timeout,
		RetryCount: cfg.Fetch.Retries(),
		UserAgent:  cfg.Fetch.UserAgent,
	}, log.Named("fetcher"))
	srv := api.New(st, fetch, log.Named("api"), cfg.Server.MaxBodyBytes)

	seedFeeds(st, cfg.Seeds, log)

	// --- Background fetcher ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go fetch.Start(ctx)

	// --- HTTP server ---
	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      srv,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("server started", zap.String("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	cancel() // stop the fetcher

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}

// seedFeeds registers the subscriptions listed in the configuration. A seed
// with an unrecognised format is skipped.
func seedFeeds(s *store.Store, seeds []config.SeedFeed, log *zap.Logger) {
	for _, seed := range seeds {
		var format feed.Format
		if seed.Format != "" {
			f, err := feed.ParseFormat(seed.Format)
			if err != nil {
				log.Warn("skipping seed feed", zap.String("name", seed.Name), zap.Error(err))
				continue
			}
			format = f
		}
		s.AddFeed(seed.Name, seed.URL, format)
	}
}
