package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery/internal/cache"
	"gallery/internal/config"
	"gallery/internal/download"
	"gallery/internal/logger"
	"gallery/internal/server"
	"gallery/internal/service"
	"gallery/internal/unsplash"
	"gallery/internal/warmer"

	"github.com/go-faster/errors"
)

const (
	downloadTimeout = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func Bootstrap() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	if cfg.Unsplash.AccessKey == "" {
		log.Warn("UNSPLASH_ACCESS_KEY is not set, every gallery will be empty")
	}

	photoClient := unsplash.NewClient(cfg.Unsplash.BaseURL, cfg.Unsplash.AccessKey, cfg.Unsplash.Timeout)
	defer photoClient.Close()

	gateway := service.New(photoClient, cache.New[any](cfg.Unsplash.CacheTTL), log)
	downloader := download.New(gateway, download.HTTPFetcher{HC: &http.Client{Timeout: downloadTimeout}}, log)

	srv := server.New(server.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		CacheMaxAge:    cfg.Unsplash.CacheTTL,
	}, gateway, downloader, log)

	errs := make(chan error, 2)

	if cfg.PubSub.Enabled() {
		opts, err := GoogleClientOptions(cfg.PubSub.Credentials)
		if err != nil {
			return err
		}

		w := warmer.New(gateway, log)
		go func() {
			err := warmer.Start(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, cfg.PubSub.SubID, w.Warm, log, opts...)
			if err != nil {
				errs <- errors.Wrap(err, "cache warmer")
			}
		}()
	}

	go func() {
		log.Infof("server started on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case <-exit:
		log.Info("shutting down")
	}

	cancel()
	shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
	defer done()

	err = srv.Shutdown(shutdownCtx)
	downloader.Wait()
	return err
}
