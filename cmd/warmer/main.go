package main

import (
	"context"
	"os"

	"gallery/internal"
	"gallery/internal/config"
	"gallery/internal/logger"
	"gallery/internal/warmer"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	if err := Bootstrap(); err != nil {
		logrus.WithError(err).Fatal("bootstrap error")
	}
}

// Bootstrap publishes one warm request. A scheduler runs this binary so the
// server refreshes its cache before traffic arrives.
func Bootstrap() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	if !cfg.PubSub.Enabled() {
		return errors.New("PUBSUB_PROJECT_ID is not set")
	}

	opts, err := internal.GoogleClientOptions(cfg.PubSub.Credentials)
	if err != nil {
		return err
	}

	id, err := warmer.Publish(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, opts...)
	if err != nil {
		return err
	}

	log.WithField("message", id).Info("warm request published")
	return nil
}
