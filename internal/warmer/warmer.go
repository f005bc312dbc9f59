// Package warmer pre-fills the gateway cache so the first visitor after a
// quiet period does not wait on the photo API.
package warmer

import (
	"context"
	"sync/atomic"

	"gallery/internal/model"
	"gallery/internal/unsplash"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const maxConcurrent = 4

type Gateway interface {
	RandomPhotoURL(ctx context.Context, category string) string
	CategoryPhotos(ctx context.Context, category string, page int) []unsplash.Photo
}

type Warmer struct {
	gw     Gateway
	logger logrus.FieldLogger
}

func New(gw Gateway, logger logrus.FieldLogger) *Warmer {
	return &Warmer{gw: gw, logger: logger}
}

// Warm loads the representative image and the first batch of every
// category. Gateway failures only leave holes in the cache; Warm fails only
// when ctx is done.
func (w *Warmer) Warm(ctx context.Context) error {
	w.logger.Info("warming cache")

	var warmed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for _, c := range model.Categories {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			url := w.gw.RandomPhotoURL(gctx, c.Slug())
			batch := w.gw.CategoryPhotos(gctx, c.Slug(), 1)
			if url != "" && len(batch) > 0 {
				warmed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w.logger.WithFields(logrus.Fields{
		"warmed":     warmed.Load(),
		"categories": len(model.Categories),
	}).Info("cache warmed")
	return nil
}
