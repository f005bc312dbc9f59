// Package service is the single gateway to the photo API. Every call goes
// through the response cache and fails soft: errors become empty results.
package service

import (
	"context"
	"fmt"

	"gallery/internal/unsplash"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// CategoryBatchSize is how many random photos one category page asks for.
	CategoryBatchSize = 16

	representativeParams = "?w=1920&q=80"

	instrumentationName = "gallery/internal/service"
)

type PhotoAPI interface {
	HasAccessKey() bool
	SearchPhotos(ctx context.Context, query string, page, perPage int) (unsplash.SearchResult, error)
	RandomPhotos(ctx context.Context, query string, count int) ([]unsplash.Photo, error)
	GetPhoto(ctx context.Context, id string) (unsplash.Photo, error)
	TrackDownload(ctx context.Context, downloadLocation string) error
}

type Cache interface {
	Get(key string) (any, bool)
	Set(key string, entry any)
}

type Option func(*Service)

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Service) {
		s.metrics = newMetrics(mp.Meter(instrumentationName))
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(instrumentationName)
	}
}

func New(client PhotoAPI, cache Cache, logger logrus.FieldLogger, opts ...Option) *Service {
	s := &Service{
		client:  client,
		cache:   cache,
		logger:  logger,
		metrics: newMetrics(otel.GetMeterProvider().Meter(instrumentationName)),
		tracer:  otel.GetTracerProvider().Tracer(instrumentationName),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type Service struct {
	client  PhotoAPI
	cache   Cache
	logger  logrus.FieldLogger
	metrics metrics
	tracer  trace.Tracer
}

// AccessKeyConfigured lets screens tell "not configured" apart from "no results".
func (s *Service) AccessKeyConfigured() bool {
	return s.client.HasAccessKey()
}

func (s *Service) SearchPhotos(ctx context.Context, query string, page, perPage int) unsplash.SearchResult {
	if !s.client.HasAccessKey() {
		return unsplash.SearchResult{}
	}

	key := fmt.Sprintf("search:%s:%d:%d", query, page, perPage)
	res, _ := lookup(ctx, s, "search", key, func(ctx context.Context) (unsplash.SearchResult, error) {
		return s.client.SearchPhotos(ctx, query, page, perPage)
	})
	return res
}

// CategoryPhotos returns one random batch for the category. Photos repeated
// inside the batch are dropped before the batch is cached.
func (s *Service) CategoryPhotos(ctx context.Context, category string, page int) []unsplash.Photo {
	if !s.client.HasAccessKey() {
		return nil
	}

	key := fmt.Sprintf("category:%s:%d", category, page)
	photos, _ := lookup(ctx, s, "category", key, func(ctx context.Context) ([]unsplash.Photo, error) {
		photos, err := s.client.RandomPhotos(ctx, category, CategoryBatchSize)
		if err != nil {
			return nil, err
		}
		return uniquePhotos(photos), nil
	})
	return photos
}

// RandomPhotoURL returns a large image URL that represents the category, or
// "" when none could be fetched.
func (s *Service) RandomPhotoURL(ctx context.Context, category string) string {
	if !s.client.HasAccessKey() {
		return ""
	}

	key := "random:" + category
	url, _ := lookup(ctx, s, "random", key, func(ctx context.Context) (string, error) {
		photos, err := s.client.RandomPhotos(ctx, category, 0)
		if err != nil {
			return "", err
		}
		if len(photos) == 0 || photos[0].URLs.Regular == "" {
			return "", errNoPhoto
		}
		return photos[0].URLs.Regular + representativeParams, nil
	})
	return url
}

func (s *Service) Photo(ctx context.Context, id string) (unsplash.Photo, bool) {
	if !s.client.HasAccessKey() || id == "" {
		return unsplash.Photo{}, false
	}

	return lookup(ctx, s, "photo", "photo:"+id, func(ctx context.Context) (unsplash.Photo, error) {
		return s.client.GetPhoto(ctx, id)
	})
}

// TrackDownload reports a download to the API. It is never cached.
func (s *Service) TrackDownload(ctx context.Context, downloadLocation string) error {
	if !s.client.HasAccessKey() {
		return unsplash.ErrMissingAccessKey
	}

	ctx, span := s.tracer.Start(ctx, "unsplash.track_download")
	defer span.End()

	if err := s.client.TrackDownload(ctx, downloadLocation); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.upstreamError(ctx, "track_download")
		return err
	}
	return nil
}

func lookup[V any](ctx context.Context, s *Service, op, key string, fetch func(ctx context.Context) (V, error)) (V, bool) {
	if entry, ok := s.cache.Get(key); ok {
		if v, ok := entry.(V); ok {
			s.metrics.hit(ctx, op)
			return v, true
		}
	}
	s.metrics.miss(ctx, op)

	ctx, span := s.tracer.Start(ctx, "unsplash."+op, trace.WithAttributes(attribute.String("cache.key", key)))
	defer span.End()

	v, err := fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.upstreamError(ctx, op)
		s.logger.WithFields(logrus.Fields{"op": op, "key": key}).WithError(err).Warn("photo api request failed")

		var zero V
		return zero, false
	}

	s.cache.Set(key, v)
	return v, true
}

func uniquePhotos(photos []unsplash.Photo) []unsplash.Photo {
	seen := make(map[string]struct{}, len(photos))
	out := make([]unsplash.Photo, 0, len(photos))
	for _, p := range photos {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
