package service

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

var errNoPhoto = errors.New("no photo returned")

type metrics struct {
	hits           metric.Int64Counter
	misses         metric.Int64Counter
	upstreamErrors metric.Int64Counter
}

func newMetrics(meter metric.Meter) metrics {
	return metrics{
		hits:           counter(meter, "gallery.gateway.cache.hits", "Gateway calls answered from the cache"),
		misses:         counter(meter, "gallery.gateway.cache.misses", "Gateway calls that went to the photo API"),
		upstreamErrors: counter(meter, "gallery.gateway.upstream.errors", "Photo API calls that failed and were answered empty"),
	}
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func (m metrics) hit(ctx context.Context, op string) {
	m.hits.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

func (m metrics) miss(ctx context.Context, op string) {
	m.misses.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

func (m metrics) upstreamError(ctx context.Context, op string) {
	m.upstreamErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}
