// Package download streams a wallpaper's full-resolution file to the browser.
package download

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"
	"unicode"

	"gallery/internal/model"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultTrackTimeout = 10 * time.Second
	defaultFilename     = "wallpaper"
	maxFilenameRunes    = 100
)

var (
	// ErrBusy is returned when the view already has a download in flight.
	ErrBusy = errors.New("download already in progress")
	// ErrNotFound is returned when the resolver finds no wallpaper.
	ErrNotFound = errors.New("wallpaper not found")
)

// Resolver looks up the wallpaper to download. Download calls it only while
// holding the view's busy flag.
type Resolver func(ctx context.Context) (model.Wallpaper, bool)

// Fixed resolves to w without any lookup.
func Fixed(w model.Wallpaper) Resolver {
	return func(context.Context) (model.Wallpaper, bool) {
		return w, true
	}
}

type Tracker interface {
	TrackDownload(ctx context.Context, downloadLocation string) error
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Blob, error)
}

// Blob is an open image body. The caller closes Body.
type Blob struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Sink receives the bytes and a suggested filename and saves them for the
// user, e.g. as an HTTP attachment.
type Sink interface {
	Save(filename, contentType string, size int64, body io.Reader) error
}

type Option func(*Downloader)

func WithTrackTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.trackTimeout = d
	}
}

func New(tracker Tracker, fetcher Fetcher, logger logrus.FieldLogger, opts ...Option) *Downloader {
	d := &Downloader{
		tracker:      tracker,
		fetcher:      fetcher,
		guard:        NewGuard(),
		logger:       logger,
		trackTimeout: defaultTrackTimeout,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

type Downloader struct {
	tracker      Tracker
	fetcher      Fetcher
	guard        *Guard
	logger       logrus.FieldLogger
	trackTimeout time.Duration

	tracking sync.WaitGroup
}

// Download resolves the wallpaper, reports the download to the photo API
// without waiting for it, fetches the full image and hands it to sink. Only
// one download per view runs at a time. A second call while one is running
// returns ErrBusy before the wallpaper is even resolved.
func (d *Downloader) Download(ctx context.Context, view string, resolve Resolver, sink Sink) error {
	if !d.guard.TryAcquire(view) {
		return ErrBusy
	}
	defer d.guard.Release(view)

	w, ok := resolve(ctx)
	if !ok {
		return ErrNotFound
	}

	log := d.logger.WithFields(logrus.Fields{"id": w.ID, "view": view})

	if w.DownloadLocation != "" {
		d.track(ctx, w.DownloadLocation)
	}

	blob, err := d.fetcher.Fetch(ctx, w.URL)
	if err != nil {
		log.WithError(err).Error("failed to download")
		return errors.Wrap(err, "fetch image")
	}
	defer blob.Body.Close()

	if err := sink.Save(Filename(w.Title), blob.ContentType, blob.Size, blob.Body); err != nil {
		log.WithError(err).Error("failed to download")
		return errors.Wrap(err, "save image")
	}

	return nil
}

// Busy reports whether view has a download in flight.
func (d *Downloader) Busy(view string) bool {
	return d.guard.Busy(view)
}

// Wait blocks until every tracking call started so far has returned.
func (d *Downloader) Wait() {
	d.tracking.Wait()
}

// track fires the tracking call in the background. It outlives the request
// context and its error is dropped.
func (d *Downloader) track(ctx context.Context, location string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.trackTimeout)

	d.tracking.Add(1)
	go func() {
		defer d.tracking.Done()
		defer cancel()

		if err := d.tracker.TrackDownload(ctx, location); err != nil {
			d.logger.WithError(err).Debug("download tracking failed")
		}
	}()
}

// Filename turns a wallpaper title into a safe "<title>.jpg".
func Filename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r):
			return -1
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '-'
		}
		return r
	}, title)

	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > maxFilenameRunes {
		name = strings.TrimSpace(string(r[:maxFilenameRunes]))
	}
	if name == "" {
		name = defaultFilename
	}

	return name + ".jpg"
}
