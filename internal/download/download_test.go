package download_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gallery/internal/download"
	"gallery/internal/model"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracker struct {
	calls atomic.Int32
	err   error
}

func (t *tracker) TrackDownload(_ context.Context, _ string) error {
	t.calls.Add(1)
	return t.err
}

type fetcher struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	err     error
}

func (f *fetcher) Fetch(ctx context.Context, url string) (*download.Blob, error) {
	f.calls.Add(1)
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &download.Blob{
		Body:        io.NopCloser(strings.NewReader("jpeg-bytes")),
		ContentType: "image/jpeg",
		Size:        10,
	}, nil
}

type sink struct {
	filename    string
	contentType string
	buf         bytes.Buffer
}

func (s *sink) Save(filename, contentType string, _ int64, body io.Reader) error {
	s.filename = filename
	s.contentType = contentType
	_, err := io.Copy(&s.buf, body)
	return err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var wallpaper = model.Wallpaper{
	ID:               "abc",
	Title:            "Lake Louise",
	URL:              "https://img/full",
	DownloadLocation: "https://api/photos/abc/download",
}

func TestDownload(t *testing.T) {
	tr := &tracker{}
	f := &fetcher{}
	s := &sink{}
	d := download.New(tr, f, quietLogger())

	require.NoError(t, d.Download(context.Background(), "grid", download.Fixed(wallpaper), s))
	d.Wait()

	assert.Equal(t, "Lake Louise.jpg", s.filename)
	assert.Equal(t, "image/jpeg", s.contentType)
	assert.Equal(t, "jpeg-bytes", s.buf.String())
	assert.Equal(t, int32(1), tr.calls.Load())
	assert.Equal(t, int32(1), f.calls.Load())
	assert.False(t, d.Busy("grid"))
}

func TestDownload_SecondClickWhileBusyIsNoop(t *testing.T) {
	tr := &tracker{}
	f := &fetcher{started: make(chan struct{}), release: make(chan struct{})}
	d := download.New(tr, f, quietLogger())

	done := make(chan error, 1)
	go func() {
		done <- d.Download(context.Background(), "detail", download.Fixed(wallpaper), &sink{})
	}()

	<-f.started
	d.Wait()
	require.True(t, d.Busy("detail"))

	err := d.Download(context.Background(), "detail", download.Fixed(wallpaper), &sink{})
	assert.ErrorIs(t, err, download.ErrBusy)

	close(f.release)
	require.NoError(t, <-done)
	d.Wait()

	assert.Equal(t, int32(1), f.calls.Load())
	assert.Equal(t, int32(1), tr.calls.Load())
	assert.False(t, d.Busy("detail"))
}

func TestDownload_FailureReleasesView(t *testing.T) {
	tr := &tracker{err: errors.New("tracking down")}
	f := &fetcher{err: errors.New("connection refused")}
	d := download.New(tr, f, quietLogger())

	err := d.Download(context.Background(), "grid", download.Fixed(wallpaper), &sink{})
	require.Error(t, err)
	d.Wait()

	assert.False(t, d.Busy("grid"))

	f.err = nil
	s := &sink{}
	require.NoError(t, d.Download(context.Background(), "grid", download.Fixed(wallpaper), s))
	assert.Equal(t, "jpeg-bytes", s.buf.String())
}

func TestDownload_NoTrackingWithoutLocation(t *testing.T) {
	tr := &tracker{}
	d := download.New(tr, &fetcher{}, quietLogger())

	w := wallpaper
	w.DownloadLocation = ""
	require.NoError(t, d.Download(context.Background(), "grid", download.Fixed(w), &sink{}))
	d.Wait()

	assert.Equal(t, int32(0), tr.calls.Load())
}

func TestDownload_TrackingOutlivesRequest(t *testing.T) {
	var trackErr atomic.Value
	tr := trackerFunc(func(ctx context.Context, _ string) error {
		time.Sleep(20 * time.Millisecond)
		trackErr.Store(ctx.Err() == nil)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	d := download.New(tr, &fetcher{}, quietLogger())
	require.NoError(t, d.Download(ctx, "grid", download.Fixed(wallpaper), &sink{}))
	cancel()
	d.Wait()

	assert.Equal(t, true, trackErr.Load())
}

func TestDownload_ResolvesOnlyWhenIdle(t *testing.T) {
	f := &fetcher{started: make(chan struct{}), release: make(chan struct{})}
	d := download.New(&tracker{}, f, quietLogger())

	var lookups atomic.Int32
	resolve := func(context.Context) (model.Wallpaper, bool) {
		lookups.Add(1)
		return wallpaper, true
	}

	done := make(chan error, 1)
	go func() {
		done <- d.Download(context.Background(), "grid", resolve, &sink{})
	}()
	<-f.started

	assert.ErrorIs(t, d.Download(context.Background(), "grid", resolve, &sink{}), download.ErrBusy)
	assert.Equal(t, int32(1), lookups.Load())

	close(f.release)
	require.NoError(t, <-done)
	d.Wait()
}

func TestDownload_NotFoundReleasesView(t *testing.T) {
	f := &fetcher{}
	d := download.New(&tracker{}, f, quietLogger())

	missing := func(context.Context) (model.Wallpaper, bool) { return model.Wallpaper{}, false }
	assert.ErrorIs(t, d.Download(context.Background(), "grid", missing, &sink{}), download.ErrNotFound)

	assert.False(t, d.Busy("grid"))
	assert.Equal(t, int32(0), f.calls.Load())
}

type trackerFunc func(ctx context.Context, loc string) error

func (f trackerFunc) TrackDownload(ctx context.Context, loc string) error { return f(ctx, loc) }

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Lake Louise", want: "Lake Louise.jpg"},
		{title: "", want: "wallpaper.jpg"},
		{title: "  ", want: "wallpaper.jpg"},
		{title: `a/b\c:"d"`, want: "a-b-c--d-.jpg"},
		{title: "line\nbreak", want: "linebreak.jpg"},
		{title: strings.Repeat("x", 150), want: strings.Repeat("x", 100) + ".jpg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, download.Filename(tt.title))
	}
}

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png"))
	}))
	defer server.Close()

	f := download.HTTPFetcher{HC: &http.Client{Timeout: time.Second}}

	blob, err := f.Fetch(context.Background(), server.URL+"/photo.png")
	require.NoError(t, err)
	defer blob.Body.Close()

	b, err := io.ReadAll(blob.Body)
	require.NoError(t, err)
	assert.Equal(t, "png", string(b))
	assert.Equal(t, "image/png", blob.ContentType)

	_, err = f.Fetch(context.Background(), server.URL+"/missing")
	assert.Error(t, err)
}
