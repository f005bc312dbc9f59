package server

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"net/http"
	"time"
)

// WrapResponseWriter buffers the response so it can be tagged with an ETag,
// answered with 304 when the client already has it, and cached for maxAge.
func WrapResponseWriter(maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := NewWrapperResponseWriter(w, maxAge)
			next.ServeHTTP(ww, r)
			_, _ = ww.Flush(r.Header.Get("If-None-Match"))
		})
	}
}

type wrapperResponseWriter struct {
	http.ResponseWriter
	buf        *bytes.Buffer
	statusCode int
	maxAge     time.Duration
}

func NewWrapperResponseWriter(w http.ResponseWriter, maxAge time.Duration) *wrapperResponseWriter {
	return &wrapperResponseWriter{w, new(bytes.Buffer), http.StatusOK, maxAge}
}

func (w *wrapperResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

// WriteHeader only records the code; Flush sends it.
func (w *wrapperResponseWriter) WriteHeader(code int) {
	w.statusCode = code
}

func (w *wrapperResponseWriter) Flush(ifNoneMatch string) (int64, error) {
	if w.statusCode < 200 || w.statusCode >= 300 {
		w.ResponseWriter.WriteHeader(w.statusCode)
		return w.buf.WriteTo(w.ResponseWriter)
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(w.maxAge.Seconds())))
	etag := fmt.Sprintf("\"%x\"", md5.Sum(w.buf.Bytes()))
	w.Header().Set("ETag", etag)
	if ifNoneMatch == etag {
		w.ResponseWriter.WriteHeader(http.StatusNotModified)
		return 0, nil
	}

	w.ResponseWriter.WriteHeader(w.statusCode)
	return w.buf.WriteTo(w.ResponseWriter)
}
