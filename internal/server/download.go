package server

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strconv"

	"gallery/internal/download"
	"gallery/internal/handler"
	"gallery/internal/model"

	"github.com/go-faster/errors"
)

const downloadStatusHeader = "X-Download-Status"

// DownloadHandler streams the full image as an attachment. A click while the
// same view is still downloading, or a failure before any byte was sent,
// answers 204 so the browser stays on the page.
func (s *Server) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	id := handler.PathParam(r, "id")

	view := r.URL.Query().Get("view")
	if view == "" {
		view = id
	}

	// The lookup runs inside Download, after the view's busy flag is taken,
	// so a click on a busy view never reaches the photo API.
	resolve := func(ctx context.Context) (model.Wallpaper, bool) {
		p, ok := s.gw.Photo(ctx, id)
		if !ok {
			return model.Wallpaper{}, false
		}
		return model.DetailFromPhoto(p, ""), true
	}

	sink := &responseSink{w: w}
	err := s.dl.Download(r.Context(), view, resolve, sink)
	switch {
	case err == nil:
	case errors.Is(err, download.ErrBusy):
		noContent(w, "busy")
	case errors.Is(err, download.ErrNotFound):
		http.NotFound(w, r)
	case !sink.started:
		noContent(w, "failed")
	}
}

func noContent(w http.ResponseWriter, status string) {
	w.Header().Set(downloadStatusHeader, status)
	w.WriteHeader(http.StatusNoContent)
}

// responseSink saves a download as an HTTP attachment.
type responseSink struct {
	w       http.ResponseWriter
	started bool
}

func (s *responseSink) Save(filename, contentType string, size int64, body io.Reader) error {
	h := s.w.Header()
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	h.Set("Content-Type", contentType)
	if size >= 0 {
		h.Set("Content-Length", strconv.FormatInt(size, 10))
	}

	s.started = true
	s.w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(s.w, body); err != nil {
		return errors.Wrap(err, "stream image")
	}
	return nil
}
