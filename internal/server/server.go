// Package server wires the HTML pages, the download endpoint and the JSON
// API onto one chi router.
package server

import (
	"context"
	"net/http"
	"time"

	"gallery/internal/download"
	"gallery/internal/handler"
	"gallery/internal/screen"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	rscors "github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	// CacheMaxAge is sent as Cache-Control max-age on /api responses.
	CacheMaxAge time.Duration
}

type Downloader interface {
	Download(ctx context.Context, view string, resolve download.Resolver, sink download.Sink) error
}

type Server struct {
	*http.Server
	gw     screen.Gateway
	dl     Downloader
	logger logrus.FieldLogger
}

func New(cfg Config, gw screen.Gateway, dl Downloader, logger logrus.FieldLogger) *Server {
	s := &Server{gw: gw, dl: dl, logger: logger}

	cors := rscors.New(rscors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead},
		AllowCredentials: true,
		Debug:            false,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.HomeViewHandler)
	r.Get("/category/{category}", s.CategoryViewHandler)
	r.Get("/search", s.SearchRedirectHandler)
	r.Get("/search/{query}", s.SearchViewHandler)
	r.Get("/wallpaper/{id}", s.WallpaperViewHandler)
	r.Get("/download/{id}", s.DownloadHandler)
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler)
		r.Use(WrapResponseWriter(cfg.CacheMaxAge))
		handler.New(gw).Routes(r)
	})

	s.Server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// RequestLogger logs one line per request once the handler returns.
func RequestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"duration": time.Since(start),
			}).Info("request")
		})
	}
}
