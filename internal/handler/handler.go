// Package handler serves the gallery data as JSON under /api.
package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"gallery/internal/model"
	"gallery/internal/screen"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

type Handler struct {
	gw screen.Gateway
}

func New(gw screen.Gateway) Handler {
	return Handler{gw: gw}
}

func (h Handler) Routes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{category}", h.ListCategoryWallpapers)
	r.Get("/trending", h.ListTrending)
	r.Get("/search/{query}", h.SearchWallpapers)
	r.Get("/wallpapers/{id}", h.GetWallpaper)
}

func (h Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	tiles := screen.CategoryTiles(r.Context(), h.gw)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("data")
	e.ArrStart()
	for _, c := range tiles {
		c.Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()

	write(w, http.StatusOK, e)
}

func (h Handler) ListTrending(w http.ResponseWriter, r *http.Request) {
	home := screen.NewHome(h.gw, nil)
	home.Load(r.Context())

	writeEncoder(w, http.StatusOK, model.ListResponse{Data: home.Trending, Page: 1})
}

// ListCategoryWallpapers returns every wallpaper up to ?page, deduplicated
// across pages, plus a link to the next page when there is one.
func (h Handler) ListCategoryWallpapers(w http.ResponseWriter, r *http.Request) {
	c := screen.NewCategory(h.gw, PathParam(r, "category"))
	screen.Replay(r.Context(), c, Page(r))

	res := c.Result()
	if c.HasMore {
		res.Links.Next = fmt.Sprintf("/api/categories/%s?page=%d", url.PathEscape(c.Slug), c.Page+1)
	}

	status := http.StatusOK
	if c.Error != "" {
		status = http.StatusNotFound
	}
	writeEncoder(w, status, res)
}

func (h Handler) SearchWallpapers(w http.ResponseWriter, r *http.Request) {
	s := screen.NewSearch(h.gw, PathParam(r, "query"))
	screen.Replay(r.Context(), s, Page(r))

	res := s.Result()
	if s.HasMore {
		res.Links.Next = fmt.Sprintf("/api/search/%s?page=%d", url.PathEscape(s.Query), s.Page+1)
	}

	status := http.StatusOK
	if s.Error != "" {
		status = http.StatusNotFound
	}
	writeEncoder(w, status, res)
}

func (h Handler) GetWallpaper(w http.ResponseWriter, r *http.Request) {
	d := screen.NewDetail(h.gw, PathParam(r, "id"))
	d.Load(r.Context())

	if !d.Found() {
		writeError(w, http.StatusNotFound, d.Error)
		return
	}

	writeEncoder(w, http.StatusOK, d.Wallpaper)
}

// Page reads ?page, defaulting to 1.
func Page(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// PathParam returns the unescaped route parameter.
func PathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
