package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"gallery/internal/handler"
	"gallery/internal/model"
	"gallery/internal/screen"
	"gallery/view"

	"github.com/google/uuid"
)

// Grid is the data behind every page that shows a wallpaper grid. View
// identifies this render for the download busy guard.
type Grid struct {
	Title      string
	Heading    string
	View       string
	Error      string
	Empty      string
	Wallpapers []model.Wallpaper
	Next       string
}

func (s *Server) HomeViewHandler(w http.ResponseWriter, r *http.Request) {
	home := screen.NewHome(s.gw, nil)
	home.Load(r.Context())

	type Page struct {
		Grid
		Categories []model.Category
	}

	p := Page{
		Grid: Grid{
			Title:      "Wallpapers",
			Heading:    "Trending",
			View:       uuid.NewString(),
			Wallpapers: home.Trending,
		},
		Categories: home.Categories,
	}

	s.render(w, http.StatusOK, view.Home, p)
}

func (s *Server) CategoryViewHandler(w http.ResponseWriter, r *http.Request) {
	c := screen.NewCategory(s.gw, handler.PathParam(r, "category"))
	screen.Replay(r.Context(), c, handler.Page(r))

	p := Grid{
		Title:      c.Name + " Wallpapers",
		Heading:    c.Name,
		View:       uuid.NewString(),
		Error:      c.Error,
		Wallpapers: c.Wallpapers,
	}
	if c.HasMore {
		p.Next = fmt.Sprintf("/category/%s?page=%d", url.PathEscape(c.Slug), c.Page+1)
	}

	s.render(w, http.StatusOK, view.Category, p)
}

// SearchRedirectHandler turns the search form's ?q= into a /search/{query}
// route so each query has its own URL.
func (s *Server) SearchRedirectHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/search/"+url.PathEscape(q), http.StatusFound)
}

func (s *Server) SearchViewHandler(w http.ResponseWriter, r *http.Request) {
	search := screen.NewSearch(s.gw, handler.PathParam(r, "query"))
	screen.Replay(r.Context(), search, handler.Page(r))

	p := Grid{
		Title:      search.Query + " Wallpapers",
		Heading:    fmt.Sprintf("Results for %q", search.Query),
		View:       uuid.NewString(),
		Error:      search.Error,
		Wallpapers: search.Wallpapers,
	}
	if search.Empty() && search.Error == "" {
		p.Empty = fmt.Sprintf("No wallpapers found for %q", search.Query)
	}
	if search.HasMore {
		p.Next = fmt.Sprintf("/search/%s?page=%d", url.PathEscape(search.Query), search.Page+1)
	}

	s.render(w, http.StatusOK, view.Search, p)
}

func (s *Server) WallpaperViewHandler(w http.ResponseWriter, r *http.Request) {
	d := screen.NewDetail(s.gw, handler.PathParam(r, "id"))
	d.Load(r.Context())

	type Page struct {
		Title string
		View  string
		Error string
		W     model.Wallpaper
	}

	p := Page{
		Title: d.Wallpaper.Title,
		View:  uuid.NewString(),
		Error: d.Error,
		W:     d.Wallpaper,
	}

	status := http.StatusOK
	if !d.Found() {
		p.Title = "Wallpaper"
		status = http.StatusNotFound
	}

	s.render(w, status, view.Wallpaper, p)
}

// render executes t into a buffer first so a template error can still turn
// into a 500.
func (s *Server) render(w http.ResponseWriter, status int, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		s.logger.WithError(err).Error("failed to render view")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
