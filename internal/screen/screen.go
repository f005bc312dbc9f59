// Package screen holds the state behind each gallery page: which query it
// runs, what it has loaded so far, and whether another page can be asked for.
//
// Screens share nothing. A new route parameter means a new screen value, so
// pagination state always starts over.
package screen

import (
	"context"

	"gallery/internal/model"
	"gallery/internal/unsplash"
)

const (
	MsgMissingAccessKey = "Please set up your Unsplash API key to view wallpapers"
	MsgCategoryEmpty    = "No wallpapers found for this category"
	MsgCategoryMissing  = "Category not found"
	MsgSearchMissing    = "Please enter a search term"
	MsgWallpaperFailed  = "Failed to load wallpaper. Please try again later."

	// MaxReplayPages caps how many pages a single request may rebuild.
	MaxReplayPages = 10
)

// Gateway is the subset of service.Service the screens read from.
type Gateway interface {
	AccessKeyConfigured() bool
	SearchPhotos(ctx context.Context, query string, page, perPage int) unsplash.SearchResult
	CategoryPhotos(ctx context.Context, category string, page int) []unsplash.Photo
	RandomPhotoURL(ctx context.Context, category string) string
	Photo(ctx context.Context, id string) (unsplash.Photo, bool)
}

// Listing is the paginated grid state shared by the category and search
// screens. Wallpapers never holds the same id twice.
type Listing struct {
	Wallpapers []model.Wallpaper
	Page       int
	HasMore    bool
	Error      string

	seen map[string]struct{}
}

func (l *Listing) reset() {
	l.Wallpapers = nil
	l.Page = 0
	l.HasMore = true
	l.Error = ""
	l.seen = make(map[string]struct{})
}

// appendUnique adds the wallpapers whose id is not shown yet and reports how
// many were added.
func (l *Listing) appendUnique(ws ...model.Wallpaper) int {
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}

	added := 0
	for _, w := range ws {
		if _, ok := l.seen[w.ID]; ok {
			continue
		}
		l.seen[w.ID] = struct{}{}
		l.Wallpapers = append(l.Wallpapers, w)
		added++
	}
	return added
}

func (l *Listing) CurrentPage() int {
	return l.Page
}

func (l *Listing) More() bool {
	return l.HasMore
}

func (l *Listing) Empty() bool {
	return len(l.Wallpapers) == 0
}

func (l *Listing) Result() model.ListResponse {
	data := l.Wallpapers
	if data == nil {
		data = []model.Wallpaper{}
	}
	return model.ListResponse{
		Data:    data,
		Page:    l.Page,
		HasMore: l.HasMore,
		Error:   l.Error,
	}
}

// Pager is a screen that loads a first page and then more on demand.
type Pager interface {
	Load(ctx context.Context)
	LoadMore(ctx context.Context)
	CurrentPage() int
	More() bool
}

// Replay loads p from scratch and then keeps loading until it reaches page,
// runs out of pages, or hits MaxReplayPages. Earlier pages come from the
// gateway cache, so rebuilding the grid on every request stays cheap.
func Replay(ctx context.Context, p Pager, page int) {
	page = min(page, MaxReplayPages)

	p.Load(ctx)
	for p.CurrentPage() > 0 && p.CurrentPage() < page && p.More() {
		if ctx.Err() != nil {
			return
		}
		p.LoadMore(ctx)
	}
}

func toWallpapers(photos []unsplash.Photo, category string) []model.Wallpaper {
	out := make([]model.Wallpaper, 0, len(photos))
	for _, p := range photos {
		out = append(out, model.FromPhoto(p, category))
	}
	return out
}
