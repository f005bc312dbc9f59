package screen

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"gallery/internal/model"
	"gallery/internal/unsplash"

	"golang.org/x/sync/errgroup"
)

const (
	TrendingPerTerm  = 3
	TrendingLimit    = 12
	trendingSample   = 4
	trendingCategory = "Trending"
)

var trendingTerms = []string{"trending wallpaper", "popular wallpaper"}

type Home struct {
	Trending   []model.Wallpaper
	Categories []model.Category

	gw  Gateway
	rnd *rand.Rand
}

// NewHome builds the home screen. A nil rnd seeds one from the clock.
func NewHome(gw Gateway, rnd *rand.Rand) *Home {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Home{gw: gw, rnd: rnd}
}

// Load runs the trending searches and the category image lookups in
// parallel. Every gateway call fails soft, so Load itself cannot fail.
func (h *Home) Load(ctx context.Context) {
	terms := h.searchTerms()
	results := make([]unsplash.SearchResult, len(terms))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h.Categories = CategoryTiles(gctx, h.gw)
		return nil
	})
	for i, term := range terms {
		g.Go(func() error {
			results[i] = h.gw.SearchPhotos(gctx, term, 1, TrendingPerTerm)
			return nil
		})
	}
	_ = g.Wait()

	var l Listing
	for _, res := range results {
		l.appendUnique(toWallpapers(res.Results, trendingCategory)...)
	}

	trending := l.Wallpapers
	h.rnd.Shuffle(len(trending), func(i, j int) {
		trending[i], trending[j] = trending[j], trending[i]
	})
	if len(trending) > TrendingLimit {
		trending = trending[:TrendingLimit]
	}
	h.Trending = trending
}

// CategoryTiles returns the fixed categories, each with a fresh
// representative image when one can be fetched and the static one otherwise.
func CategoryTiles(ctx context.Context, gw Gateway) []model.Category {
	tiles := make([]model.Category, len(model.Categories))
	copy(tiles, model.Categories)

	g, gctx := errgroup.WithContext(ctx)
	for i := range tiles {
		g.Go(func() error {
			if url := gw.RandomPhotoURL(gctx, tiles[i].Slug()); url != "" {
				tiles[i].ImageURL = url
			}
			return nil
		})
	}
	_ = g.Wait()

	return tiles
}

// searchTerms mixes the fixed trending terms with a random sample of
// category names so the home grid varies between visits.
func (h *Home) searchTerms() []string {
	sample := make([]model.Category, len(model.Categories))
	copy(sample, model.Categories)
	h.rnd.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})

	terms := append([]string(nil), trendingTerms...)
	for _, c := range sample[:min(trendingSample, len(sample))] {
		terms = append(terms, strings.ToLower(c.Name))
	}
	return terms
}
