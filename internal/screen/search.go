package screen

import (
	"context"
	"strings"
)

const (
	SearchPageSize = 16
	searchCategory = "Photography"
)

type Search struct {
	Listing
	Query string

	gw Gateway
}

func NewSearch(gw Gateway, query string) *Search {
	return &Search{Query: strings.TrimSpace(query), gw: gw}
}

func (s *Search) Load(ctx context.Context) {
	s.reset()

	if s.Query == "" {
		s.HasMore = false
		s.Error = MsgSearchMissing
		return
	}

	res := s.gw.SearchPhotos(ctx, s.Query, 1, SearchPageSize)
	s.appendUnique(toWallpapers(res.Results, searchCategory)...)
	s.Page = 1
	s.HasMore = res.TotalPages > s.Page

	if s.Empty() {
		s.HasMore = false
		if !s.gw.AccessKeyConfigured() {
			s.Error = MsgMissingAccessKey
		}
	}
}

// LoadMore appends the next page, skipping ids that are already shown. A page
// that adds nothing new ends the listing.
func (s *Search) LoadMore(ctx context.Context) {
	if s.Page == 0 {
		s.Load(ctx)
		return
	}
	if !s.HasMore {
		return
	}

	next := s.Page + 1
	res := s.gw.SearchPhotos(ctx, s.Query, next, SearchPageSize)
	if s.appendUnique(toWallpapers(res.Results, searchCategory)...) == 0 {
		s.HasMore = false
		return
	}

	s.Page = next
	s.HasMore = res.TotalPages > next
}
