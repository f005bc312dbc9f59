package screen

import (
	"context"
	"strings"

	"gallery/internal/model"
	"gallery/internal/service"
)

type Category struct {
	Listing
	Slug string
	Name string

	gw Gateway
}

func NewCategory(gw Gateway, slug string) *Category {
	slug = strings.ToLower(strings.TrimSpace(slug))
	return &Category{Slug: slug, Name: model.DisplayName(slug), gw: gw}
}

func (c *Category) Load(ctx context.Context) {
	c.reset()

	if c.Slug == "" {
		c.HasMore = false
		c.Error = MsgCategoryMissing
		return
	}

	batch := c.gw.CategoryPhotos(ctx, c.Slug, 1)
	if len(batch) == 0 {
		c.HasMore = false
		c.Error = MsgCategoryEmpty
		if !c.gw.AccessKeyConfigured() {
			c.Error = MsgMissingAccessKey
		}
		return
	}

	c.appendUnique(toWallpapers(batch, c.Name)...)
	c.Page = 1
	c.HasMore = fullBatch(batch)
}

// LoadMore fetches the next random batch. A full batch is taken to mean more
// photos exist, which is wrong for categories with an exact multiple of the
// batch size: the extra page then comes back empty.
func (c *Category) LoadMore(ctx context.Context) {
	if c.Page == 0 {
		c.Load(ctx)
		return
	}
	if !c.HasMore {
		return
	}

	next := c.Page + 1
	batch := c.gw.CategoryPhotos(ctx, c.Slug, next)
	if len(batch) == 0 {
		c.HasMore = false
		return
	}

	c.appendUnique(toWallpapers(batch, c.Name)...)
	c.Page = next
	c.HasMore = fullBatch(batch)
}

func fullBatch[T any](batch []T) bool {
	return len(batch) == service.CategoryBatchSize
}
