package model

import (
	"strings"

	"github.com/go-faster/jx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Slug is the path segment used by /category/{slug}.
func (c Category) Slug() string {
	return strings.ToLower(c.Name)
}

func (c Category) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(c.ID)
	e.FieldStart("name")
	e.Str(c.Name)
	e.FieldStart("slug")
	e.Str(c.Slug())
	e.FieldStart("imageUrl")
	e.Str(c.ImageURL)
	e.ObjEnd()
}

// Categories is fixed at build time and never changes at runtime.
var Categories = []Category{
	{ID: "1", Name: "Nature", ImageURL: "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05"},
	{ID: "2", Name: "Abstract", ImageURL: "https://images.unsplash.com/photo-1541701494587-cb58502866ab"},
	{ID: "3", Name: "Space", ImageURL: "https://images.unsplash.com/photo-1462331940025-496dfbfc7564"},
	{ID: "4", Name: "Architecture", ImageURL: "https://images.unsplash.com/photo-1487958449943-2429e8be8625"},
	{ID: "5", Name: "Animals", ImageURL: "https://images.unsplash.com/photo-1474511320723-9a56873867b5"},
	{ID: "6", Name: "Minimalist", ImageURL: "https://images.unsplash.com/photo-1494438639946-1ebd1d20bf85"},
	{ID: "7", Name: "Cars", ImageURL: "https://images.unsplash.com/photo-1494976388531-d1058494cdd8"},
	{ID: "8", Name: "Ocean", ImageURL: "https://images.unsplash.com/photo-1505142468610-359e7d316be0"},
	{ID: "9", Name: "Mountains", ImageURL: "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b"},
	{ID: "10", Name: "City", ImageURL: "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df"},
	{ID: "11", Name: "Technology", ImageURL: "https://images.unsplash.com/photo-1518770660439-4636190af475"},
	{ID: "12", Name: "Art", ImageURL: "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5"},
}

// FindCategory looks a category up by slug, case-insensitively.
func FindCategory(slug string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c.Name, slug) {
			return c, true
		}
	}
	return Category{}, false
}

var titleCaser = cases.Title(language.English)

// DisplayName turns a route segment such as "deep space" into "Deep Space".
// Unknown categories are allowed; any search term is a valid category.
func DisplayName(slug string) string {
	if c, ok := FindCategory(slug); ok {
		return c.Name
	}
	return titleCaser.String(strings.TrimSpace(slug))
}
