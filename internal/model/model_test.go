package model_test

import (
	"encoding/json"
	"testing"

	"gallery/internal/model"
	"gallery/internal/unsplash"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPhoto(t *testing.T) {
	p := unsplash.Photo{
		ID:             "abc",
		CreatedAt:      "2024-02-20T08:00:00Z",
		Color:          "#0c2640",
		AltDescription: "snowy peak at dawn",
		URLs:           unsplash.URLs{Full: "https://img/full", Regular: "https://img/regular"},
		User:           unsplash.User{Name: "Jane Doe"},
		Tags:           []unsplash.Tag{{Title: "snow"}, {Title: "peak"}},
		Downloads:      10,
		Likes:          3,
		Links:          unsplash.Links{DownloadLocation: "https://api/dl"},
	}

	w := model.FromPhoto(p, "Mountains")

	assert.Equal(t, model.Wallpaper{
		ID:               "abc",
		Title:            "snowy peak at dawn",
		URL:              "https://img/full",
		Thumbnail:        "https://img/regular?w=800&q=80",
		Author:           "Jane Doe",
		Category:         "Mountains",
		Tags:             []string{"snow", "peak"},
		Resolutions:      []string{"1080p", "2K", "4K"},
		Downloads:        10,
		Likes:            3,
		CreatedAt:        "2024-02-20T08:00:00Z",
		Colors:           []string{"#0c2640"},
		DownloadLocation: "https://api/dl",
	}, w)

	d := model.DetailFromPhoto(p, "Photography")
	assert.Equal(t, "https://img/regular", d.Thumbnail)
}

func TestFromPhoto_Fallbacks(t *testing.T) {
	w := model.FromPhoto(unsplash.Photo{ID: "x"}, "Trending")

	assert.Equal(t, "Untitled", w.Title)
	assert.Empty(t, w.Thumbnail)
	assert.Empty(t, w.Tags)
	assert.Equal(t, []string{}, w.Colors)
	assert.Empty(t, w.DownloadLocation)
}

func TestWallpaper_Encode(t *testing.T) {
	w := model.FromPhoto(unsplash.Photo{ID: "x", Description: "Lake \"Louise\"", Color: "#fff"}, "Nature")

	e := &jx.Encoder{}
	w.Encode(e)

	var got model.Wallpaper
	require.NoError(t, json.Unmarshal(e.Bytes(), &got))
	assert.Equal(t, w, got)
}

func TestCategories(t *testing.T) {
	c, ok := model.FindCategory("mountains")
	require.True(t, ok)
	assert.Equal(t, "Mountains", c.Name)
	assert.Equal(t, "mountains", c.Slug())

	_, ok = model.FindCategory("unknown")
	assert.False(t, ok)

	assert.Equal(t, "Space", model.DisplayName("SPACE"))
	assert.Equal(t, "Deep Sea", model.DisplayName("deep sea"))

	seen := make(map[string]bool)
	for _, c := range model.Categories {
		assert.False(t, seen[c.ID], "duplicate category id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestWallpaper_TopTags(t *testing.T) {
	w := model.Wallpaper{Tags: []string{"a", "b", "c", "d"}}
	assert.Equal(t, []string{"a", "b", "c"}, w.TopTags(3))
	assert.Equal(t, []string{"a"}, model.Wallpaper{Tags: []string{"a"}}.TopTags(3))
}
