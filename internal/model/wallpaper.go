package model

import (
	"gallery/internal/unsplash"

	"github.com/go-faster/jx"
)

const (
	untitled = "Untitled"

	// Grid thumbnails are resized by the image CDN.
	thumbnailParams = "?w=800&q=80"
)

// Resolutions shown next to every wallpaper. They are labels only and do not
// describe the real pixel size of the image.
var Resolutions = []string{"1080p", "2K", "4K"}

// Wallpaper is the display record built from a raw photo. It is not cached;
// every request maps photos again.
type Wallpaper struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	URL              string   `json:"url"`
	Thumbnail        string   `json:"thumbnail"`
	Author           string   `json:"author"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	Resolutions      []string `json:"resolutions"`
	Downloads        int      `json:"downloads"`
	Likes            int      `json:"likes"`
	CreatedAt        string   `json:"createdAt"`
	Colors           []string `json:"colors"`
	DownloadLocation string   `json:"downloadLocation,omitempty"`
}

// FromPhoto maps p into a grid record with a resized thumbnail.
func FromPhoto(p unsplash.Photo, category string) Wallpaper {
	w := fromPhoto(p, category)
	if w.Thumbnail != "" {
		w.Thumbnail += thumbnailParams
	}
	return w
}

// DetailFromPhoto maps p for the single wallpaper view, which shows the
// regular size image as is.
func DetailFromPhoto(p unsplash.Photo, category string) Wallpaper {
	return fromPhoto(p, category)
}

func fromPhoto(p unsplash.Photo, category string) Wallpaper {
	title := p.Description
	if title == "" {
		title = p.AltDescription
	}
	if title == "" {
		title = untitled
	}

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Title)
	}

	colors := []string{}
	if p.Color != "" {
		colors = append(colors, p.Color)
	}

	return Wallpaper{
		ID:               p.ID,
		Title:            title,
		URL:              p.URLs.Full,
		Thumbnail:        p.URLs.Regular,
		Author:           p.User.Name,
		Category:         category,
		Tags:             tags,
		Resolutions:      append([]string(nil), Resolutions...),
		Downloads:        p.Downloads,
		Likes:            p.Likes,
		CreatedAt:        p.CreatedAt,
		Colors:           colors,
		DownloadLocation: p.Links.DownloadLocation,
	}
}

// TopTags returns at most n tags, as shown on grid cards.
func (w Wallpaper) TopTags(n int) []string {
	if len(w.Tags) <= n {
		return w.Tags
	}
	return w.Tags[:n]
}

func (w Wallpaper) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(w.ID)
	e.FieldStart("title")
	e.Str(w.Title)
	e.FieldStart("url")
	e.Str(w.URL)
	e.FieldStart("thumbnail")
	e.Str(w.Thumbnail)
	e.FieldStart("author")
	e.Str(w.Author)
	e.FieldStart("category")
	e.Str(w.Category)
	e.FieldStart("tags")
	encodeStrings(e, w.Tags)
	e.FieldStart("resolutions")
	encodeStrings(e, w.Resolutions)
	e.FieldStart("downloads")
	e.Int(w.Downloads)
	e.FieldStart("likes")
	e.Int(w.Likes)
	e.FieldStart("createdAt")
	e.Str(w.CreatedAt)
	e.FieldStart("colors")
	encodeStrings(e, w.Colors)
	if w.DownloadLocation != "" {
		e.FieldStart("downloadLocation")
		e.Str(w.DownloadLocation)
	}
	e.ObjEnd()
}

func encodeStrings(e *jx.Encoder, s []string) {
	e.ArrStart()
	for _, v := range s {
		e.Str(v)
	}
	e.ArrEnd()
}
