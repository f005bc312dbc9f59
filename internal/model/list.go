package model

import "github.com/go-faster/jx"

// ListResponse is the JSON shape of every paginated /api listing.
type ListResponse struct {
	Data    []Wallpaper `json:"data"`
	Page    int         `json:"page"`
	HasMore bool        `json:"hasMore"`
	Error   string      `json:"error,omitempty"`
	Links   Links       `json:"links"`
}

type Links struct {
	Next string `json:"next,omitempty"`
}

func (r ListResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("data")
	e.ArrStart()
	for _, w := range r.Data {
		w.Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("page")
	e.Int(r.Page)
	e.FieldStart("hasMore")
	e.Bool(r.HasMore)
	if r.Error != "" {
		e.FieldStart("error")
		e.Str(r.Error)
	}
	e.FieldStart("links")
	e.ObjStart()
	if r.Links.Next != "" {
		e.FieldStart("next")
		e.Str(r.Links.Next)
	}
	e.ObjEnd()
	e.ObjEnd()
}
