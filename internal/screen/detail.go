package screen

import (
	"context"

	"gallery/internal/model"
)

const detailCategory = "Photography"

type Detail struct {
	ID        string
	Wallpaper model.Wallpaper
	Error     string

	gw Gateway
}

func NewDetail(gw Gateway, id string) *Detail {
	return &Detail{ID: id, gw: gw}
}

func (d *Detail) Load(ctx context.Context) {
	d.Wallpaper = model.Wallpaper{}
	d.Error = ""

	p, ok := d.gw.Photo(ctx, d.ID)
	if !ok {
		d.Error = MsgWallpaperFailed
		return
	}

	d.Wallpaper = model.DetailFromPhoto(p, detailCategory)
}

func (d *Detail) Found() bool {
	return d.Error == "" && d.Wallpaper.ID != ""
}
