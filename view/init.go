package view

import (
	"embed"
	"html/template"
)

//go:embed *.gohtml
var templatesFS embed.FS

var (
	Home      *template.Template
	Category  *template.Template
	Search    *template.Template
	Wallpaper *template.Template
)

func init() {
	Home = template.Must(template.ParseFS(templatesFS, "base.gohtml", "grid.gohtml", "home.gohtml"))
	Category = template.Must(template.ParseFS(templatesFS, "base.gohtml", "grid.gohtml", "category.gohtml"))
	Search = template.Must(template.ParseFS(templatesFS, "base.gohtml", "grid.gohtml", "search.gohtml"))
	Wallpaper = template.Must(template.ParseFS(templatesFS, "base.gohtml", "wallpaper.gohtml"))
}
