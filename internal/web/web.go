// Package web holds the HTML templates and static assets of the demo pages.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Static returns the static asset tree rooted at the static directory
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
