package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Render writes the named page template. The status must be set first
// because ExecuteTemplate starts writing the body immediately.
func Render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	err := templates.ExecuteTemplate(w, name, data)
	if err != nil {
		slog.Error("render failed", "template", name, "error", err)
	}
}
