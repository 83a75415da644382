package ui

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/45h1f/learn-docker/internal/logging"
)

var (
	dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardTemplate))
	sysinfoTmpl   = template.Must(template.New("sysinfo").Parse(sysinfoTemplate))
)

// render executes the page into a buffer first so a failing template never
// leaves a half-written page on the wire.
func render(w http.ResponseWriter, tmpl *template.Template, data map[string]interface{}) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logging.Error("Failed to render page", "template", tmpl.Name(), "error", err.Error())
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
