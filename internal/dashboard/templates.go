package dashboard

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	// number formats a statistic with prec decimals (-1 for shortest),
	// showing N/A for undefined values.
	"number": func(v float64, prec int) string {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "N/A"
		}
		return strconv.FormatFloat(v, 'f', prec, 64)
	},
}

// parseTemplates parses the base layout followed by one page template.
func parseTemplates(page string) (*template.Template, error) {
	return template.New("base.html").Funcs(funcMap).ParseFS(templateFS,
		"templates/base.html", "templates/"+page)
}

type errorData struct {
	Message string
}

// renderPage executes the named page inside the base layout.
func renderPage(w http.ResponseWriter, page string, status int, data any) {
	tmpl, err := parseTemplates(page)
	if err != nil {
		slog.Error("Failed to parse template", slog.String("page", page), slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("Failed to execute template", slog.String("page", page), slog.Any("error", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func renderError(w http.ResponseWriter, message string, status int) {
	renderPage(w, "error.html", status, errorData{Message: message})
}
