package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"strings"
	"time"

	"weather-dash/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

const baseContainerClass = "flex w-full rounded-xl border bg-white py-4 shadow-sm"

type iconProps struct {
	URL string
	Alt string
}

type detailProps struct {
	Label string
	Value string
}

type pageData struct {
	View     dashboard.DashboardView
	ChartURL string
}

type loadingData struct {
	City           string
	RefreshSeconds int
}

var funcs = template.FuncMap{
	"containerClass": func(extra string) string {
		return strings.TrimSpace(baseContainerClass + " " + extra)
	},
	"icon": func(url, alt string) iconProps {
		return iconProps{URL: url, Alt: alt}
	},
	"iconURL": dashboard.IconURL,
	"detail": func(label, value string) detailProps {
		return detailProps{Label: label, Value: value}
	},
}

// Renderer executes the dashboard templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("dashboard").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// RenderPage writes the full dashboard. chartURL may be empty to omit the chart frame.
func (r *Renderer) RenderPage(w io.Writer, view dashboard.DashboardView, chartURL string) error {
	return r.templates.ExecuteTemplate(w, "page", pageData{View: view, ChartURL: chartURL})
}

// RenderLoading writes the loading indicator, which reloads itself after refreshAfter.
func (r *Renderer) RenderLoading(w io.Writer, city string, refreshAfter time.Duration) error {
	secs := int(math.Ceil(refreshAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return r.templates.ExecuteTemplate(w, "loading", loadingData{City: city, RefreshSeconds: secs})
}
