package handlers

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"weather-dash/dashboard"
	"weather-dash/metrics"
	services "weather-dash/service"
	"weather-dash/view"
)

// DashboardHandler serves the HTML dashboard and its chart.
type DashboardHandler struct {
	pageController *services.PageController
	renderer       *view.Renderer
	metrics        *metrics.Metrics
	refreshAfter   time.Duration
}

// NewDashboardHandler builds the handler. refreshAfter is how soon the loading
// page reloads itself.
func NewDashboardHandler(
	pageController *services.PageController,
	renderer *view.Renderer,
	m *metrics.Metrics,
	refreshAfter time.Duration) *DashboardHandler {

	return &DashboardHandler{
		pageController: pageController,
		renderer:       renderer,
		metrics:        m,
		refreshAfter:   refreshAfter,
	}
}

// GetDashboard serves / and /city/{city}.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.pageController.Load(r.Context(), req.Query)
	h.metrics.PageRendered(result.State.String())
	v := dashboard.NewDashboardView(result, req.viewOptions())

	var buf bytes.Buffer
	if result.State == dashboard.Pending {
		err = h.renderer.RenderLoading(&buf, v.City, h.refreshAfter)
	} else {
		err = h.renderer.RenderPage(&buf, v, req.chartURL())
	}
	if err != nil {
		log.Printf("[DashboardHandler] Error rendering %s: %v", req.Query, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, buf.Bytes())
}

// GetChart serves /city/{city}/chart, the hourly temperature chart document.
func (h *DashboardHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.pageController.Load(r.Context(), req.Query)
	v := dashboard.NewDashboardView(result, req.viewOptions())

	var buf bytes.Buffer
	if result.State == dashboard.Pending {
		err = h.renderer.RenderLoading(&buf, v.City, h.refreshAfter)
	} else {
		err = view.RenderHourlyChart(&buf, v)
	}
	if err != nil {
		log.Printf("[DashboardHandler] Error rendering chart for %s: %v", req.Query, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Println("Error writing response:", err)
	}
}
