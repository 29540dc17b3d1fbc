package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"weather-dash/dashboard"
	services "weather-dash/service"
)

// Upstream error chains stay in the logs.
const fetchFailedMessage = "forecast provider unavailable"

// ForecastResponse is the JSON form of a dashboard page.
type ForecastResponse struct {
	State string                  `json:"state"`
	View  dashboard.DashboardView `json:"view"`
	Error string                  `json:"error,omitempty"`
}

type ForecastHandler struct {
	pageController *services.PageController
}

func NewForecastHandler(pageController *services.PageController) *ForecastHandler {
	return &ForecastHandler{pageController: pageController}
}

// GetForecast serves /api/v1/forecast/{city}. Pending answers 202, Failed 502.
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := h.pageController.Load(r.Context(), req.Query)
	resp := ForecastResponse{
		State: result.State.String(),
		View:  dashboard.NewDashboardView(result, req.viewOptions()),
	}

	status := http.StatusOK
	switch result.State {
	case dashboard.Pending:
		status = http.StatusAccepted
	case dashboard.Failed:
		status = http.StatusBadGateway
		resp.Error = fetchFailedMessage
	}

	writeJSON(w, status, resp)
}

func (h *ForecastHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
