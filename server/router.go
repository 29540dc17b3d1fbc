package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DashboardRoutes serves the HTML pages.
type DashboardRoutes interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetChart(w http.ResponseWriter, r *http.Request)
}

// ForecastRoutes serves the JSON API.
type ForecastRoutes interface {
	GetForecast(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dashboardHandler DashboardRoutes
	forecastHandler  ForecastRoutes
	metricsHandler   http.Handler
	router           *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	dashboardHandler DashboardRoutes,
	forecastHandler ForecastRoutes,
	metricsHandler http.Handler,
	router *mux.Router) *Router {
	return &Router{
		dashboardHandler: dashboardHandler,
		forecastHandler:  forecastHandler,
		metricsHandler:   metricsHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware)

	r.router.HandleFunc("/", r.dashboardHandler.GetDashboard).Methods("GET")
	// expects optional ?cnt={1..56}&units={km/h|mph}
	r.router.HandleFunc("/city/{city}", r.dashboardHandler.GetDashboard).Methods("GET")
	r.router.HandleFunc("/city/{city}/chart", r.dashboardHandler.GetChart).Methods("GET")

	r.router.HandleFunc("/api/v1/forecast/{city}", r.forecastHandler.GetForecast).Methods("GET")
	r.router.HandleFunc("/ping", r.forecastHandler.Ping).Methods("GET")

	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods("GET")
	}
}
