package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fprsim/app"
	"fprsim/internal/config"
	"fprsim/ports"
)

// App is the JSON API over the simulation entry points
type App struct {
	router      *chi.Mux
	simulations *app.SimulationService
	repository  ports.ResultRepository // nil when persistence is disabled
	defaults    config.SimulationConfig
}

// NewApp creates the API application
func NewApp(simulations *app.SimulationService, repository ports.ResultRepository, defaults config.SimulationConfig) *App {
	a := &App{
		router:      chi.NewRouter(),
		simulations: simulations,
		repository:  repository,
		defaults:    defaults,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures API routes
func (a *App) setupRoutes() {
	a.router.Route("/api", func(r chi.Router) {
		r.Post("/simulations", a.handleRunSimulation)
		r.Get("/simulations", a.handleListSimulations)
		r.Get("/simulations/{id}/report", a.handleSimulationReport)
		r.Get("/familywise", a.handleFamilyWise)
	})
}

// Router exposes the HTTP handler
func (a *App) Router() http.Handler {
	return a.router
}

// Serve starts the HTTP server
func (a *App) Serve(port string) error {
	log.Printf("[API] Listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}
